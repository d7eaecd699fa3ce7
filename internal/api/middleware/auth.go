package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const (
	// HeaderUserID идентификатор пользователя от шлюза
	HeaderUserID = "X-User-ID"
	// HeaderUserRole роль пользователя от шлюза
	HeaderUserRole = "X-User-Role"
	// HeaderStylistID мастер, к которому привязан сотрудник
	HeaderStylistID = "X-Stylist-ID"

	msgInvalidToken    = "некорректный токен авторизации"
	msgInvalidIdentity = "некорректные данные пользователя"
	msgUnauthorized    = "требуется авторизация"
	msgForbidden       = "доступ запрещен"
)

type contextKey string

const identityKey contextKey = "identity"

var (
	errTokenDisabled   = errors.New("bearer tokens are not accepted: jwt secret is not configured")
	errHeadersDisabled = errors.New("gateway identity headers are not trusted")
	errInvalidIdentity = errors.New("invalid identity")
)

// IdentityHeaders заголовки шлюза с данными пользователя
var IdentityHeaders = []string{HeaderUserID, HeaderUserRole, HeaderStylistID}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth извлекает пользователя из Bearer токена (HS256) или заголовков шлюза
// Заголовки шлюза читаются только при trustHeaders, иначе запрос с ними отклоняется.
// Запрос без данных пользователя пропускается дальше, доступ проверяет RequireRole.
func Auth(jwtSecret string, trustHeaders bool, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var (
				identity *domain.Identity
				err      error
			)

			if token, ok := bearerToken(r); ok {
				identity, err = identityFromToken(token, jwtSecret)
				if err != nil {
					logger.Warn("Auth - Invalid bearer token: %v", err)
					handlers.RespondUnauthorized(w, msgInvalidToken)
					return
				}
			} else if hasIdentityHeaders(r.Header) {
				identity, err = identityFromHeaders(r.Header, trustHeaders)
				if err != nil {
					logger.Warn("Auth - Invalid identity headers: %v", err)
					handlers.RespondUnauthorized(w, msgInvalidIdentity)
					return
				}
			}

			if identity != nil {
				r = r.WithContext(WithIdentity(r.Context(), *identity))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole пропускает только пользователей с одной из ролей
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentity(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			for _, role := range roles {
				if identity.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			handlers.RespondForbidden(w, msgForbidden)
		})
	}
}

// WithIdentity кладет пользователя в контекст
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity извлекает пользователя из контекста
func GetIdentity(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

func identityFromToken(tokenString, secret string) (*domain.Identity, error) {
	if secret == "" {
		return nil, errTokenDisabled
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: token claims", errInvalidIdentity)
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	stylistID, _ := claims["stylistId"].(string)
	return newIdentity(sub, role, stylistID)
}

func hasIdentityHeaders(h http.Header) bool {
	for _, name := range IdentityHeaders {
		if h.Get(name) != "" {
			return true
		}
	}
	return false
}

func identityFromHeaders(h http.Header, trusted bool) (*domain.Identity, error) {
	if !trusted {
		return nil, errHeadersDisabled
	}
	return newIdentity(h.Get(HeaderUserID), h.Get(HeaderUserRole), h.Get(HeaderStylistID))
}

func newIdentity(userID, role, stylistID string) (*domain.Identity, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: missing user id", errInvalidIdentity)
	}

	identity := &domain.Identity{UserID: userID, Role: domain.Role(strings.ToUpper(role))}
	if !identity.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", errInvalidIdentity, role)
	}

	if stylistID != "" {
		id, err := uuid.Parse(stylistID)
		if err != nil {
			return nil, fmt.Errorf("%w: stylist id: %v", errInvalidIdentity, err)
		}
		identity.StylistID = &id
	}
	return identity, nil
}
