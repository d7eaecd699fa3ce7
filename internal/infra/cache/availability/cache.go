package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "salon:availability"

// ErrCacheMiss возвращается, когда значения нет в кэше
var ErrCacheMiss = errors.New("availability.cache: miss")

// Cache кэш результатов расчёта доступных слотов в Redis
// Ключ: (дата, версия дня, мастер | all). Запись в день увеличивает версию,
// поэтому результат, посчитанный до записи, после неё уже не читается.
// Запись всё равно проверяется уникальным ограничением в БД.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// versionTTL срок жизни счётчика версии дня, заведомо больше ttl записей
const versionTTL = 48 * time.Hour

// NewCache создает кэш; nil client даёт выключенный кэш
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Enabled возвращает true, если кэш подключен
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil && c.ttl > 0
}

// Get возвращает слоты из кэша и текущую версию дня
// Версию нужно передать в Set: так результат попадает под ту версию, которую видел читатель.
func (c *Cache) Get(ctx context.Context, date string, stylistID *uuid.UUID) ([]string, int64, error) {
	if !c.Enabled() {
		return nil, 0, ErrCacheMiss
	}

	version, err := c.version(ctx, date)
	if err != nil {
		return nil, 0, err
	}

	val, err := c.client.Get(ctx, key(date, version, stylistID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, version, ErrCacheMiss
	}
	if err != nil {
		return nil, 0, fmt.Errorf("availability.cache: get: %w", err)
	}

	var slots []string
	if err := json.Unmarshal([]byte(val), &slots); err != nil {
		return nil, 0, fmt.Errorf("availability.cache: decode: %w", err)
	}
	return slots, version, nil
}

// Set сохраняет слоты под версией дня, полученной из Get
func (c *Cache) Set(ctx context.Context, date string, stylistID *uuid.UUID, version int64, slots []string) error {
	if !c.Enabled() {
		return nil
	}

	if slots == nil {
		slots = []string{}
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("availability.cache: encode: %w", err)
	}

	if err := c.client.Set(ctx, key(date, version, stylistID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("availability.cache: set: %w", err)
	}
	return nil
}

// Invalidate увеличивает версию дня, все ранее сохранённые результаты дня перестают читаться
func (c *Cache) Invalidate(ctx context.Context, date string) error {
	if !c.Enabled() {
		return nil
	}

	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, versionKey(date))
	pipe.Expire(ctx, versionKey(date), versionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("availability.cache: invalidate: %w", err)
	}
	return nil
}

// Ping проверяет соединение с Redis
func (c *Cache) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

func (c *Cache) version(ctx context.Context, date string) (int64, error) {
	version, err := c.client.Get(ctx, versionKey(date)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("availability.cache: get version: %w", err)
	}
	return version, nil
}

func versionKey(date string) string {
	return fmt.Sprintf("%s:%s:version", keyPrefix, date)
}

func key(date string, version int64, stylistID *uuid.UUID) string {
	if stylistID == nil {
		return fmt.Sprintf("%s:%s:v%d:all", keyPrefix, date, version)
	}
	return fmt.Sprintf("%s:%s:v%d:%s", keyPrefix, date, version, stylistID.String())
}
