package create_appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

// memoryStore хранилище в памяти с тем же уникальным ключом (stylist_id, start_time), что и в БД
type memoryStore struct {
	mu           sync.Mutex
	stylists     map[uuid.UUID]bool
	intervals    []*domain.WorkInterval
	appointments []*domain.Appointment
	failWith     error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{stylists: make(map[uuid.UUID]bool)}
}

func (s *memoryStore) addInterval(stylistID uuid.UUID, start, end time.Time) {
	s.stylists[stylistID] = true
	s.intervals = append(s.intervals, &domain.WorkInterval{ID: uuid.New(), StylistID: stylistID, StartTime: start, EndTime: end})
}

func (s *memoryStore) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return nil, s.failWith
	}
	if !s.stylists[a.StylistID] {
		return nil, appointmentRepo.ErrStylistNotFound
	}
	for _, existing := range s.appointments {
		if existing.StylistID == a.StylistID && existing.StartTime.Equal(a.StartTime) {
			return nil, appointmentRepo.ErrDuplicateSlot
		}
	}

	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	s.appointments = append(s.appointments, a)
	return a, nil
}

func (s *memoryStore) GetBookedStylistIDs(_ context.Context, start time.Time) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []uuid.UUID
	for _, a := range s.appointments {
		if a.StartTime.Equal(start) {
			ids = append(ids, a.StylistID)
		}
	}
	return ids, nil
}

func (s *memoryStore) GetCoveringStylistIDs(_ context.Context, start time.Time) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []uuid.UUID
	for _, iv := range s.intervals {
		if iv.Covers(start) {
			ids = append(ids, iv.StylistID)
		}
	}
	return ids, nil
}

type inlineTx struct{ err error }

func (tx inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx.err != nil {
		return tx.err
	}
	return fn(ctx)
}

type cacheSpy struct {
	mu          sync.Mutex
	invalidated []string
}

func (c *cacheSpy) Invalidate(_ context.Context, date string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, date)
	return nil
}

type metricsSpy struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func (m *metricsSpy) IncAppointment(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outcomes == nil {
		m.outcomes = make(map[string]int)
	}
	m.outcomes[outcome]++
}

var slotStart = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newUseCase(store *memoryStore, tx TransactionManager) (*UseCase, *cacheSpy, *metricsSpy) {
	cache := &cacheSpy{}
	metrics := &metricsSpy{}
	uc := NewUseCase(store, store, tx, cache, metrics, time.UTC, time.Second, logger.Nop())
	return uc, cache, metrics
}

func request(stylistID *uuid.UUID) *Request {
	return &Request{
		CustomerName:  "Mei",
		CustomerPhone: "0912345678",
		StartTime:     slotStart,
		StylistID:     stylistID,
	}
}

func TestUseCase_RequestedStylist(t *testing.T) {
	store := newMemoryStore()
	stylistA := uuid.New()
	store.addInterval(stylistA, slotStart, slotStart.Add(time.Hour))
	uc, cache, metrics := newUseCase(store, inlineTx{})

	resp, err := uc.Execute(context.Background(), request(&stylistA))
	require.NoError(t, err)

	assert.Equal(t, stylistA, resp.StylistID)
	assert.False(t, resp.AutoAssigned)
	assert.Equal(t, slotStart.Add(30*time.Minute), resp.EndTime)
	assert.Equal(t, []string{"2025-03-01"}, cache.invalidated)
	assert.Equal(t, 1, metrics.outcomes["created"])

	_, err = uc.Execute(context.Background(), request(&stylistA))
	assert.ErrorIs(t, err, ErrDuplicateSlot)
	assert.Equal(t, 1, metrics.outcomes["duplicate_slot"])
}

func TestUseCase_UnknownStylist(t *testing.T) {
	store := newMemoryStore()
	uc, _, _ := newUseCase(store, inlineTx{})
	ghost := uuid.New()

	_, err := uc.Execute(context.Background(), request(&ghost))
	assert.ErrorIs(t, err, ErrUnknownStylist)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "stylistId", domain.FieldOf(err))
}

func TestUseCase_AutoAssign(t *testing.T) {
	store := newMemoryStore()
	stylistA, stylistB := uuid.New(), uuid.New()
	store.addInterval(stylistA, slotStart, slotStart.Add(time.Hour))
	store.addInterval(stylistB, slotStart.Add(-time.Hour), slotStart.Add(30*time.Minute))
	uc, _, metrics := newUseCase(store, inlineTx{})

	first, err := uc.Execute(context.Background(), request(nil))
	require.NoError(t, err)
	assert.Equal(t, stylistA, first.StylistID)
	assert.True(t, first.AutoAssigned)

	second, err := uc.Execute(context.Background(), request(nil))
	require.NoError(t, err)
	assert.Equal(t, stylistB, second.StylistID)

	_, err = uc.Execute(context.Background(), request(nil))
	assert.ErrorIs(t, err, ErrFullyBooked)
	assert.Equal(t, 1, metrics.outcomes["fully_booked"])
}

func TestUseCase_NoCoverage(t *testing.T) {
	store := newMemoryStore()
	stylistA := uuid.New()
	// Интервал заканчивается посреди слота 09:00
	store.addInterval(stylistA, slotStart.Add(-time.Hour), slotStart.Add(15*time.Minute))
	uc, cache, metrics := newUseCase(store, inlineTx{})

	_, err := uc.Execute(context.Background(), request(nil))
	assert.ErrorIs(t, err, ErrNoCoverage)
	assert.Empty(t, cache.invalidated)
	assert.Equal(t, 1, metrics.outcomes["no_coverage"])
}

func TestUseCase_ValidationBeforeStore(t *testing.T) {
	store := newMemoryStore()
	uc, _, metrics := newUseCase(store, inlineTx{err: errors.New("must not be called")})

	req := request(nil)
	req.CustomerPhone = "12345"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPhone)
	assert.Equal(t, 1, metrics.outcomes["invalid"])
}

func TestUseCase_StoreErrors(t *testing.T) {
	t.Run("insert failure", func(t *testing.T) {
		store := newMemoryStore()
		stylistA := uuid.New()
		store.addInterval(stylistA, slotStart, slotStart.Add(time.Hour))
		store.failWith = errors.New("connection reset")
		uc, _, metrics := newUseCase(store, inlineTx{})

		_, err := uc.Execute(context.Background(), request(&stylistA))
		assert.ErrorIs(t, err, ErrStore)
		assert.NotErrorIs(t, err, ErrStoreTimeout)
		assert.Equal(t, 1, metrics.outcomes["store_error"])
	})

	t.Run("begin failure", func(t *testing.T) {
		uc, _, _ := newUseCase(newMemoryStore(), inlineTx{err: errors.New("too many connections")})

		_, err := uc.Execute(context.Background(), request(nil))
		assert.ErrorIs(t, err, ErrStore)
	})

	t.Run("timeout is retryable", func(t *testing.T) {
		uc, _, _ := newUseCase(newMemoryStore(), inlineTx{})
		uc.storeTimeout = time.Millisecond
		uc.txManager = blockingTx{}

		_, err := uc.Execute(context.Background(), request(nil))
		assert.ErrorIs(t, err, ErrStoreTimeout)
	})
}

type blockingTx struct{}

func (blockingTx) Do(ctx context.Context, _ func(ctx context.Context) error) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestUseCase_ConcurrentSameStylist(t *testing.T) {
	store := newMemoryStore()
	stylistA := uuid.New()
	store.addInterval(stylistA, slotStart, slotStart.Add(time.Hour))
	uc, _, _ := newUseCase(store, inlineTx{})

	const n = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		failures  []error
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), request(&stylistA))

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
				return
			}
			failures = append(failures, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	require.Len(t, failures, n-1)
	for _, err := range failures {
		assert.ErrorIs(t, err, ErrDuplicateSlot)
	}
	assert.Len(t, store.appointments, 1)
}

func TestUseCase_ConcurrentAutoAssign(t *testing.T) {
	store := newMemoryStore()
	stylistA := uuid.New()
	store.addInterval(stylistA, slotStart, slotStart.Add(time.Hour))
	uc, _, _ := newUseCase(store, inlineTx{})

	const n = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), request(nil))

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
				return
			}
			assert.True(t, errors.Is(err, ErrDuplicateSlot) || errors.Is(err, ErrFullyBooked), "unexpected error: %v", err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Len(t, store.appointments, 1)
}
