package reschedule_tour

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdmit/HTS-TourService/internal/domain"
	tourRepo "github.com/avdmit/HTS-TourService/internal/infra/storage/tour"
)

type fakeTourRepo struct {
	current       *domain.Tour
	upcoming      []*domain.Tour
	rescheduleErr error
	rescheduled   bool
	inserted      *domain.Tour
	nextID        int64
}

func (f *fakeTourRepo) Get(_ context.Context, id int64, _ time.Time) (*domain.Tour, error) {
	if f.current == nil || f.current.ID != id {
		return nil, tourRepo.ErrTourNotFound
	}
	return f.current, nil
}

func (f *fakeTourRepo) GetUpcomingTours(_ context.Context, _ string, _ time.Time) ([]*domain.Tour, error) {
	return f.upcoming, nil
}

func (f *fakeTourRepo) Reschedule(_ context.Context, id int64) (*domain.Tour, error) {
	if f.rescheduleErr != nil {
		return nil, f.rescheduleErr
	}
	f.rescheduled = true
	superseded := *f.current
	superseded.Rescheduled = true
	return &superseded, nil
}

func (f *fakeTourRepo) Insert(_ context.Context, t *domain.Tour) (*domain.Tour, error) {
	t.ID = f.nextID
	f.inserted = t
	return t, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeTourRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func TestReschedule_Success(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	oldTime := time.Date(2026, 3, 11, 11, 0, 0, 0, time.UTC)
	newTime := time.Date(2026, 3, 12, 14, 0, 0, 0, time.UTC)

	repo := &fakeTourRepo{
		current: &domain.Tour{ID: 3, PropertyID: "prop-1", ScheduledAt: oldTime, UserID: "user-1"},
		nextID:  4,
	}
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background(), &Request{TourID: 3, NewTourTime: newTime})

	require.NoError(t, err)
	assert.True(t, repo.rescheduled, "old tour must be flagged rescheduled")
	require.NotNil(t, repo.inserted)

	// Новый тур наследует объект и пользователя старого
	assert.Equal(t, int64(4), resp.ID)
	assert.Equal(t, "prop-1", resp.PropertyID)
	assert.Equal(t, "user-1", resp.UserID)
	assert.True(t, resp.ScheduledAt.Equal(newTime))
	assert.False(t, resp.Rescheduled)
	assert.False(t, resp.Cancelled)
}

func TestReschedule_TourNotFound(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeTourRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		TourID:      42,
		NewTourTime: time.Date(2026, 3, 11, 10, 30, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrTourNotFound)
}

func TestReschedule_PastTour(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeTourRepo{
		current: &domain.Tour{ID: 3, PropertyID: "prop-1", ScheduledAt: now, UserID: "user-1"},
	}
	uc := newTestUseCase(repo, now)

	// Тур ровно в момент now считается начавшимся
	_, err := uc.Execute(context.Background(), &Request{
		TourID:      3,
		NewTourTime: time.Date(2026, 3, 11, 10, 30, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrTourNotReschedulable)
}

func TestReschedule_ScheduleWindowViolation(t *testing.T) {
	now := time.Date(2026, 3, 10, 21, 30, 0, 0, time.UTC)
	repo := &fakeTourRepo{
		current: &domain.Tour{
			ID: 3, PropertyID: "prop-1",
			ScheduledAt: time.Date(2026, 3, 12, 11, 0, 0, 0, time.UTC),
			UserID:      "user-1",
		},
	}
	uc := newTestUseCase(repo, now)

	// После 21:00 перенос на завтра запрещен
	_, err := uc.Execute(context.Background(), &Request{
		TourID:      3,
		NewTourTime: time.Date(2026, 3, 11, 10, 30, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInvalidScheduleWindow)
}

func TestReschedule_SlotUnavailable(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	occupied := time.Date(2026, 3, 12, 14, 0, 0, 0, time.UTC)
	repo := &fakeTourRepo{
		current: &domain.Tour{
			ID: 3, PropertyID: "prop-1",
			ScheduledAt: time.Date(2026, 3, 11, 11, 0, 0, 0, time.UTC),
			UserID:      "user-1",
		},
		upcoming: []*domain.Tour{
			{ID: 9, PropertyID: "prop-1", ScheduledAt: occupied, UserID: "user-2"},
		},
	}
	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), &Request{TourID: 3, NewTourTime: occupied})

	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

// Запись исчезла между проверкой и пометкой переноса — гонка поднимается
// наружу как not found, а не глотается
func TestReschedule_RaceSurfacedAsNotFound(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeTourRepo{
		current: &domain.Tour{
			ID: 3, PropertyID: "prop-1",
			ScheduledAt: time.Date(2026, 3, 11, 11, 0, 0, 0, time.UTC),
			UserID:      "user-1",
		},
		rescheduleErr: tourRepo.ErrTourNotFound,
	}
	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), &Request{
		TourID:      3,
		NewTourTime: time.Date(2026, 3, 12, 14, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrTourNotFound)
	assert.Nil(t, repo.inserted, "no replacement tour on race")
}

func TestReschedule_InvalidInput(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeTourRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{TourID: 0, NewTourTime: now})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
