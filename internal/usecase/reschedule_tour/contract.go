package reschedule_tour

import (
	"context"
	"time"

	"github.com/avdmit/HTS-TourService/internal/domain"
)

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	Get(ctx context.Context, id int64, now time.Time) (*domain.Tour, error)
	GetUpcomingTours(ctx context.Context, propertyID string, now time.Time) ([]*domain.Tour, error)
	Reschedule(ctx context.Context, id int64) (*domain.Tour, error)
	Insert(ctx context.Context, t *domain.Tour) (*domain.Tour, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
