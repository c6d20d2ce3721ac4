package tours

import (
	"context"
	"time"

	"github.com/avdmit/HTS-TourService/internal/domain"
)

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	Get(ctx context.Context, id int64, now time.Time) (*domain.Tour, error)
	Cancel(ctx context.Context, id int64) error
	GetBooked(ctx context.Context) ([]*domain.Tour, error)
	GetCancelled(ctx context.Context) ([]*domain.Tour, error)
	GetRescheduled(ctx context.Context) ([]*domain.Tour, error)
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
