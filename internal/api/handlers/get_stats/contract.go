package get_stats

import (
	"context"

	"github.com/avdmit/HTS-TourService/internal/domain"
)

type TourService interface {
	GetStats(ctx context.Context) (*domain.Stats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
