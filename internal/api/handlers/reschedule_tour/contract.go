package reschedule_tour

import (
	"context"

	rescheduleTour "github.com/avdmit/HTS-TourService/internal/usecase/reschedule_tour"
)

type RescheduleTourUseCase interface {
	Execute(ctx context.Context, req *rescheduleTour.Request) (*rescheduleTour.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
