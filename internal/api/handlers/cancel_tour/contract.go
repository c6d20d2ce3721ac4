package cancel_tour

import "context"

type TourService interface {
	Cancel(ctx context.Context, tourID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
