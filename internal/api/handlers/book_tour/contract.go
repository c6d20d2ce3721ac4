package book_tour

import (
	"context"

	bookTour "github.com/avdmit/HTS-TourService/internal/usecase/book_tour"
)

type BookTourUseCase interface {
	Execute(ctx context.Context, req *bookTour.Request) (*bookTour.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
