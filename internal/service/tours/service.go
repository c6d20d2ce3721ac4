package tours

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdmit/HTS-TourService/internal/domain"
	tourRepo "github.com/avdmit/HTS-TourService/internal/infra/storage/tour"
)

// Service сервис для отмены туров и агрегированной отчетности
type Service struct {
	tourRepo     TourRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса туров
func NewService(tourRepo TourRepository, logger Logger) *Service {
	return &Service{
		tourRepo:     tourRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Cancel отменяет активный тур.
// Тур, время которого уже наступило, отменить нельзя.
func (s *Service) Cancel(ctx context.Context, tourID int64) error {
	s.logger.Info("Cancel: cancelling tour id=%d", tourID)

	now := s.timeProvider.Now()

	tour, err := s.tourRepo.Get(ctx, tourID, now)
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			s.logger.Warn("Cancel: tour id=%d not found", tourID)
			return ErrTourNotFound
		}
		s.logger.Error("Cancel: repository error for tour id=%d: %v", tourID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if tour.IsPast(now) {
		s.logger.Warn("Cancel: tour id=%d already started at %s",
			tourID, tour.ScheduledAt.Format("2006-01-02 15:04"))
		return ErrTourNotCancellable
	}

	if err := s.tourRepo.Cancel(ctx, tourID); err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			// Гонка между Get и Cancel: запись исчезла — поднимаем как not found
			s.logger.Warn("Cancel: tour id=%d disappeared before cancel mark", tourID)
			return ErrTourNotFound
		}
		s.logger.Error("Cancel: repository error for tour id=%d: %v", tourID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled tour id=%d", tourID)
	return nil
}

// GetStats возвращает агрегированные счетчики туров по терминальным флагам
func (s *Service) GetStats(ctx context.Context) (*domain.Stats, error) {
	booked, err := s.tourRepo.GetBooked(ctx)
	if err != nil {
		s.logger.Error("GetStats: failed to get booked tours: %v", err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	cancelled, err := s.tourRepo.GetCancelled(ctx)
	if err != nil {
		s.logger.Error("GetStats: failed to get cancelled tours: %v", err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	rescheduled, err := s.tourRepo.GetRescheduled(ctx)
	if err != nil {
		s.logger.Error("GetStats: failed to get rescheduled tours: %v", err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStats: booked=%d, cancelled=%d, rescheduled=%d",
		len(booked), len(cancelled), len(rescheduled))

	return &domain.Stats{
		Booked:      len(booked),
		Cancelled:   len(cancelled),
		Rescheduled: len(rescheduled),
	}, nil
}
