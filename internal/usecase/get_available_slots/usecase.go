package get_available_slots

import (
	"context"
	"fmt"

	"github.com/avdmit/HTS-TourService/internal/domain"
)

// UseCase use case для получения доступных слотов по объекту
type UseCase struct {
	tourRepo     TourRepository
	gate         SelfServeGate
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tourRepo TourRepository,
	gate SelfServeGate,
	logger Logger,
) *UseCase {
	return &UseCase{
		tourRepo:     tourRepo,
		gate:         gate,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: property=%s", req.PropertyID)

	// 1. Валидация входных данных
	if req.PropertyID == "" {
		uc.logger.Warn("GetAvailableSlots: empty property id")
		return nil, fmt.Errorf("%w: propertyId is required", ErrInvalidInput)
	}

	// 2. Проверяем доступность самостоятельных туров (fail closed)
	allowed, err := uc.gate.IsSelfServeAllowed(ctx, req.PropertyID)
	if err != nil || !allowed {
		if err != nil {
			uc.logger.Warn("GetAvailableSlots: gate unavailable for property=%s: %v", req.PropertyID, err)
		} else {
			uc.logger.Info("GetAvailableSlots: self serve disabled for property=%s", req.PropertyID)
		}
		return nil, ErrSelfServeUnavailable
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Получаем активные туры по объекту
	tours, err := uc.tourRepo.GetUpcomingTours(ctx, req.PropertyID, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get upcoming tours for property=%s: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get upcoming tours: %v", ErrInternal, err)
	}

	// 5. Фильтруем каноническую сетку слотов занятыми турами и их буферами
	slots := domain.FilterAvailableSlots(domain.BuildCanonicalSlots(now), tours)

	uc.logger.Info("GetAvailableSlots: %d slots available for property=%s (%d active tours)",
		len(slots), req.PropertyID, len(tours))

	return &Response{
		PropertyID: req.PropertyID,
		Slots:      slots,
	}, nil
}
