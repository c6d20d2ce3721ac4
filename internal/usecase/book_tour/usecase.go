package book_tour

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdmit/HTS-TourService/internal/domain"
	tourRepo "github.com/avdmit/HTS-TourService/internal/infra/storage/tour"
)

// UseCase use case для бронирования тура
type UseCase struct {
	tourRepo     TourRepository
	gate         SelfServeGate
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tourRepo TourRepository,
	gate SelfServeGate,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		tourRepo:     tourRepo,
		gate:         gate,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case бронирования тура.
// Проверка доступности слота и вставка идут в одной сериализуемой
// транзакции, а частичный уникальный индекс в БД добивает гонку между
// конкурентными бронированиями одного слота.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookTour: property=%s, time=%s, user=%s",
		req.PropertyID, req.TourTime.Format(domain.DateFormat+" 15:04"), req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookTour: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем правило окна планирования
	if err := validateScheduleWindow(req.TourTime, now); err != nil {
		uc.logger.Warn("BookTour: schedule window violation for property=%s: %v", req.PropertyID, err)
		return nil, err
	}

	// 4. Проверяем доступность самостоятельных туров (fail closed)
	allowed, err := uc.gate.IsSelfServeAllowed(ctx, req.PropertyID)
	if err != nil || !allowed {
		if err != nil {
			uc.logger.Warn("BookTour: gate unavailable for property=%s: %v", req.PropertyID, err)
		} else {
			uc.logger.Info("BookTour: self serve disabled for property=%s", req.PropertyID)
		}
		return nil, ErrSelfServeUnavailable
	}

	var result *domain.Tour

	// 5. Проверка слота и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Активные туры объекта (FOR UPDATE внутри транзакции)
		tours, err := uc.tourRepo.GetUpcomingTours(txCtx, req.PropertyID, now)
		if err != nil {
			uc.logger.Error("BookTour: failed to get upcoming tours for property=%s: %v", req.PropertyID, err)
			return fmt.Errorf("%w: failed to get upcoming tours: %v", ErrInternal, err)
		}

		// 5.2. Время тура должно быть одним из доступных слотов
		available := domain.FilterAvailableSlots(domain.BuildCanonicalSlots(now), tours)
		if !slotListContains(available, req.TourTime) {
			uc.logger.Warn("BookTour: slot %s not available for property=%s",
				req.TourTime.Format("2006-01-02 15:04"), req.PropertyID)
			return ErrSlotUnavailable
		}

		// 5.3. Сохраняем тур
		created, err := uc.tourRepo.Insert(txCtx, &domain.Tour{
			PropertyID:  req.PropertyID,
			ScheduledAt: req.TourTime,
			UserID:      req.UserID,
		})
		if err != nil {
			if errors.Is(err, tourRepo.ErrSlotTaken) {
				uc.logger.Warn("BookTour: lost slot race for property=%s at %s",
					req.PropertyID, req.TourTime.Format("2006-01-02 15:04"))
				return ErrSlotUnavailable
			}
			uc.logger.Error("BookTour: failed to insert tour: %v", err)
			return fmt.Errorf("%w: failed to insert tour: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookTour: successfully booked tour id=%d for property=%s", result.ID, result.PropertyID)

	return fromDomainTour(result), nil
}

// fromDomainTour конвертирует доменный тур в модель ответа
func fromDomainTour(t *domain.Tour) *Response {
	return &Response{
		ID:          t.ID,
		PropertyID:  t.PropertyID,
		ScheduledAt: t.ScheduledAt,
		UserID:      t.UserID,
		Cancelled:   t.Cancelled,
		Rescheduled: t.Rescheduled,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
