package reschedule_tour

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdmit/HTS-TourService/internal/domain"
	tourRepo "github.com/avdmit/HTS-TourService/internal/infra/storage/tour"
)

// UseCase use case для переноса тура на новое время
type UseCase struct {
	tourRepo     TourRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tourRepo TourRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		tourRepo:     tourRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case переноса тура.
// Старая запись получает флаг rescheduled и остается в истории, вместо нее
// создается новый активный тур с тем же объектом и пользователем.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleTour: tour=%d, new_time=%s",
		req.TourID, req.NewTourTime.Format("2006-01-02 15:04"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleTour: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Tour

	// 3. Вся цепочка проверок и мутаций — в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Ищем активный тур по ID
		current, err := uc.tourRepo.Get(txCtx, req.TourID, now)
		if err != nil {
			if errors.Is(err, tourRepo.ErrTourNotFound) {
				uc.logger.Warn("RescheduleTour: tour id=%d not found", req.TourID)
				return ErrTourNotFound
			}
			uc.logger.Error("RescheduleTour: failed to get tour id=%d: %v", req.TourID, err)
			return fmt.Errorf("%w: failed to get tour: %v", ErrInternal, err)
		}

		// 3.2. Прошедший тур переносить нельзя
		if current.IsPast(now) {
			uc.logger.Warn("RescheduleTour: tour id=%d already started at %s",
				req.TourID, current.ScheduledAt.Format("2006-01-02 15:04"))
			return ErrTourNotReschedulable
		}

		// 3.3. Проверяем правило окна планирования для нового времени
		if err := validateScheduleWindow(req.NewTourTime, now); err != nil {
			uc.logger.Warn("RescheduleTour: schedule window violation for tour id=%d: %v", req.TourID, err)
			return err
		}

		// 3.4. Новое время должно быть одним из доступных слотов объекта
		tours, err := uc.tourRepo.GetUpcomingTours(txCtx, current.PropertyID, now)
		if err != nil {
			uc.logger.Error("RescheduleTour: failed to get upcoming tours for property=%s: %v",
				current.PropertyID, err)
			return fmt.Errorf("%w: failed to get upcoming tours: %v", ErrInternal, err)
		}

		available := domain.FilterAvailableSlots(domain.BuildCanonicalSlots(now), tours)
		if !slotListContains(available, req.NewTourTime) {
			uc.logger.Warn("RescheduleTour: slot %s not available for property=%s",
				req.NewTourTime.Format("2006-01-02 15:04"), current.PropertyID)
			return ErrSlotUnavailable
		}

		// 3.5. Помечаем старую запись перенесенной.
		// Если запись исчезла между 3.1 и этим шагом — поднимаем гонку наружу.
		superseded, err := uc.tourRepo.Reschedule(txCtx, req.TourID)
		if err != nil {
			if errors.Is(err, tourRepo.ErrTourNotFound) {
				uc.logger.Warn("RescheduleTour: tour id=%d disappeared before reschedule mark", req.TourID)
				return ErrTourNotFound
			}
			uc.logger.Error("RescheduleTour: failed to mark tour id=%d rescheduled: %v", req.TourID, err)
			return fmt.Errorf("%w: failed to mark tour rescheduled: %v", ErrInternal, err)
		}

		// 3.6. Создаем новый активный тур с тем же объектом и пользователем
		created, err := uc.tourRepo.Insert(txCtx, &domain.Tour{
			PropertyID:  superseded.PropertyID,
			ScheduledAt: req.NewTourTime,
			UserID:      superseded.UserID,
		})
		if err != nil {
			if errors.Is(err, tourRepo.ErrSlotTaken) {
				uc.logger.Warn("RescheduleTour: lost slot race for property=%s at %s",
					superseded.PropertyID, req.NewTourTime.Format("2006-01-02 15:04"))
				return ErrSlotUnavailable
			}
			uc.logger.Error("RescheduleTour: failed to insert replacement tour: %v", err)
			return fmt.Errorf("%w: failed to insert replacement tour: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleTour: tour id=%d superseded by id=%d", req.TourID, result.ID)

	return &Response{
		ID:          result.ID,
		PropertyID:  result.PropertyID,
		ScheduledAt: result.ScheduledAt,
		UserID:      result.UserID,
		Cancelled:   result.Cancelled,
		Rescheduled: result.Rescheduled,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
