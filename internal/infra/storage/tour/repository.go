package tour

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/avdmit/HTS-TourService/internal/domain"
	"github.com/avdmit/HTS-TourService/pkg/psqlbuilder"
	"github.com/avdmit/HTS-TourService/pkg/txmanager"
)

// pgUniqueViolation код ошибки PostgreSQL при нарушении уникальности
const pgUniqueViolation = "23505"

var tourColumns = []string{
	"id",
	"property_id",
	"scheduled_at",
	"user_id",
	"cancelled",
	"rescheduled",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с турами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория туров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает активный тур по ID: не отменен, не перенесен и еще не прошел.
// Отсутствие записи — не ошибка слоя хранения, возвращается ErrTourNotFound,
// а вызывающий решает, фатально ли это для бизнес-операции.
func (r *Repository) Get(ctx context.Context, id int64, now time.Time) (*domain.Tour, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tourColumns...).
		From("tours").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"cancelled": false}).
		Where(squirrel.Eq{"rescheduled": false}).
		Where(squirrel.GtOrEq{"scheduled_at": now}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanTour(executor.QueryRowContext(ctx, query, args...), "Get")
}

// GetUpcomingTours получает все активные туры по указанному объекту
func (r *Repository) GetUpcomingTours(ctx context.Context, propertyID string, now time.Time) ([]*domain.Tour, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(tourColumns...).
		From("tours").
		Where(squirrel.Eq{"property_id": propertyID}).
		Where(squirrel.Eq{"cancelled": false}).
		Where(squirrel.Eq{"rescheduled": false}).
		Where(squirrel.GtOrEq{"scheduled_at": now}).
		OrderBy("scheduled_at ASC")

	// Внутри транзакции блокируем активные туры объекта до вставки
	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetUpcomingTours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetUpcomingTours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTours(rows, "GetUpcomingTours")
}

// Insert сохраняет новый тур и присваивает ему идентификатор.
// Частичный уникальный индекс по (property_id, scheduled_at) для активных
// записей превращает гонку check-then-insert в ErrSlotTaken.
func (r *Repository) Insert(ctx context.Context, t *domain.Tour) (*domain.Tour, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tours").
		Columns("property_id", "scheduled_at", "user_id", "cancelled", "rescheduled").
		Values(t.PropertyID, t.ScheduledAt, t.UserID, t.Cancelled, t.Rescheduled).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// Cancel помечает тур отмененным по "сырому" ID, без учета активности записи
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tours").
		Set("cancelled", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTourNotFound
	}

	return nil
}

// Reschedule помечает тур перенесенным и возвращает вытесненную запись.
// Нулевое количество затронутых строк означает гонку с параллельной
// операцией — возвращается ErrTourNotFound, вызывающий обязан её поднять.
func (r *Repository) Reschedule(ctx context.Context, id int64) (*domain.Tour, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tours").
		Set("rescheduled", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"rescheduled": false}).
		Suffix("RETURNING " + strings.Join(tourColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	return r.scanTour(executor.QueryRowContext(ctx, query, args...), "Reschedule")
}

// GetBooked получает все туры без терминальных флагов (для отчетности)
func (r *Repository) GetBooked(ctx context.Context) ([]*domain.Tour, error) {
	return r.getByFlags(ctx, squirrel.Eq{"cancelled": false, "rescheduled": false}, "GetBooked")
}

// GetCancelled получает все отмененные туры (для отчетности)
func (r *Repository) GetCancelled(ctx context.Context) ([]*domain.Tour, error) {
	return r.getByFlags(ctx, squirrel.Eq{"cancelled": true}, "GetCancelled")
}

// GetRescheduled получает все перенесенные туры (для отчетности)
func (r *Repository) GetRescheduled(ctx context.Context) ([]*domain.Tour, error) {
	return r.getByFlags(ctx, squirrel.Eq{"rescheduled": true}, "GetRescheduled")
}

// getByFlags выполняет скан таблицы с фильтром по терминальным флагам
func (r *Repository) getByFlags(ctx context.Context, where squirrel.Eq, op string) ([]*domain.Tour, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tourColumns...).
		From("tours").
		Where(where).
		OrderBy("scheduled_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return r.scanTours(rows, op)
}

// scanTour сканирует одну строку в домен
func (r *Repository) scanTour(row *sql.Row, op string) (*domain.Tour, error) {
	var t domain.Tour
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.PropertyID,
		&t.ScheduledAt,
		&t.UserID,
		&t.Cancelled,
		&t.Rescheduled,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan tour: %v", ErrScanRow, op, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}

// scanTours сканирует результаты запроса в слайс туров
func (r *Repository) scanTours(rows *sql.Rows, op string) ([]*domain.Tour, error) {
	tours := make([]*domain.Tour, 0)

	for rows.Next() {
		var t domain.Tour
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&t.ID,
			&t.PropertyID,
			&t.ScheduledAt,
			&t.UserID,
			&t.Cancelled,
			&t.Rescheduled,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		t.CreatedAt = createdAt.Time
		t.UpdatedAt = updatedAt.Time

		tours = append(tours, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return tours, nil
}
