package traveloption

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/avlasov-n/TRV-BookingService/internal/domain"
	"github.com/avlasov-n/TRV-BookingService/pkg/dbmetrics"
	"github.com/avlasov-n/TRV-BookingService/pkg/psqlbuilder"
)

// travelOptionColumns колонки таблицы travel_options в порядке сканирования
var travelOptionColumns = []string{
	"id",
	"type",
	"source",
	"destination",
	"departure_time",
	"price_per_seat",
	"total_seats",
	"available_seats",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с вариантами поездок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория вариантов поездок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый вариант поездки
// available_seats выставляется равным total_seats: новый рейс продается целиком
func (r *Repository) Create(ctx context.Context, option *domain.TravelOption) (*domain.TravelOption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("travel_options").
		Columns(
			"type",
			"source",
			"destination",
			"departure_time",
			"price_per_seat",
			"total_seats",
			"available_seats",
		).
		Values(
			option.Type,
			option.Source,
			option.Destination,
			option.DepartureTime,
			option.PricePerSeat,
			option.TotalSeats,
			option.AvailableSeats,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&option.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	option.CreatedAt = createdAt.Time
	option.UpdatedAt = updatedAt.Time

	return option, nil
}

// GetByID получает вариант поездки по ID
// Внутри транзакции читает строку с блокировкой (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TravelOption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(travelOptionColumns...).
		From("travel_options").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	option, err := r.scanTravelOption(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTravelOptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan travel option: %v", ErrScanRow, err)
	}

	return option, nil
}

// List получает варианты поездок с фильтрацией
// Фильтры по подстроке source/destination регистронезависимые (ILIKE),
// фильтр по дате выбирает рейсы с отправлением в указанный день
func (r *Repository) List(ctx context.Context, filter domain.TravelOptionFilter) ([]*domain.TravelOption, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(travelOptionColumns...).
		From("travel_options").
		OrderBy("departure_time ASC, id ASC")

	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.Source != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"source": "%" + *filter.Source + "%"})
	}
	if filter.Destination != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"destination": "%" + *filter.Destination + "%"})
	}
	if filter.Date != nil {
		dayStart := filter.Date.Truncate(24 * time.Hour)
		selectBuilder = selectBuilder.
			Where(squirrel.GtOrEq{"departure_time": dayStart}).
			Where(squirrel.Lt{"departure_time": dayStart.AddDate(0, 0, 1)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	options := make([]*domain.TravelOption, 0)
	for rows.Next() {
		option, err := r.scanTravelOption(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		options = append(options, option)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return options, nil
}

// DecrementSeats атомарно списывает numSeats мест
// Условие available_seats >= numSeats входит в сам UPDATE: два конкурентных
// списания последних мест не могут пройти оба, даже вне транзакции.
// Возвращает ErrNotEnoughSeats, если мест не хватило, и ErrTravelOptionNotFound,
// если вариант поездки не существует
func (r *Repository) DecrementSeats(ctx context.Context, id int64, numSeats int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("travel_options").
		Set("available_seats", squirrel.Expr("available_seats - ?", numSeats)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.GtOrEq{"available_seats": numSeats}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DecrementSeats - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecrementSeats - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecrementSeats - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Разделяем "нет рейса" и "нет мест"
		exists, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrTravelOptionNotFound
		}
		return ErrNotEnoughSeats
	}

	return nil
}

// RestoreSeats атомарно возвращает numSeats мест после отмены бронирования
// Условие available_seats + numSeats <= total_seats защищает инвариант
// вместимости от двойного возврата
func (r *Repository) RestoreSeats(ctx context.Context, id int64, numSeats int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("travel_options").
		Set("available_seats", squirrel.Expr("available_seats + ?", numSeats)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("available_seats + ? <= total_seats", numSeats)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RestoreSeats - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RestoreSeats - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RestoreSeats - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		exists, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrTravelOptionNotFound
		}
		return ErrSeatsOverflow
	}

	return nil
}

// Update обновляет вариант поездки (административное редактирование)
// Счётчик available_seats этим методом не меняется: им управляют только
// операции бронирования и отмены
func (r *Repository) Update(ctx context.Context, option *domain.TravelOption) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("travel_options").
		Set("type", option.Type).
		Set("source", option.Source).
		Set("destination", option.Destination).
		Set("departure_time", option.DepartureTime).
		Set("price_per_seat", option.PricePerSeat).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": option.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTravelOptionNotFound
	}

	return nil
}

// Delete удаляет вариант поездки
// Сервисный слой обязан проверить отсутствие активных бронирований
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("travel_options").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTravelOptionNotFound
	}

	return nil
}

// exists проверяет существование варианта поездки
func (r *Repository) exists(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("travel_options").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: exists - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanTravelOption сканирует строку в модель варианта поездки
func (r *Repository) scanTravelOption(row rowScanner) (*domain.TravelOption, error) {
	var option domain.TravelOption
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&option.ID,
		&option.Type,
		&option.Source,
		&option.Destination,
		&option.DepartureTime,
		&option.PricePerSeat,
		&option.TotalSeats,
		&option.AvailableSeats,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	option.CreatedAt = createdAt.Time
	option.UpdatedAt = updatedAt.Time

	return &option, nil
}
