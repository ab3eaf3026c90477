package booking

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GymBookingService/pkg/psqlbuilder"
)

const bookingsTable = "bookings"

var bookingColumns = []string{
	"id",
	"user_id",
	"venue_id",
	"start_time",
	"end_time",
	"people_count",
	"contact_phone",
	"student_ids",
	"status",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её — так
// проверка конфликтов и вставка выполняются атомарно
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(bookingsTable).
		Columns(
			"user_id",
			"venue_id",
			"start_time",
			"end_time",
			"people_count",
			"contact_phone",
			"student_ids",
			"status",
		).
		Values(
			b.UserID,
			b.VenueID,
			b.StartTime,
			b.EndTime,
			b.PeopleCount,
			b.ContactPhone,
			strings.Join(b.StudentIDs, ","),
			b.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(bookingsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}
	return booking, nil
}

// GetActiveOverlapping получает неотменённые бронирования, чей абсолютный
// интервал пересекается с [from, to). Фильтр по пользователю или площадке
// задаётся через userID/venueID (nil - без фильтра).
//
// Внутри транзакции строки блокируются FOR UPDATE: два конкурентных запроса
// на пересекающийся интервал не смогут оба пройти проверку конфликтов
func (r *Repository) GetActiveOverlapping(ctx context.Context, userID, venueID *int64, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(bookingsTable).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Gt{"end_time": from}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("start_time ASC")

	if userID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *userID})
	}
	if venueID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"venue_id": *venueID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetActiveByVenueAndDay получает неотменённые бронирования площадки,
// начинающиеся в пределах суток [dayStart, dayStart+24h)
func (r *Repository) GetActiveByVenueAndDay(ctx context.Context, venueID int64, dayStart time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(bookingsTable).
		Where(squirrel.Eq{"venue_id": venueID}).
		Where(squirrel.GtOrEq{"start_time": dayStart}).
		Where(squirrel.Lt{"start_time": dayStart.AddDate(0, 0, 1)}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByVenueAndDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByVenueAndDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByUserID получает историю бронирований пользователя с названием
// площадки, новые вперед
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.UserBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.user_id",
		"b.venue_id",
		"b.start_time",
		"b.end_time",
		"b.people_count",
		"b.contact_phone",
		"b.student_ids",
		"b.status",
		"b.created_at",
		"v.name",
	).
		From(bookingsTable + " b").
		Join("venues v ON v.id = b.venue_id").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.start_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.UserBooking, 0)
	for rows.Next() {
		var ub domain.UserBooking
		var studentIDs string
		var createdAt sql.NullTime

		err := rows.Scan(
			&ub.ID,
			&ub.UserID,
			&ub.VenueID,
			&ub.StartTime,
			&ub.EndTime,
			&ub.PeopleCount,
			&ub.ContactPhone,
			&studentIDs,
			&ub.Status,
			&createdAt,
			&ub.VenueName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}

		ub.StudentIDs = splitStudentIDs(studentIDs)
		ub.CreatedAt = createdAt.Time
		bookings = append(bookings, &ub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}

// GetPending получает бронирования в статусе pending для модерации,
// с именем пользователя и названием площадки
func (r *Repository) GetPending(ctx context.Context) ([]*domain.PendingBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.user_id",
		"b.venue_id",
		"b.start_time",
		"b.end_time",
		"b.people_count",
		"b.contact_phone",
		"b.student_ids",
		"b.status",
		"b.created_at",
		"u.username",
		"v.name",
	).
		From(bookingsTable + " b").
		Join("users u ON u.id = b.user_id").
		Join("venues v ON v.id = b.venue_id").
		Where(squirrel.Eq{"b.status": domain.StatusPending}).
		OrderBy("b.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetPending - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPending - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.PendingBooking, 0)
	for rows.Next() {
		var pb domain.PendingBooking
		var studentIDs string
		var createdAt sql.NullTime

		err := rows.Scan(
			&pb.ID,
			&pb.UserID,
			&pb.VenueID,
			&pb.StartTime,
			&pb.EndTime,
			&pb.PeopleCount,
			&pb.ContactPhone,
			&studentIDs,
			&pb.Status,
			&createdAt,
			&pb.Username,
			&pb.VenueName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetPending - scan row: %v", ErrScanRow, err)
		}

		pb.StudentIDs = splitStudentIDs(studentIDs)
		pb.CreatedAt = createdAt.Time
		bookings = append(bookings, &pb)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetPending - rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(bookingsTable).
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// Delete удаляет бронирование (физическое удаление, административная операция)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(bookingsTable).
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
		return ErrBookingNotFound
	}
	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в domain.Booking
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var studentIDs string
	var createdAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.VenueID,
		&b.StartTime,
		&b.EndTime,
		&b.PeopleCount,
		&b.ContactPhone,
		&studentIDs,
		&b.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	b.StudentIDs = splitStudentIDs(studentIDs)
	b.CreatedAt = createdAt.Time
	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}

// splitStudentIDs разбирает comma-joined список учётных номеров
func splitStudentIDs(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
