package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
	"github.com/m04kA/SMC-RoomReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomReservationService/pkg/psqlbuilder"
)

// reservationColumns колонки таблицы reservations в порядке сканирования
var reservationColumns = []string{
	"id",
	"user_id",
	"user_name",
	"room_id",
	"reservation_date",
	"slot_id",
	"party_size",
	"purpose",
	"supervisor_name",
	"status",
	"room_name",
	"zone",
	"floor",
	"created_at",
}

// Repository репозиторий для работы с бронированиями помещений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование вместе со списком участников.
// Если в контексте передана активная транзакция (через context.Value),
// использует её - участники и бронирование пишутся атомарно. Usecase
// создания бронирования всегда вызывает Create внутри сериализуемой
// транзакции вместе с авторитетным чтением занятости.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"user_id",
			"user_name",
			"room_id",
			"reservation_date",
			"slot_id",
			"party_size",
			"purpose",
			"supervisor_name",
			"status",
			"room_name",
			"zone",
			"floor",
		).
		Values(
			res.UserID,
			res.UserName,
			res.RoomID,
			res.Date,
			res.Slot,
			res.PartySize,
			res.Purpose,
			res.SupervisorName,
			res.Status,
			res.RoomName,
			res.Zone,
			res.Floor,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time

	// Участники пишутся тем же executor'ом: внутри транзакции это единый
	// путь записи, отдельного денормализованного артефакта состава нет
	if len(res.Participants) > 0 {
		insertBuilder := psqlbuilder.Insert("reservation_participants").
			Columns("reservation_id", "user_id", "name")

		for _, p := range res.Participants {
			insertBuilder = insertBuilder.Values(res.ID, p.UserID, p.Name)
		}

		query, args, err := insertBuilder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build participants insert: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - execute participants insert: %v", ErrExecQuery, err)
		}
	}

	return res, nil
}

// GetByID получает бронирование по ID вместе с участниками
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.Reservation
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.UserID,
		&res.UserName,
		&res.RoomID,
		&res.Date,
		&res.Slot,
		&res.PartySize,
		&res.Purpose,
		&res.SupervisorName,
		&res.Status,
		&res.RoomName,
		&res.Zone,
		&res.Floor,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	res.CreatedAt = createdAt.Time

	if err := r.loadParticipants(ctx, executor, []*domain.Reservation{&res}); err != nil {
		return nil, err
	}

	return &res, nil
}

// GetBySlot получает все активные бронирования по ключу (помещение, день, слот).
// Это авторитетное чтение для решения о допуске: usecase создания бронирования
// вызывает его внутри сериализуемой транзакции, и тогда выборка блокируется
// FOR UPDATE до конца транзакции.
func (r *Repository) GetBySlot(ctx context.Context, roomID string, date time.Time, slot domain.SlotID) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{
			"room_id":          roomID,
			"reservation_date": date,
			"slot_id":          slot,
			"status":           domain.StatusActive,
		}).
		OrderBy("created_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := r.scanReservations(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadParticipants(ctx, executor, reservations); err != nil {
		return nil, err
	}

	return reservations, nil
}

// GetByDateRange получает бронирования за период с гибкой фильтрацией.
// Используется ветками отображения и агрегации, не решением о допуске.
//
// Примеры использования:
//
// 1. Все активные бронирования помещения за неделю:
//    filter := domain.ReservationsFilter{RoomID: "fusion1", StartDate: &monday, EndDate: &friday}
//
// 2. Все бронирования на конкретную дату, включая отменённые:
//    filter := domain.ReservationsFilter{StartDate: &date, EndDate: &date, IncludeInactive: true}
func (r *Repository) GetByDateRange(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations")

	if filter.RoomID != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": filter.RoomID})
	}

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"reservation_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"reservation_date": *filter.EndDate})
	}

	if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("reservation_date ASC, slot_id ASC, created_at ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := r.scanReservations(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadParticipants(ctx, executor, reservations); err != nil {
		return nil, err
	}

	return reservations, nil
}

// GetByUserID получает бронирования пользователя, сначала ближайшие
func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("reservation_date DESC, slot_id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := r.scanReservations(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadParticipants(ctx, executor, reservations); err != nil {
		return nil, err
	}

	return reservations, nil
}

// Delete удаляет бронирование; участники удаляются каскадно по внешнему ключу.
// Занятость слота уменьшается при следующем чтении.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
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
		return ErrReservationNotFound
	}

	return nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var createdAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.UserID,
			&res.UserName,
			&res.RoomID,
			&res.Date,
			&res.Slot,
			&res.PartySize,
			&res.Purpose,
			&res.SupervisorName,
			&res.Status,
			&res.RoomName,
			&res.Zone,
			&res.Floor,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// loadParticipants загружает участников для набора бронирований одним запросом
func (r *Repository) loadParticipants(ctx context.Context, executor DBExecutor, reservations []*domain.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(reservations))
	byID := make(map[int64]*domain.Reservation, len(reservations))
	for _, res := range reservations {
		ids = append(ids, res.ID)
		byID[res.ID] = res
		res.Participants = make([]domain.Participant, 0)
	}

	query, args, err := psqlbuilder.Select("reservation_id", "user_id", "name").
		From("reservation_participants").
		Where(squirrel.Eq{"reservation_id": ids}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadParticipants - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadParticipants - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var reservationID int64
		var p domain.Participant

		if err := rows.Scan(&reservationID, &p.UserID, &p.Name); err != nil {
			return fmt.Errorf("%w: loadParticipants - scan row: %v", ErrScanRow, err)
		}

		if res, ok := byID[reservationID]; ok {
			res.Participants = append(res.Participants, p)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadParticipants - rows error: %v", ErrScanRow, err)
	}

	return nil
}
