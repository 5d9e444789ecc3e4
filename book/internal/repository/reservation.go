package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Astemirdum/book-service/book/internal/errs"
	"github.com/Astemirdum/book-service/book/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var reservationColumns = []string{"id", "book_id", "user_id", "reserved_at", "status"}

type reservationRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewReservationRepository(db *pgxpool.Pool, log *zap.Logger) *reservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.Named("repo.reservation"),
	}
}

func (r *reservationRepository) Add(ctx context.Context, reservation model.Reservation) error {
	query, args, err := qb.Insert(reservationsTableName).
		Columns(reservationColumns...).
		Values(
			reservation.ID,
			reservation.BookID,
			reservation.UserID,
			reservation.ReservedAt,
			reservation.Status,
		).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if pgErr, ok := pgError(err, pgerrcode.ForeignKeyViolation); ok && pgErr.ConstraintName == reservationsBookFK {
			return errs.BookNotFound(reservation.BookID)
		}
		r.log.Error("Add", zap.String("q", query), zap.Error(err))
		return errors.Wrap(err, "Add")
	}
	return nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	query, args, err := qb.Select(reservationColumns...).
		From(reservationsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "GetByID")
	}
	defer rows.Close()

	reservation, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Reservation])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "GetByID")
	}
	return &reservation, nil
}

const updateReservationQuery = `
update reservations
set book_id = @book_id, user_id = @user_id, reserved_at = @reserved_at, status = @status
where id = @id
returning id, book_id, user_id, reserved_at, status`

// Update replaces the reservation in one statement and returns what was written.
// There is no status precondition: the domain entity has already rejected invalid transitions.
func (r *reservationRepository) Update(ctx context.Context, reservation model.Reservation) (*model.Reservation, error) {
	rows, err := r.db.Query(ctx, updateReservationQuery, pgx.NamedArgs{
		"id":          reservation.ID,
		"book_id":     reservation.BookID,
		"user_id":     reservation.UserID,
		"reserved_at": reservation.ReservedAt,
		"status":      reservation.Status,
	})
	if err != nil {
		return nil, errors.Wrap(err, "Update")
	}
	defer rows.Close()

	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Reservation])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "Update")
	}
	return &updated, nil
}

type reservationPageRow struct {
	TotalCount int           `db:"total_count"`
	ID         *uuid.UUID    `db:"id"`
	BookID     *uuid.UUID    `db:"book_id"`
	UserID     *uuid.UUID    `db:"user_id"`
	ReservedAt *time.Time    `db:"reserved_at"`
	Status     *model.Status `db:"status"`
}

const reservationPageQuery = `
select c.total_count, p.id, p.book_id, p.user_id, p.reserved_at, p.status
from (%s) c
left join (%s) p on true
order by p.reserved_at, p.id`

// ListPaged evaluates the count and the page as a single statement so both observe the same snapshot.
// An empty page still yields one row carrying the total with NULL reservation columns.
func (r *reservationRepository) ListPaged(
	ctx context.Context, offset, limit int, userID *uuid.UUID,
) ([]model.Reservation, int, error) {
	count := sq.Select("count(*) as total_count").From(reservationsTableName)
	page := sq.Select(reservationColumns...).
		From(reservationsTableName).
		OrderBy("reserved_at", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if userID != nil {
		count = count.Where(sq.Eq{"user_id": *userID})
		page = page.Where(sq.Eq{"user_id": *userID})
	}

	countSQL, countArgs, err := count.ToSql()
	if err != nil {
		return nil, 0, err
	}
	pageSQL, pageArgs, err := page.ToSql()
	if err != nil {
		return nil, 0, err
	}
	query, err := sq.Dollar.ReplacePlaceholders(fmt.Sprintf(reservationPageQuery, countSQL, pageSQL))
	if err != nil {
		return nil, 0, err
	}
	args := append(countArgs, pageArgs...)
	r.log.Debug("ListPaged", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ListPaged")
	}
	pageRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[reservationPageRow])
	if err != nil {
		return nil, 0, errors.Wrap(err, "pgx.CollectRows")
	}

	var (
		total        int
		reservations = make([]model.Reservation, 0, len(pageRows))
	)
	for _, row := range pageRows {
		total = row.TotalCount
		if row.ID == nil {
			continue
		}
		reservations = append(reservations, model.Reservation{
			ID:         *row.ID,
			BookID:     *row.BookID,
			UserID:     *row.UserID,
			ReservedAt: *row.ReservedAt,
			Status:     *row.Status,
		})
	}
	return reservations, total, nil
}

const hasReservationsQuery = `select exists(select 1 from reservations where book_id = $1)`

func (r *reservationRepository) HasReservationsForBook(ctx context.Context, bookID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, hasReservationsQuery, bookID).Scan(&exists); err != nil {
		return false, errors.Wrap(err, "HasReservationsForBook")
	}
	return exists, nil
}
