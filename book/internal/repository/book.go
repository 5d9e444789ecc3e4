package repository

import (
	"context"

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

var bookColumns = []string{"id", "title", "author", "synopsis"}

type bookRepository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewBookRepository(db *pgxpool.Pool, log *zap.Logger) *bookRepository {
	return &bookRepository{
		db:  db,
		log: log.Named("repo.book"),
	}
}

func (r *bookRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
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

	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "GetByID")
	}
	return &book, nil
}

func (r *bookRepository) Create(ctx context.Context, book model.Book) error {
	query, args, err := qb.Insert(booksTableName).
		Columns(bookColumns...).
		Values(book.ID, book.Title, book.Author, book.Synopsis).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.log.Error("Create", zap.String("q", query), zap.Error(err))
		return errors.Wrap(err, "Create")
	}
	return nil
}

func (r *bookRepository) Update(ctx context.Context, book model.Book) error {
	query, args, err := qb.Update(booksTableName).
		Set("title", book.Title).
		Set("author", book.Author).
		Set("synopsis", book.Synopsis).
		Where(sq.Eq{"id": book.ID}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return errors.Wrap(err, "Update")
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		// a reservation was inserted between the service check and the delete
		if _, ok := pgError(err, pgerrcode.ForeignKeyViolation); ok {
			return false, errs.BookHasReservations(id)
		}
		return false, errors.Wrap(err, "Delete")
	}
	return tag.RowsAffected() == 1, nil
}

// ListPaged reads the count and the page from one repeatable-read snapshot.
func (r *bookRepository) ListPaged(ctx context.Context, offset, limit int) ([]model.Book, int, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, 0, errors.Wrap(err, "BeginTx")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	countQuery, _, err := qb.Select("count(*)").From(booksTableName).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := tx.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "count books")
	}

	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("created_at", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, err
	}
	r.log.Debug("ListPaged", zap.String("query", query), zap.Any("args", args))

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list books")
	}
	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return nil, 0, errors.Wrap(err, "pgx.CollectRows")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, errors.Wrap(err, "Commit")
	}
	return books, total, nil
}
