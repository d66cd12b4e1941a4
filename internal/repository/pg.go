package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Cond is one filter predicate. Expr must contain a single $%d placeholder,
// numbered by the query builder when conditions are combined.
type Cond struct {
	Expr string
	Arg  any
}

// Dependent names a table/column pair holding foreign keys to this entity.
type Dependent struct {
	Table  string
	Column string
}

// Mapping describes how one entity maps onto its table.
type Mapping[T any, F any] struct {
	Table         string
	Columns       []string
	InsertColumns []string
	InsertValues  func(*T) []any
	UpdateColumns []string
	UpdateValues  func(*T) []any
	ID            func(*T) int64
	Filter        func(F) []Cond
	Dependents    []Dependent
}

type PGRepository[T any, F any] struct {
	db *pgxpool.Pool
	m  Mapping[T, F]
}

func NewPGRepository[T any, F any](db *pgxpool.Pool, m Mapping[T, F]) *PGRepository[T, F] {
	return &PGRepository[T, F]{db: db, m: m}
}

func (r *PGRepository[T, F]) selectList() string {
	return strings.Join(r.m.Columns, ", ")
}

func (r *PGRepository[T, F]) List(ctx context.Context, page, pageSize int) ([]T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id LIMIT $1 OFFSET $2`, r.selectList(), r.m.Table)
	rows, err := r.db.Query(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}

func (r *PGRepository[T, F]) GetByID(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id=$1`, r.selectList(), r.m.Table)
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	entity, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *PGRepository[T, F]) ListByFilter(ctx context.Context, page, pageSize int, filter F) ([]T, error) {
	where, args := buildWhere(r.m.Filter(filter))
	n := len(args)
	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY id LIMIT $%d OFFSET $%d`,
		r.selectList(), r.m.Table, where, n+1, n+2)
	args = append(args, pageSize, (page-1)*pageSize)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}

func (r *PGRepository[T, F]) Count(ctx context.Context, filter F) (int64, error) {
	where, args := buildWhere(r.m.Filter(filter))
	query := fmt.Sprintf(`SELECT count(*) FROM %s%s`, r.m.Table, where)
	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PGRepository[T, F]) Create(ctx context.Context, entity *T) error {
	placeholders := make([]string, len(r.m.InsertColumns))
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		r.m.Table, strings.Join(r.m.InsertColumns, ", "), strings.Join(placeholders, ", "), r.selectList())
	rows, err := r.db.Query(ctx, query, r.m.InsertValues(entity)...)
	if err != nil {
		return mapPGError(err)
	}
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return mapPGError(err)
	}
	*entity = created
	return nil
}

func (r *PGRepository[T, F]) Replace(ctx context.Context, entity *T) error {
	sets := make([]string, len(r.m.UpdateColumns))
	for i, col := range r.m.UpdateColumns {
		sets[i] = fmt.Sprintf("%s=$%d", col, i+1)
	}
	args := r.m.UpdateValues(entity)
	args = append(args, r.m.ID(entity))
	query := fmt.Sprintf(`UPDATE %s SET %s, updated_at=now() WHERE id=$%d RETURNING %s`,
		r.m.Table, strings.Join(sets, ", "), len(args), r.selectList())
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return mapPGError(err)
	}
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return mapPGError(err)
	}
	*entity = updated
	return nil
}

func (r *PGRepository[T, F]) Delete(ctx context.Context, id int64) error {
	for _, dep := range r.m.Dependents {
		query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE %s=$1)`, dep.Table, dep.Column)
		var exists bool
		if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return domain.ErrHasDependents
		}
	}
	cmd, err := r.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id=$1`, r.m.Table), id)
	if err != nil {
		return mapPGError(err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGRepository[T, F]) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE id=$1)`, r.m.Table)
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func buildWhere(conds []Cond) (string, []any) {
	if len(conds) == 0 {
		return "", nil
	}
	parts := make([]string, len(conds))
	args := make([]any, len(conds))
	for i, c := range conds {
		parts[i] = fmt.Sprintf(c.Expr, i+1)
		args[i] = c.Arg
	}
	return " WHERE " + strings.Join(parts, " AND "), args
}

func mapPGError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			return fmt.Errorf("%w: %s", domain.ErrInvalidReference, pgErr.ConstraintName)
		case "23505":
			return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, pgErr.ConstraintName)
		}
	}
	return err
}
