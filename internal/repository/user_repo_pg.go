package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ApiUserRepository adds username lookup on top of the generic gateway,
// needed by the login path.
type ApiUserRepository interface {
	Repository[domain.ApiUser, domain.ApiUserFilter]
	GetByUsername(ctx context.Context, username string) (*domain.ApiUser, error)
}

type PGApiUserRepository struct {
	*PGRepository[domain.ApiUser, domain.ApiUserFilter]
	db *pgxpool.Pool
}

func NewApiUserRepository(db *pgxpool.Pool) ApiUserRepository {
	return &PGApiUserRepository{
		db: db,
		PGRepository: NewPGRepository(db, Mapping[domain.ApiUser, domain.ApiUserFilter]{
			Table:         "api_users",
			Columns:       []string{"id", "username", "password_hash", "role", "created_at", "updated_at"},
			InsertColumns: []string{"username", "password_hash", "role"},
			InsertValues:  func(u *domain.ApiUser) []any { return []any{u.Username, u.PasswordHash, u.Role} },
			UpdateColumns: []string{"username", "password_hash", "role"},
			UpdateValues:  func(u *domain.ApiUser) []any { return []any{u.Username, u.PasswordHash, u.Role} },
			ID:            func(u *domain.ApiUser) int64 { return u.ID },
			Filter:        apiUserConds,
		}),
	}
}

func (r *PGApiUserRepository) GetByUsername(ctx context.Context, username string) (*domain.ApiUser, error) {
	rows, err := r.db.Query(ctx, `SELECT id, username, password_hash, role, created_at, updated_at FROM api_users WHERE username=$1`, username)
	if err != nil {
		return nil, err
	}
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[domain.ApiUser])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func apiUserConds(f domain.ApiUserFilter) []Cond {
	var conds []Cond
	if f.Username != "" {
		conds = append(conds, Cond{Expr: `username ILIKE '%%' || $%d || '%%'`, Arg: f.Username})
	}
	if f.Role != "" {
		conds = append(conds, Cond{Expr: `role = $%d`, Arg: f.Role})
	}
	return conds
}

var _ ApiUserRepository = (*PGApiUserRepository)(nil)
