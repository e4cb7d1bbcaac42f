package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tardigrade-project/user-service/internal/domain/entity"
	"github.com/tardigrade-project/user-service/internal/domain/repository"
)

// uniqueViolation is the SQLSTATE Postgres reports when a unique
// constraint is violated. The users.email constraint is the authoritative
// uniqueness enforcement; the use case's pre-flight lookup only narrows
// the race window.
const uniqueViolation = "23505"

// UserRepository implements the user persistence port against Postgres
// through a pgx pool. The pool is acquired and released by the caller that
// constructs the repository.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = "id, email, name, is_active, created_at"

func (r *UserRepository) scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.IsActive, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)
	return r.scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email)
	return r.scanUser(row)
}

// Save inserts when the entity has no id, otherwise updates email, name,
// and is_active in place. created_at is never overwritten on update.
//
// When an update targets an id that vanished between the caller's read and
// this call, Save falls back to inserting the entity as a new row instead
// of failing. This upsert-with-fallback is a deliberate policy: callers
// that need strict update-or-fail must check existence themselves.
func (r *UserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	if !u.Persisted() {
		return r.insert(ctx, u)
	}

	saved := *u
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET email = $1, name = $2, is_active = $3
		WHERE id = $4
	`, u.Email, u.Name, u.IsActive, u.ID)
	if err != nil {
		return nil, translateUniqueViolation(err, u.Email)
	}
	if res.RowsAffected() == 0 {
		// Row vanished; fall back to insert-as-new.
		fresh := *u
		fresh.ID = 0
		return r.insert(ctx, &fresh)
	}

	// Re-read so the returned entity reflects the stored row, including
	// the untouched created_at.
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, u.ID)
	if err := row.Scan(&saved.ID, &saved.Email, &saved.Name, &saved.IsActive, &saved.CreatedAt); err != nil {
		return nil, fmt.Errorf("refresh updated user: %w", err)
	}
	return &saved, nil
}

func (r *UserRepository) insert(ctx context.Context, u *entity.User) (*entity.User, error) {
	// id and created_at are omitted so the engine assigns them.
	saved := *u
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, name, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, u.Email, u.Name, u.IsActive)
	if err := row.Scan(&saved.ID, &saved.CreatedAt); err != nil {
		return nil, translateUniqueViolation(err, u.Email)
	}
	return &saved, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (r *UserRepository) ListAll(ctx context.Context, skip, limit int) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY id ASC
		OFFSET $1 LIMIT $2
	`, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		u := &entity.User{}
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// translateUniqueViolation maps a violated email unique constraint to the
// domain conflict error so concurrent creates that slip past the pre-flight
// lookup surface the same way.
func translateUniqueViolation(err error, email string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &entity.EmailAlreadyExistsError{Email: email}
	}
	return err
}

var _ repository.UserRepository = (*UserRepository)(nil)
