package repository

import (
	"context"

	"github.com/tardigrade-project/user-service/internal/domain/entity"
)

// UserRepository is the persistence port for users. Any storage backend
// (relational, in-memory) satisfies it; adapters are selected by explicit
// construction at wiring time.
//
// Lookup methods return (nil, nil) when no user matches; they never invent
// a default. Delete reports whether a row was actually removed.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Save inserts when the user has no id yet, otherwise updates. The
	// returned entity carries the store-assigned id and created_at.
	Save(ctx context.Context, u *entity.User) (*entity.User, error)

	Delete(ctx context.Context, id int64) (bool, error)

	// ListAll pages through users ordered by id ascending, so offset/limit
	// pagination is deterministic.
	ListAll(ctx context.Context, skip, limit int) ([]*entity.User, error)
}
