package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tardigrade-project/user-service/internal/domain/entity"
	"github.com/tardigrade-project/user-service/internal/domain/repository"
)

// UserRepository is an in-memory implementation of the user persistence
// port. It mirrors the Postgres adapter's semantics, including the
// unique-email conflict, id-ordered listing, and the update-falls-back-to-
// insert policy, so it can stand in for it in tests.
type UserRepository struct {
	mu     sync.Mutex
	users  map[int64]entity.User
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int64]entity.User),
		nextID: 1,
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := u
		return &cp, nil
	}
	return nil, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.Persisted() {
		if existing, ok := r.users[u.ID]; ok {
			if err := r.checkEmailConflict(u.Email, u.ID); err != nil {
				return nil, err
			}
			existing.Email = u.Email
			existing.Name = u.Name
			existing.IsActive = u.IsActive
			// created_at stays as stored
			r.users[u.ID] = existing
			cp := existing
			return &cp, nil
		}
		// Row vanished; insert as new, same policy as the SQL adapter.
	}

	if err := r.checkEmailConflict(u.Email, 0); err != nil {
		return nil, err
	}
	saved := *u
	saved.ID = r.nextID
	r.nextID++
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = time.Now().UTC()
	}
	r.users[saved.ID] = saved
	cp := saved
	return &cp, nil
}

// checkEmailConflict enforces the same uniqueness the users.email
// constraint provides in Postgres. Caller must hold the lock.
func (r *UserRepository) checkEmailConflict(email string, selfID int64) error {
	for id, u := range r.users {
		if u.Email == email && id != selfID {
			return &entity.EmailAlreadyExistsError{Email: email}
		}
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *UserRepository) ListAll(ctx context.Context, skip, limit int) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := make([]*entity.User, 0)
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(users) >= limit {
			break
		}
		u := r.users[id]
		cp := u
		users = append(users, &cp)
	}
	return users, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
