package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tardigrade-project/user-service/internal/domain/entity"
	repo "github.com/tardigrade-project/user-service/internal/domain/repository"
)

const (
	// DefaultListLimit caps a list call when the caller does not say otherwise.
	DefaultListLimit = 100
)

// Service orchestrates user use cases: validation, business rules, and
// repository calls. It holds no state of its own; all consistency beyond
// the pre-flight checks here is delegated to the storage engine.
type Service struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewService(repo repo.UserRepository, logger *logrus.Logger) *Service {
	return &Service{Repo: repo, Logger: logger}
}

// CreateUser validates the input, enforces email uniqueness, and persists
// a new user. Validation runs before the uniqueness lookup so the cheap
// checks fail first. The existence check is a pre-flight convenience; the
// unique constraint on users.email is the real enforcement, and the
// adapter reports a violated constraint as EmailAlreadyExistsError too.
func (s *Service) CreateUser(ctx context.Context, email, name string) (*entity.User, error) {
	u := entity.NewUser(email, name)
	if err := u.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}
	if existing != nil {
		return nil, &entity.EmailAlreadyExistsError{Email: email}
	}

	created, err := s.Repo.Save(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": created.ID, "email": created.Email}).Info("user created")
	}
	return created, nil
}

// GetUser returns the user with the given id or UserNotFoundError.
func (s *Service) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, &entity.UserNotFoundError{ID: id}
	}
	return u, nil
}

// ListUsers pages through users. There is no business rule here beyond
// defaulting: negative skip becomes 0 and a non-positive limit becomes
// DefaultListLimit. Ordering is the repository's contract.
func (s *Service) ListUsers(ctx context.Context, skip, limit int) ([]*entity.User, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	users, err := s.Repo.ListAll(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateUserInput carries optional field overrides; nil means "leave as is".
type UpdateUserInput struct {
	Email    *string
	Name     *string
	IsActive *bool
}

// UpdateUser loads the user, applies the provided overrides, re-validates,
// and saves. ID and CreatedAt never change through an update. A duplicate
// email surfaces from the adapter as EmailAlreadyExistsError.
func (s *Service) UpdateUser(ctx context.Context, id int64, in UpdateUserInput) (*entity.User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.Repo.Save(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", updated.ID).Info("user updated")
	}
	return updated, nil
}

// DeleteUser removes the user with the given id. The existence check runs
// first so a missing id fails with UserNotFoundError before any delete is
// attempted. Once existence is confirmed the delete reports true, barring
// a concurrent removal.
func (s *Service) DeleteUser(ctx context.Context, id int64) (bool, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return false, &entity.UserNotFoundError{ID: id}
	}

	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", id).Info("user deleted")
	}
	return deleted, nil
}
