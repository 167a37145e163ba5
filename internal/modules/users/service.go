package users

import (
	"context"
	"errors"
	"log"

	"filesmanager/internal/domain"
	"filesmanager/internal/pkg/hash"
	"filesmanager/internal/queue"
	"filesmanager/internal/repository"

	"github.com/google/uuid"
)

// Service handles registration and profile lookup.
type Service struct {
	users UserRepository
	tasks queue.Enqueuer
}

func NewService(users UserRepository, tasks queue.Enqueuer) *Service {
	return &Service{users: users, tasks: tasks}
}

// Register creates a user and hands a welcome task to the queue. The enqueue
// is best-effort: the account exists once the insert succeeds.
func (s *Service) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	if password == "" {
		return nil, ErrMissingPassword
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash.SHA1Hex(password),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	task, err := queue.NewWelcomeTask(user.ID)
	if err == nil {
		err = s.tasks.Enqueue(ctx, task)
	}
	if err != nil {
		log.Printf("welcome enqueue failed for user %s: %v", user.ID, err)
	}

	return user, nil
}

func (s *Service) GetMe(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
