package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"filesmanager/internal/domain"
	"filesmanager/internal/queue"
	"filesmanager/internal/repository"

	"github.com/hibiken/asynq"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// WelcomeHandler consumes new-user events. The side effect is a log line
// standing in for a real welcome notification.
type WelcomeHandler struct {
	users UserRepository
}

func NewWelcomeHandler(users UserRepository) *WelcomeHandler {
	return &WelcomeHandler{users: users}
}

func (h *WelcomeHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p queue.WelcomePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("welcome payload: %v: %w", err, asynq.SkipRetry)
	}
	if p.UserID == "" {
		return fmt.Errorf("missing userId: %w", asynq.SkipRetry)
	}

	user, err := h.users.GetByID(ctx, p.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("user %s not found: %w", p.UserID, asynq.SkipRetry)
	}
	if err != nil {
		return err
	}

	log.Printf("Welcome %s!", user.Email)
	return nil
}
