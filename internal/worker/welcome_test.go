package worker

import (
	"context"
	"testing"

	"filesmanager/internal/domain"
	"filesmanager/internal/queue"
	"filesmanager/internal/repository"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestWelcomeHandler_ProcessTask(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", Email: "bob@dylan.com"}, nil)

	task, err := queue.NewWelcomeTask("user-1")
	require.NoError(t, err)

	h := NewWelcomeHandler(repo)
	assert.NoError(t, h.ProcessTask(context.Background(), task))
}

func TestWelcomeHandler_UserNotFound(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, "gone").Return(nil, repository.ErrNotFound)

	task, err := queue.NewWelcomeTask("gone")
	require.NoError(t, err)

	h := NewWelcomeHandler(repo)
	err = h.ProcessTask(context.Background(), task)
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestWelcomeHandler_MissingUserID(t *testing.T) {
	task, err := queue.NewWelcomeTask("")
	require.NoError(t, err)

	h := NewWelcomeHandler(new(mockUserRepo))
	err = h.ProcessTask(context.Background(), task)
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
