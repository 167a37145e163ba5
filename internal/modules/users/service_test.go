package users

import (
	"context"
	"encoding/json"
	"testing"

	"filesmanager/internal/domain"
	"filesmanager/internal/pkg/hash"
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

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type captureEnqueuer struct {
	tasks []*asynq.Task
}

func (e *captureEnqueuer) Enqueue(_ context.Context, task *asynq.Task) error {
	e.tasks = append(e.tasks, task)
	return nil
}

func TestService_Register(t *testing.T) {
	repo := new(mockUserRepo)
	tasks := &captureEnqueuer{}
	svc := NewService(repo, tasks)

	repo.On("ExistsByEmail", mock.Anything, "bob@dylan.com").Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "bob@dylan.com" && u.PasswordHash == hash.SHA1Hex("toto1234!")
	})).Return(nil)

	user, err := svc.Register(context.Background(), "bob@dylan.com", "toto1234!")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)

	require.Len(t, tasks.tasks, 1)
	assert.Equal(t, queue.TypeWelcome, tasks.tasks[0].Type())

	var p queue.WelcomePayload
	require.NoError(t, json.Unmarshal(tasks.tasks[0].Payload(), &p))
	assert.Equal(t, user.ID, p.UserID)
}

func TestService_Register_MissingFields(t *testing.T) {
	svc := NewService(new(mockUserRepo), &captureEnqueuer{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "pw")
	assert.ErrorIs(t, err, ErrMissingEmail)

	_, err = svc.Register(ctx, "bob@dylan.com", "")
	assert.ErrorIs(t, err, ErrMissingPassword)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewService(repo, &captureEnqueuer{})

	repo.On("ExistsByEmail", mock.Anything, "bob@dylan.com").Return(true, nil)

	_, err := svc.Register(context.Background(), "bob@dylan.com", "toto1234!")
	assert.ErrorIs(t, err, ErrAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_GetMe(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewService(repo, &captureEnqueuer{})

	repo.On("GetByID", mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", Email: "bob@dylan.com"}, nil)
	repo.On("GetByID", mock.Anything, "user-2").Return(nil, repository.ErrNotFound)

	user, err := svc.GetMe(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "bob@dylan.com", user.Email)

	_, err = svc.GetMe(context.Background(), "user-2")
	assert.ErrorIs(t, err, ErrNotFound)
}
