package files

import (
	"context"

	"filesmanager/internal/domain"
)

type FileRepository interface {
	Create(ctx context.Context, f *domain.FileNode) error
	GetByID(ctx context.Context, id string) (*domain.FileNode, error)
	GetByOwner(ctx context.Context, id, userID string) (*domain.FileNode, error)
	List(ctx context.Context, userID, parentID string, page int) ([]domain.FileNode, error)
	SetPublic(ctx context.Context, id, userID string, public bool) (*domain.FileNode, error)
}

type ContentStore interface {
	Put(data []byte) (string, error)
	Get(path string) ([]byte, error)
}
