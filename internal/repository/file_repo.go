package repository

import (
	"context"
	"errors"

	"filesmanager/internal/domain"

	"gorm.io/gorm"
)

// PageSize is the fixed page length for listings.
const PageSize = 20

type FileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) Create(ctx context.Context, f *domain.FileNode) error {
	return r.db.WithContext(ctx).Create(f).Error
}

// GetByID resolves a node by id only; visibility rules decide access later.
func (r *FileRepository) GetByID(ctx context.Context, id string) (*domain.FileNode, error) {
	var f domain.FileNode
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FileRepository) GetByOwner(ctx context.Context, id, userID string) (*domain.FileNode, error) {
	var f domain.FileNode
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// List returns one page of the owner's nodes, most recent first. An empty
// parentID means no parent filter, not the root.
func (r *FileRepository) List(ctx context.Context, userID, parentID string, page int) ([]domain.FileNode, error) {
	if page < 0 {
		page = 0
	}

	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if parentID != "" {
		q = q.Where("parent_id = ?", parentID)
	}

	var nodes []domain.FileNode
	err := q.Order("created_at DESC").
		Offset(page * PageSize).
		Limit(PageSize).
		Find(&nodes).Error
	return nodes, err
}

// SetPublic flips visibility on an owned node and returns the updated record.
func (r *FileRepository) SetPublic(ctx context.Context, id, userID string, public bool) (*domain.FileNode, error) {
	tx := r.db.WithContext(ctx).Model(&domain.FileNode{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_public", public)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByOwner(ctx, id, userID)
}

func (r *FileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.FileNode{}).Count(&count).Error
	return count, err
}
