package files

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"

	"filesmanager/internal/domain"
	"filesmanager/internal/queue"
	"filesmanager/internal/repository"
	"filesmanager/internal/storage"

	"github.com/google/uuid"
)

// Service owns the file/folder hierarchy: creation, lookups, listing,
// visibility and content reads. All cross-request invariants are enforced via
// the document store, the single source of truth.
type Service struct {
	files   FileRepository
	content ContentStore
	tasks   queue.Enqueuer
}

func NewService(files FileRepository, content ContentStore, tasks queue.Enqueuer) *Service {
	return &Service{files: files, content: content, tasks: tasks}
}

// Create validates and inserts a node. For file/image nodes the payload is
// decoded and persisted first, so a crash between blob write and insert
// leaves an orphan blob, never a dangling record. Image uploads enqueue a
// thumbnail job; enqueue failures are logged and swallowed because
// thumbnailing is best-effort.
func (s *Service) Create(ctx context.Context, ownerID string, req UploadRequest) (NodeDescriptor, error) {
	var zero NodeDescriptor

	if req.Name == "" {
		return zero, ErrMissingName
	}
	if req.Type == "" || !domain.ValidFileType(req.Type) {
		return zero, ErrMissingType
	}
	if req.Type != domain.TypeFolder && req.Data == "" {
		return zero, ErrMissingData
	}

	parentID := string(req.ParentID)
	if parentID == "" {
		parentID = domain.RootParentID
	}
	if parentID != domain.RootParentID {
		parent, err := s.files.GetByOwner(ctx, parentID, ownerID)
		if errors.Is(err, repository.ErrNotFound) {
			return zero, ErrParentNotFound
		}
		if err != nil {
			return zero, err
		}
		if parent.Type != domain.TypeFolder {
			return zero, ErrParentNotFolder
		}
	}

	node := &domain.FileNode{
		ID:       uuid.New().String(),
		UserID:   ownerID,
		Name:     req.Name,
		Type:     req.Type,
		IsPublic: req.IsPublic,
		ParentID: parentID,
	}

	if req.Type != domain.TypeFolder {
		data, err := base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			return zero, ErrMissingData
		}
		path, err := s.content.Put(data)
		if err != nil {
			return zero, fmt.Errorf("persist content: %w", err)
		}
		node.LocalPath = path
	}

	if err := s.files.Create(ctx, node); err != nil {
		return zero, err
	}

	if node.Type == domain.TypeImage {
		task, err := queue.NewThumbnailTask(ownerID, node.ID)
		if err == nil {
			err = s.tasks.Enqueue(ctx, task)
		}
		if err != nil {
			log.Printf("thumbnail enqueue failed for file %s: %v", node.ID, err)
		}
	}

	return toDescriptor(node), nil
}

func (s *Service) Get(ctx context.Context, ownerID, id string) (NodeDescriptor, error) {
	node, err := s.files.GetByOwner(ctx, id, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return NodeDescriptor{}, ErrNotFound
	}
	if err != nil {
		return NodeDescriptor{}, err
	}
	return toDescriptor(node), nil
}

func (s *Service) List(ctx context.Context, ownerID, parentID string, page int) ([]NodeDescriptor, error) {
	nodes, err := s.files.List(ctx, ownerID, parentID, page)
	if err != nil {
		return nil, err
	}

	descriptors := make([]NodeDescriptor, 0, len(nodes))
	for i := range nodes {
		descriptors = append(descriptors, toDescriptor(&nodes[i]))
	}
	return descriptors, nil
}

func (s *Service) SetPublic(ctx context.Context, ownerID, id string, public bool) (NodeDescriptor, error) {
	node, err := s.files.SetPublic(ctx, id, ownerID, public)
	if errors.Is(err, repository.ErrNotFound) {
		return NodeDescriptor{}, ErrNotFound
	}
	if err != nil {
		return NodeDescriptor{}, err
	}
	return toDescriptor(node), nil
}

// ReadContent returns the bytes of a node plus its display name for content
// type negotiation. Access control is by omission: a private node read by
// anyone but its owner reports Not found, never Unauthorized, so existence is
// not leaked. size selects a pre-generated derived variant; there is no
// fallback to the original when the variant is missing.
func (s *Service) ReadContent(ctx context.Context, requesterID, id, size string) ([]byte, string, error) {
	node, err := s.files.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}

	if !node.IsPublic && (requesterID == "" || requesterID != node.UserID) {
		return nil, "", ErrNotFound
	}
	if node.Type == domain.TypeFolder {
		return nil, "", ErrFolderNoContent
	}

	path := node.LocalPath
	if size != "" {
		path = fmt.Sprintf("%s_%s", node.LocalPath, size)
	}

	data, err := s.content.Get(path)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}
	return data, node.Name, nil
}
