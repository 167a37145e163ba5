package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log"
	"os"

	"filesmanager/internal/domain"
	"filesmanager/internal/queue"
	"filesmanager/internal/repository"

	"github.com/disintegration/imaging"
	"github.com/hibiken/asynq"
)

// ThumbnailWidths are the derived variants produced for every uploaded image.
var ThumbnailWidths = []int{500, 250, 100}

type FileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.FileNode, error)
}

// ThumbnailHandler consumes thumbnail jobs. Delivery is at-least-once, so
// variant writes overwrite whatever is already on disk.
type ThumbnailHandler struct {
	files FileRepository
}

func NewThumbnailHandler(files FileRepository) *ThumbnailHandler {
	return &ThumbnailHandler{files: files}
}

func (h *ThumbnailHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p queue.ThumbnailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("thumbnail payload: %v: %w", err, asynq.SkipRetry)
	}
	if p.FileID == "" {
		return fmt.Errorf("missing fileId: %w", asynq.SkipRetry)
	}
	if p.UserID == "" {
		return fmt.Errorf("missing userId: %w", asynq.SkipRetry)
	}

	file, err := h.files.GetByID(ctx, p.FileID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("file %s not found: %w", p.FileID, asynq.SkipRetry)
	}
	if err != nil {
		return err
	}

	if err := GenerateThumbnails(file.LocalPath); err != nil {
		return fmt.Errorf("thumbnails for file %s: %w", p.FileID, err)
	}

	log.Printf("thumbnails generated for file %s", p.FileID)
	return nil
}

// GenerateThumbnails derives one resized copy per width next to the original,
// named <path>_<width>, keeping aspect ratio and encoded format.
func GenerateThumbnails(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	src, formatName, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	format, err := imaging.FormatFromExtension(formatName)
	if err != nil {
		return fmt.Errorf("format %q: %w", formatName, err)
	}

	for _, width := range ThumbnailWidths {
		thumb := imaging.Resize(src, width, 0, imaging.Lanczos)

		out, err := os.Create(fmt.Sprintf("%s_%d", path, width))
		if err != nil {
			return err
		}
		if err := imaging.Encode(out, thumb, format); err != nil {
			out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}
	}
	return nil
}
