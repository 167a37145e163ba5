package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task types carried by the content pipeline queue.
const (
	TypeThumbnail = "file:thumbnail"
	TypeWelcome   = "user:welcome"
)

// ThumbnailPayload asks the worker to derive resized variants for an uploaded
// image.
type ThumbnailPayload struct {
	UserID string `json:"userId"`
	FileID string `json:"fileId"`
}

// WelcomePayload announces a freshly registered user.
type WelcomePayload struct {
	UserID string `json:"userId"`
}

func NewThumbnailTask(userID, fileID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ThumbnailPayload{UserID: userID, FileID: fileID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeThumbnail, payload), nil
}

func NewWelcomeTask(userID string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomePayload{UserID: userID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeWelcome, payload), nil
}
