package queue

import (
	"context"

	"github.com/hibiken/asynq"
)

// Enqueuer hands tasks to the durable work queue. Producers treat enqueueing
// as best-effort: delivery is at-least-once and consumers are idempotent.
type Enqueuer interface {
	Enqueue(ctx context.Context, task *asynq.Task) error
}

// Client is the Redis-backed Enqueuer used by the API process.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr string) *Client {
	return &Client{client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})}
}

func (c *Client) Enqueue(ctx context.Context, task *asynq.Task) error {
	_, err := c.client.EnqueueContext(ctx, task)
	return err
}

func (c *Client) Close() error {
	return c.client.Close()
}
