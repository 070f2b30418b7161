package tasks

import (
	"context"
	"encoding/json"
	"time"

	"bizschool/models"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// NewReminderTask builds the asynq task for a pre-session reminder email.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues reminder tasks on the redis-backed queue.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

func NewAsynqReminderScheduler(redisOpts asynq.RedisClientOpt) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{Client: asynq.NewClient(redisOpts)}
}

func (s *AsynqReminderScheduler) Schedule(ctx context.Context, payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.Client.EnqueueContext(ctx, task, opts...)
	return err
}
