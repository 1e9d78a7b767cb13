package tasks

import (
	"encoding/json"

	"salonix/models"

	"github.com/hibiken/asynq"
)

const TypeSendMail = "mail:send"

func NewMailTask(payload models.MailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendMail, b)
	opts := []asynq.Option{asynq.MaxRetry(3)}

	return task, opts, nil
}
