package cron

import (
	"context"
	"encoding/json"
	"time"

	"salonix/config"
	"salonix/models"
	"salonix/services/notification"
	"salonix/services/tasks"
	"salonix/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitMailWorker runs the async mail worker in background.
func InitMailWorker(mailer notification.Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendMail, handleMailTask(mailer))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting mail worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("mail worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("mail worker exhausted retries")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleMailTask(mailer notification.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.MailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("invalid mail payload", zap.Error(err))
			return err
		}

		if err := mailer.Send(p.To, p.Subject, p.HTML); err != nil {
			utils.GetLogger().Error("mail delivery failed",
				zap.String("to", p.To), zap.Error(err))
			return err
		}
		return nil
	}
}
