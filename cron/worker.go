// Package cron runs the background completion sweeper: confirmed
// reservations whose end time has passed are flipped to COMPLETED so
// they stop counting against availability history views.
package cron

import (
	"context"
	"time"

	"fitbook/config"
	"fitbook/database/repository/reservation"
	"fitbook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeReservationComplete = "reservation:complete"

const sweepInterval = 5 * time.Minute

// InitCompletionSweeper starts the asynq worker and the periodic
// scheduler that enqueues sweep tasks. Requires Redis; callers skip
// this entirely when running without one.
func InitCompletionSweeper(store reservation.Store) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReservationComplete, handleSweepTask(store))

	go func() {
		utils.GetLogger().Info("completion sweeper worker starting")
		if err := srv.Run(mux); err != nil {
			utils.GetLogger().Error("completion sweeper worker stopped", zap.Error(err))
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	if _, err := scheduler.Register(
		"@every "+sweepInterval.String(),
		asynq.NewTask(TypeReservationComplete, nil),
	); err != nil {
		utils.GetLogger().Error("failed to register sweep schedule", zap.Error(err))
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			utils.GetLogger().Error("completion sweeper scheduler stopped", zap.Error(err))
		}
	}()
}

func handleSweepTask(store reservation.Store) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		n, err := store.CompleteBefore(ctx, time.Now())
		if err != nil {
			utils.GetLogger().Error("completion sweep failed", zap.Error(err))
			return err
		}
		if n > 0 {
			utils.GetLogger().Info("completion sweep done", zap.Int("completed", n))
		}
		return nil
	}
}
