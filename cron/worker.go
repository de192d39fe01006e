package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/pros100kyiv/HUBbase-sub001/config"
	apptRepo "github.com/pros100kyiv/HUBbase-sub001/database/repository/appointment"
	"github.com/pros100kyiv/HUBbase-sub001/services/schedule"
	"github.com/pros100kyiv/HUBbase-sub001/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const sweepInterval = 15 * time.Minute

// InitAutoCompleteWorker runs the async worker in background. It sweeps the
// appointment book every sweepInterval and marks past non-cancelled
// appointments as Done, so the day view and the AI tools see finished visits
// without staff clicking through them.
func InitAutoCompleteWorker(appts apptRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAutoComplete, handleAutoCompleteTask(appts))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Keep a sweep task queued at all times
	go scheduleSweeps(redisOpts)

	// Start async worker with retry logic
	go func() {
		log.Println("[AutoCompleteWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[AutoCompleteWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[AutoCompleteWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleAutoCompleteTask(appts apptRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.AutoCompletePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[AutoCompleteHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		n, err := appts.CompleteBefore(p.Date, p.Time)
		if err != nil {
			log.Printf("[AutoCompleteHandler] ❌ Sweep failed: %v", err)
			return err
		}
		if n > 0 {
			log.Printf("[AutoCompleteHandler] ✅ Marked %d appointments as Done (cutoff %s %s)", n, p.Date, p.Time)
		}
		return nil
	}
}

// scheduleSweeps enqueues one autocomplete task per sweepInterval, stamped
// with the enqueue-time cutoff.
func scheduleSweeps(redisOpts asynq.RedisClientOpt) {
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	enqueue := func(now time.Time) {
		payload := tasks.AutoCompletePayload{
			Date: schedule.DateKey(now),
			Time: now.Format("15:04"),
		}
		task, opts, err := tasks.NewAutoCompleteTask(payload, now)
		if err != nil {
			log.Printf("[AutoCompleteWorker] ❌ Failed to build sweep task: %v", err)
			return
		}
		if _, err := client.Enqueue(task, opts...); err != nil {
			log.Printf("[AutoCompleteWorker] ❌ Failed to enqueue sweep: %v", err)
		}
	}

	enqueue(time.Now())
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for now := range ticker.C {
		enqueue(now)
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[AutoCompleteWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
