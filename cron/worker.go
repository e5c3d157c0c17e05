package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"salonq/config"
	queueRepoPkg "salonq/database/repository/queue"
	"salonq/models"
	"salonq/services/notification"
	"salonq/services/payment"
	"salonq/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitTaskWorker runs the async worker in background. It drains the refund and
// SMS queues; both handlers are idempotent because tasks are delivered
// at-least-once.
func InitTaskWorker(paymentSvc payment.PaymentService, notifSvc notification.NotificationService, queueRepo queueRepoPkg.QueueRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
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
	mux.HandleFunc(tasks.TypeRefund, handleRefundTask(paymentSvc, queueRepo))
	mux.HandleFunc(tasks.TypeNotify, handleNotifyTask(notifSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[TaskWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[TaskWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[TaskWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleRefundTask(paymentSvc payment.PaymentService, queueRepo queueRepoPkg.QueueRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.RefundPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[RefundHandler] Invalid payload: %v", err)
			return err
		}

		// Skip if a previous delivery already refunded this entry.
		entry, err := queueRepo.GetByID(p.EntryID)
		if err != nil {
			return err
		}
		if entry == nil || entry.Payment.Status == models.PaymentStatusRefunded {
			return nil
		}

		log.Printf("[RefundHandler] Refunding payment %s for entry %s (%s)", p.PaymentID, p.EntryID, p.Reason)
		if err := paymentSvc.Refund(p.PaymentID, p.AmountPaise); err != nil {
			log.Printf("[RefundHandler] Refund failed for entry %s: %v", p.EntryID, err)
			return err
		}

		refunded := entry.Payment
		refunded.Status = models.PaymentStatusRefunded
		if err := queueRepo.SetPayment(p.EntryID, refunded); err != nil {
			log.Printf("[RefundHandler] Failed to record refund on entry %s: %v", p.EntryID, err)
			return err
		}
		return nil
	}
}

func handleNotifyTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.NotifyPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NotifyHandler] Invalid payload: %v", err)
			return err
		}

		if err := notifSvc.SendSMS(p.Phone, p.Message); err != nil {
			log.Printf("[NotifyHandler] Failed to send SMS to %s: %v", p.Phone, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[TaskWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
