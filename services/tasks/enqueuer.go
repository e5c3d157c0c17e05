package tasks

import (
	"salonq/models"
	"salonq/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// AsynqEnqueuer pushes refund and notification work onto the Redis-backed task
// queue. Enqueue happens after the database write committed, so tasks may be
// delivered more than once and handlers must tolerate that.
type AsynqEnqueuer struct {
	Client *asynq.Client
}

func NewAsynqEnqueuer(client *asynq.Client) *AsynqEnqueuer {
	return &AsynqEnqueuer{Client: client}
}

func (e *AsynqEnqueuer) EnqueueRefund(p models.RefundPayload) error {
	task, opts, err := NewRefundTask(p)
	if err != nil {
		return err
	}
	info, err := e.Client.Enqueue(task, opts...)
	if err != nil {
		return err
	}
	utils.GetLogger().Info("enqueued refund task",
		zap.String("taskId", info.ID), zap.String("entryId", p.EntryID))
	return nil
}

func (e *AsynqEnqueuer) EnqueueNotify(p models.NotifyPayload) error {
	task, opts, err := NewNotifyTask(p)
	if err != nil {
		return err
	}
	_, err = e.Client.Enqueue(task, opts...)
	return err
}
