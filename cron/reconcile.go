package cron

import (
	queueRepoPkg "salonq/database/repository/queue"
	salonRepoPkg "salonq/database/repository/salon"
	"salonq/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartReconciler runs a nightly job that recomputes each salon's queue_count
// from the entries collection. The counter is maintained incrementally during
// the day; this corrects any drift from crashed processes or missed decrements.
func StartReconciler(salonRepo salonRepoPkg.SalonRepository, queueRepo queueRepoPkg.QueueRepository) *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("0 3 * * *", func() {
		ReconcileQueueCounts(salonRepo, queueRepo)
	}); err != nil {
		utils.GetLogger().Error("failed to schedule queue count reconciler", zap.Error(err))
		return c
	}
	c.Start()
	utils.GetLogger().Info("queue count reconciler scheduled", zap.String("spec", "0 3 * * *"))
	return c
}

// ReconcileQueueCounts is the job body, exported so it can run on demand.
func ReconcileQueueCounts(salonRepo salonRepoPkg.SalonRepository, queueRepo queueRepoPkg.QueueRepository) {
	logger := utils.GetLogger()

	counts, err := queueRepo.ActiveCountsBySalon()
	if err != nil {
		logger.Error("reconcile: failed to count active entries", zap.Error(err))
		return
	}
	salons, err := salonRepo.GetAll("")
	if err != nil {
		logger.Error("reconcile: failed to list salons", zap.Error(err))
		return
	}

	fixed := 0
	for _, sal := range salons {
		actual := int(counts[sal.ID])
		if sal.QueueCount == actual {
			continue
		}
		if err := salonRepo.SetQueueCount(sal.ID, actual); err != nil {
			logger.Error("reconcile: failed to correct queue count",
				zap.String("salonId", sal.ID), zap.Error(err))
			continue
		}
		logger.Warn("reconcile: corrected queue count drift",
			zap.String("salonId", sal.ID),
			zap.Int("stored", sal.QueueCount),
			zap.Int("actual", actual))
		fixed++
	}
	logger.Info("queue count reconciliation finished",
		zap.Int("salons", len(salons)), zap.Int("corrected", fixed))
}
