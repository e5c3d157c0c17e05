package cron

import (
	"testing"
	"time"

	"salonq/models"

	"go.mongodb.org/mongo-driver/bson"
)

type stubSalonRepo struct {
	salons   map[string]*models.Salon
	setCalls map[string]int
}

func (r *stubSalonRepo) GetByID(id string) (*models.Salon, error) {
	s, ok := r.salons[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *stubSalonRepo) GetAll(status string) ([]models.Salon, error) {
	var out []models.Salon
	for _, s := range r.salons {
		if status == "" || s.Status == status {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubSalonRepo) FindNearby(longitude, latitude, radiusMeters float64) ([]models.Salon, error) {
	return nil, nil
}
func (r *stubSalonRepo) Create(salon *models.Salon) error                    { return nil }
func (r *stubSalonRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (r *stubSalonRepo) IncQueueCount(id string, delta int) error            { return nil }

func (r *stubSalonRepo) SetQueueCount(id string, count int) error {
	r.salons[id].QueueCount = count
	r.setCalls[id]++
	return nil
}

type stubQueueRepo struct {
	active map[string]int64
}

func (r *stubQueueRepo) ActiveCountsBySalon() (map[string]int64, error) { return r.active, nil }

func (r *stubQueueRepo) GetByID(string) (*models.QueueEntry, error)                { return nil, nil }
func (r *stubQueueRepo) ListBySalon(string, []string) ([]models.QueueEntry, error) { return nil, nil }
func (r *stubQueueRepo) ListByPhone(string) ([]models.QueueEntry, error)           { return nil, nil }
func (r *stubQueueRepo) Create(*models.QueueEntry) error                           { return nil }
func (r *stubQueueRepo) NextQueueNumber(string) (int64, error)                     { return 0, nil }
func (r *stubQueueRepo) CountActive(string) (int64, error)                         { return 0, nil }
func (r *stubQueueRepo) CountCreatedSince(string, time.Time) (int64, error)        { return 0, nil }
func (r *stubQueueRepo) PaidRevenueSince(string, time.Time) (float64, error)       { return 0, nil }
func (r *stubQueueRepo) SetPayment(string, models.PaymentInfo) error               { return nil }
func (r *stubQueueRepo) TransitionStatus(string, []string, bson.M) (*models.QueueEntry, error) {
	return nil, nil
}

func TestReconcileQueueCountsRepairsDrift(t *testing.T) {
	salonRepo := &stubSalonRepo{
		salons: map[string]*models.Salon{
			"salon-drifted": {ID: "salon-drifted", Status: models.SalonStatusApproved, QueueCount: 5},
			"salon-exact":   {ID: "salon-exact", Status: models.SalonStatusApproved, QueueCount: 3},
			"salon-stale":   {ID: "salon-stale", Status: models.SalonStatusApproved, QueueCount: 1},
		},
		setCalls: make(map[string]int),
	}
	queueRepo := &stubQueueRepo{active: map[string]int64{
		"salon-drifted": 2,
		"salon-exact":   3,
	}}

	ReconcileQueueCounts(salonRepo, queueRepo)

	if got := salonRepo.salons["salon-drifted"].QueueCount; got != 2 {
		t.Errorf("drifted salon count = %d, want 2", got)
	}
	if salonRepo.setCalls["salon-drifted"] != 1 {
		t.Errorf("drifted salon corrected %d times, want 1", salonRepo.setCalls["salon-drifted"])
	}

	// A matching counter must not be rewritten.
	if salonRepo.setCalls["salon-exact"] != 0 {
		t.Errorf("exact salon corrected %d times, want 0", salonRepo.setCalls["salon-exact"])
	}

	// No active entries at all means the stored count resets to zero.
	if got := salonRepo.salons["salon-stale"].QueueCount; got != 0 {
		t.Errorf("stale salon count = %d, want 0", got)
	}
}
