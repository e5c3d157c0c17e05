package queue

import (
	"sync"
	"time"

	"salonq/models"

	"go.mongodb.org/mongo-driver/bson"
)

// In-memory repository fakes mirroring the guarded-update semantics of the mongo
// implementations, so the service logic can be exercised without a database.

type fakeQueueRepo struct {
	mu       sync.Mutex
	entries  map[string]*models.QueueEntry
	counters map[string]int64
}

func newFakeQueueRepo() *fakeQueueRepo {
	return &fakeQueueRepo{
		entries:  make(map[string]*models.QueueEntry),
		counters: make(map[string]int64),
	}
}

func (r *fakeQueueRepo) GetByID(id string) (*models.QueueEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeQueueRepo) ListBySalon(salonID string, statuses []string) ([]models.QueueEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.QueueEntry
	for _, e := range r.entries {
		if e.SalonID != salonID {
			continue
		}
		if len(statuses) > 0 && !contains(statuses, e.Status) {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeQueueRepo) ListByPhone(phone string) ([]models.QueueEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.QueueEntry
	for _, e := range r.entries {
		if e.CustomerPhone == phone {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeQueueRepo) Create(entry *models.QueueEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	cp := *entry
	r.entries[entry.ID] = &cp
	return nil
}

func (r *fakeQueueRepo) NextQueueNumber(salonID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[salonID]++
	return r.counters[salonID], nil
}

func (r *fakeQueueRepo) CountActive(salonID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, e := range r.entries {
		if e.SalonID == salonID && !models.IsTerminalStatus(e.Status) {
			n++
		}
	}
	return n, nil
}

func (r *fakeQueueRepo) CountCreatedSince(salonID string, since time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, e := range r.entries {
		if e.SalonID == salonID && !e.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *fakeQueueRepo) PaidRevenueSince(salonID string, since time.Time) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total float64
	for _, e := range r.entries {
		if e.SalonID != salonID || e.Payment.Status != models.PaymentStatusPaid {
			continue
		}
		if e.Payment.PaidAt == nil || e.Payment.PaidAt.Before(since) {
			continue
		}
		total += e.TotalPrice()
	}
	return total, nil
}

func (r *fakeQueueRepo) ActiveCountsBySalon() (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[string]int64)
	for _, e := range r.entries {
		if !models.IsTerminalStatus(e.Status) {
			counts[e.SalonID]++
		}
	}
	return counts, nil
}

func (r *fakeQueueRepo) TransitionStatus(id string, allowedFrom []string, set bson.M) (*models.QueueEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || !contains(allowedFrom, e.Status) {
		return nil, nil
	}
	previous := *e
	if v, ok := set["status"].(string); ok {
		e.Status = v
	}
	if v, ok := set["approved_by"].(string); ok {
		e.ApprovedBy = v
	}
	if v, ok := set["approved_at"].(time.Time); ok {
		e.ApprovedAt = &v
	}
	if v, ok := set["rejection_reason"].(string); ok {
		e.RejectionReason = v
	}
	e.UpdatedAt = time.Now()
	return &previous, nil
}

func (r *fakeQueueRepo) SetPayment(id string, payment models.PaymentInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[id]; ok {
		e.Payment = payment
	}
	return nil
}

type fakeSalonRepo struct {
	mu     sync.Mutex
	salons map[string]*models.Salon
}

func newFakeSalonRepo() *fakeSalonRepo {
	return &fakeSalonRepo{salons: make(map[string]*models.Salon)}
}

func (r *fakeSalonRepo) GetByID(id string) (*models.Salon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.salons[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSalonRepo) GetAll(status string) ([]models.Salon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Salon
	for _, s := range r.salons {
		if status == "" || s.Status == status {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSalonRepo) FindNearby(longitude, latitude, radiusMeters float64) ([]models.Salon, error) {
	return r.GetAll(models.SalonStatusApproved)
}

func (r *fakeSalonRepo) Create(salon *models.Salon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *salon
	r.salons[salon.ID] = &cp
	return nil
}

func (r *fakeSalonRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.salons[id]
	if !ok {
		return nil
	}
	if v, ok := updateDoc["status"].(string); ok {
		s.Status = v
	}
	if v, ok := updateDoc["name"].(string); ok {
		s.Name = v
	}
	return nil
}

func (r *fakeSalonRepo) IncQueueCount(id string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.salons[id]
	if !ok {
		return nil
	}
	// Guarded like the mongo filter: a decrement never drops below zero.
	if delta < 0 && s.QueueCount <= 0 {
		return nil
	}
	s.QueueCount += delta
	return nil
}

func (r *fakeSalonRepo) SetQueueCount(id string, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.salons[id]; ok {
		s.QueueCount = count
	}
	return nil
}

func (r *fakeSalonRepo) queueCount(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.salons[id]; ok {
		return s.QueueCount
	}
	return -1
}

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeServiceRepo) ListBySalon(salonID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.SalonID == salonID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) Create(service *models.Service) error {
	r.services[service.ID] = service
	return nil
}

func (r *fakeServiceRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (r *fakeServiceRepo) Delete(id string) error {
	delete(r.services, id)
	return nil
}

type fakeStaffRepo struct {
	staff map[string]*models.Staff
}

func (r *fakeStaffRepo) GetByID(id string) (*models.Staff, error) {
	s, ok := r.staff[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStaffRepo) ListBySalon(salonID string) ([]models.Staff, error) {
	var out []models.Staff
	for _, s := range r.staff {
		if s.SalonID == salonID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeStaffRepo) Create(staff *models.Staff) error {
	r.staff[staff.ID] = staff
	return nil
}

func (r *fakeStaffRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (r *fakeStaffRepo) Delete(id string) error {
	delete(r.staff, id)
	return nil
}

type fakeEnqueuer struct {
	mu      sync.Mutex
	refunds []models.RefundPayload
	notices []models.NotifyPayload
}

func (f *fakeEnqueuer) EnqueueRefund(p models.RefundPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refunds = append(f.refunds, p)
	return nil
}

func (f *fakeEnqueuer) EnqueueNotify(p models.NotifyPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, p)
	return nil
}

func (f *fakeEnqueuer) refundCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.refunds)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
