package catalog

import (
	"testing"

	"salonq/models"
	"salonq/services/queue"

	"go.mongodb.org/mongo-driver/bson"
)

type memServiceRepo struct {
	services map[string]*models.Service
}

func (r *memServiceRepo) GetByID(id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memServiceRepo) ListBySalon(salonID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.SalonID == salonID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memServiceRepo) Create(service *models.Service) error {
	r.services[service.ID] = service
	return nil
}

func (r *memServiceRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	s, ok := r.services[id]
	if !ok {
		return nil
	}
	if v, ok := updateDoc["name"].(string); ok {
		s.Name = v
	}
	if v, ok := updateDoc["price"].(float64); ok {
		s.Price = v
	}
	if v, ok := updateDoc["duration_minutes"].(int); ok {
		s.DurationMinutes = v
	}
	return nil
}

func (r *memServiceRepo) Delete(id string) error {
	delete(r.services, id)
	return nil
}

type memStaffRepo struct {
	staff map[string]*models.Staff
}

func (r *memStaffRepo) GetByID(id string) (*models.Staff, error) {
	s, ok := r.staff[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memStaffRepo) ListBySalon(salonID string) ([]models.Staff, error) {
	var out []models.Staff
	for _, s := range r.staff {
		if s.SalonID == salonID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memStaffRepo) Create(staff *models.Staff) error {
	r.staff[staff.ID] = staff
	return nil
}

func (r *memStaffRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (r *memStaffRepo) Delete(id string) error {
	delete(r.staff, id)
	return nil
}

func newCatalogEnv() (*DefaultCatalogService, *memServiceRepo, *memStaffRepo) {
	svcRepo := &memServiceRepo{services: map[string]*models.Service{
		"svc-1": {ID: "svc-1", SalonID: "salon-1", Name: "Haircut", Price: 300, DurationMinutes: 30},
		"svc-2": {ID: "svc-2", SalonID: "salon-2", Name: "Shave", Price: 100, DurationMinutes: 10},
	}}
	staffRepo := &memStaffRepo{staff: map[string]*models.Staff{
		"staff-1": {ID: "staff-1", SalonID: "salon-1", Name: "Asha"},
	}}
	return &DefaultCatalogService{ServiceRepo: svcRepo, StaffRepo: staffRepo}, svcRepo, staffRepo
}

func wantCode(t *testing.T, err error, code string) {
	t.Helper()
	qe, ok := queue.AsQueueError(err)
	if !ok {
		t.Fatalf("expected QueueError %s, got %v", code, err)
	}
	if qe.Code != code {
		t.Fatalf("error code = %s, want %s", qe.Code, code)
	}
}

func TestCreateServiceValidatesInput(t *testing.T) {
	svc, repo, _ := newCatalogEnv()

	created, err := svc.CreateService("salon-1", ServiceInput{Name: "Coloring", Price: 1200, DurationMinutes: 60})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	if created.SalonID != "salon-1" {
		t.Errorf("salon id = %s, want salon-1", created.SalonID)
	}
	if _, ok := repo.services[created.ID]; !ok {
		t.Error("service not persisted")
	}

	_, err = svc.CreateService("salon-1", ServiceInput{Name: "Broken", Price: 100, DurationMinutes: 0})
	wantCode(t, err, queue.ErrCodeInvalidInput)
}

func TestUpdateServiceEnforcesTenant(t *testing.T) {
	svc, _, _ := newCatalogEnv()

	_, err := svc.UpdateService("salon-1", "svc-2", ServiceInput{Name: "Hijack", Price: 1, DurationMinutes: 1})
	wantCode(t, err, queue.ErrCodeForbidden)

	_, err = svc.UpdateService("salon-1", "missing", ServiceInput{Name: "X", Price: 1, DurationMinutes: 1})
	wantCode(t, err, queue.ErrCodeNotFound)

	updated, err := svc.UpdateService("salon-1", "svc-1", ServiceInput{Name: "Trim", Price: 250, DurationMinutes: 20})
	if err != nil {
		t.Fatalf("UpdateService: %v", err)
	}
	if updated.Name != "Trim" {
		t.Errorf("name = %s, want Trim", updated.Name)
	}
}

func TestDeleteServiceEnforcesTenant(t *testing.T) {
	svc, repo, _ := newCatalogEnv()

	wantCode(t, svc.DeleteService("salon-1", "svc-2"), queue.ErrCodeForbidden)
	if _, ok := repo.services["svc-2"]; !ok {
		t.Fatal("foreign service was deleted")
	}

	if err := svc.DeleteService("salon-1", "svc-1"); err != nil {
		t.Fatalf("DeleteService: %v", err)
	}
	if _, ok := repo.services["svc-1"]; ok {
		t.Error("service still present after delete")
	}
}

func TestStaffCRUDEnforcesTenant(t *testing.T) {
	svc, _, staffRepo := newCatalogEnv()

	created, err := svc.CreateStaff("salon-1", StaffInput{Name: "Raj", Specialty: "Color"})
	if err != nil {
		t.Fatalf("CreateStaff: %v", err)
	}
	if created.SalonID != "salon-1" {
		t.Errorf("salon id = %s, want salon-1", created.SalonID)
	}

	_, err = svc.UpdateStaff("salon-2", "staff-1", StaffInput{Name: "Steal"})
	wantCode(t, err, queue.ErrCodeForbidden)

	if err := svc.DeleteStaff("salon-1", "staff-1"); err != nil {
		t.Fatalf("DeleteStaff: %v", err)
	}
	if _, ok := staffRepo.staff["staff-1"]; ok {
		t.Error("staff still present after delete")
	}
}
