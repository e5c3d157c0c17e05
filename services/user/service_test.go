package user

import (
	"testing"

	"salonq/models"
	"salonq/utils"

	"go.mongodb.org/mongo-driver/bson"
)

type memUserRepo struct {
	users map[string]*models.User
}

func (r *memUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memUserRepo) Create(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (r *memUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func newUserService() (*DefaultUserService, *memUserRepo) {
	repo := &memUserRepo{users: make(map[string]*models.User)}
	return &DefaultUserService{Repo: repo}, repo
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, repo := newUserService()

	resp, err := svc.Register(RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "correct-horse",
		Role:     models.RoleSalonAdmin,
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.Role != models.RoleSalonAdmin {
		t.Errorf("role = %s, want salon_admin", resp.Role)
	}
	if claims, ok := utils.VerifySessionToken(resp.Token); !ok || claims.UserID != resp.ID {
		t.Error("registration token does not verify for the new user")
	}

	stored := repo.users[resp.ID]
	if stored.PasswordHash == "correct-horse" || stored.PasswordHash == "" {
		t.Error("password stored unhashed")
	}

	authed, err := svc.Authenticate("asha@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if authed.ID != resp.ID {
		t.Errorf("authenticated id = %s, want %s", authed.ID, resp.ID)
	}

	if _, err := svc.Authenticate("asha@example.com", "wrong"); err == nil {
		t.Error("wrong password accepted")
	}
	if _, err := svc.Authenticate("nobody@example.com", "whatever"); err == nil {
		t.Error("unknown email accepted")
	}
}

func TestRegisterDefaultsToCustomer(t *testing.T) {
	svc, _ := newUserService()
	resp, err := svc.Register(RegisterRequest{
		Name:     "Ben",
		Email:    "ben@example.com",
		Password: "long-enough-pass",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.Role != models.RoleCustomer {
		t.Errorf("role = %s, want customer", resp.Role)
	}
}

func TestRegisterRejectsMainAdminAndDuplicates(t *testing.T) {
	svc, _ := newUserService()

	if _, err := svc.Register(RegisterRequest{
		Name:     "Mallory",
		Email:    "root@example.com",
		Password: "long-enough-pass",
		Role:     models.RoleMainAdmin,
	}); err == nil {
		t.Error("main_admin self-registration accepted")
	}

	if _, err := svc.Register(RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Password: "long-enough-pass",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(RegisterRequest{
		Name: "Asha Again", Email: "asha@example.com", Password: "long-enough-pass",
	}); err == nil {
		t.Error("duplicate email accepted")
	}
}
