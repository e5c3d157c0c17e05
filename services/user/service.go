package user

import (
	"fmt"

	salonRepo "salonq/database/repository/salon"
	userRepo "salonq/database/repository/user"
	"salonq/models"
	"salonq/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultUserService is the production UserService.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	SalonRepo salonRepo.SalonRepository
}

// Register creates an account and returns a fresh session. Only customer and
// salon_admin roles are self-registerable; main admins are provisioned out of band.
func (s *DefaultUserService) Register(req RegisterRequest) (*AuthResponse, error) {
	if req.Role == "" {
		req.Role = models.RoleCustomer
	}
	if req.Role != models.RoleCustomer && req.Role != models.RoleSalonAdmin {
		return nil, fmt.Errorf("role %q cannot self-register", req.Role)
	}

	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := s.Repo.Create(usr); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.buildAuthResponse(usr)
}

// Authenticate verifies credentials and returns a fresh session.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.buildAuthResponse(usr)
}

// buildAuthResponse issues the session token, resolving the salon name for salon
// admins so the claims carry both the ID and a display name.
func (s *DefaultUserService) buildAuthResponse(usr *models.User) (*AuthResponse, error) {
	salonName := ""
	if usr.Role == models.RoleSalonAdmin && usr.SalonID != "" && s.SalonRepo != nil {
		salon, err := s.SalonRepo.GetByID(usr.SalonID)
		if err != nil {
			utils.GetLogger().Warn("buildAuthResponse: salon lookup failed", zap.Error(err))
		} else if salon != nil {
			salonName = salon.Name
		}
	}

	token, err := utils.GenerateSessionToken(usr.ID, usr.Email, usr.Name, usr.Role, usr.SalonID, salonName)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:      usr.ID,
		Name:    usr.Name,
		Email:   usr.Email,
		Role:    usr.Role,
		SalonID: usr.SalonID,
		Token:   token,
	}, nil
}

// GetUserByID fetches one user.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, fmt.Errorf("user not found")
	}
	return usr, nil
}

// GetAllUsers lists every account.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
