package models

import "time"

// User roles.
const (
	RoleMainAdmin  = "main_admin"
	RoleSalonAdmin = "salon_admin"
	RoleCustomer   = "customer"
)

// User represents an account. SalonID is set only for salon admins and backs the
// authorization guard's fallback lookup when the session token predates the link.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	SalonID      string    `bson:"salon_id,omitempty" json:"salonId,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}
