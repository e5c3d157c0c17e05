package models

import "time"

// Staff is a salon employee who can be assigned to queue entries.
type Staff struct {
	ID        string    `bson:"id" json:"id"`
	SalonID   string    `bson:"salon_id" json:"salonId"`
	Name      string    `bson:"name" json:"name"`
	Specialty string    `bson:"specialty,omitempty" json:"specialty,omitempty"`
	ImageURL  string    `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	ImageID   string    `bson:"image_id,omitempty" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
