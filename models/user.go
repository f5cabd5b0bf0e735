package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserProfile is the persisted user document. Email doubles as the owner key
// for inventory items and listings.
type UserProfile struct {
	ObjectID  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ID        string             `bson:"id" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	Phone     string             `bson:"phone" json:"phone"`
	Address   string             `bson:"address" json:"address"`
	GoogleID  string             `bson:"googleId" json:"googleId"`
	Avatar    string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProfileComplete reports whether the one-time profile completion form has
// been filled in. Signed-in users without phone and address are routed to it.
func (u *UserProfile) ProfileComplete() bool {
	return u.Phone != "" && u.Address != ""
}

// CreateUserRequest is the POST /api/users/profile body.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	GoogleID string `json:"googleId"`
	Avatar   string `json:"avatar"`
}

func (r *CreateUserRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
	r.GoogleID = strings.TrimSpace(r.GoogleID)

	if r.Email == "" || r.Name == "" || r.Phone == "" || r.Address == "" || r.GoogleID == "" {
		return fmt.Errorf("missing required fields: email, name, phone, address, googleId")
	}
	return nil
}

// UpdateUserRequest is the PUT /api/users/profile body. Empty fields are
// left untouched.
type UpdateUserRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Avatar  string `json:"avatar"`
}

func (r *UpdateUserRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
	r.Avatar = strings.TrimSpace(r.Avatar)
	return nil
}
