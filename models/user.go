package models

import "time"

// User roles.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// User is a customer, staff member, or admin account. Role gates the admin
// and team surfaces; staff accounts are ordinary users with RoleStaff.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	Favorites    []string  `bson:"favorites,omitempty" json:"favorites,omitempty"` // service ids
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// AuthResponse is returned on successful signup or signin.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
