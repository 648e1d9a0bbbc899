package model

import "time"

type User struct {
	UserID    string    `bson:"_id" json:"user_id"`
	Username  string    `bson:"username" json:"username" binding:"required,min=4,max=20"`
	Email     string    `bson:"email" json:"email" binding:"required,email"`
	Password  string    `bson:"password" json:"password,omitempty" binding:"required,min=6"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`

	// Last login metadata, parsed from the User-Agent header.
	LastLoginAt     time.Time `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`
	LastLoginDevice string    `bson:"last_login_device,omitempty" json:"last_login_device,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
