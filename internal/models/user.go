package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account stored in the users collection.
// Created at registration, never updated or deleted afterwards.
type User struct {
	ID           primitive.ObjectID `json:"id"         bson:"_id,omitempty"`
	Username     string             `json:"username"   bson:"username"`
	PasswordHash string             `json:"-"          bson:"password_hash"` // never serialize
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

// RegisterRequest is the JSON body for POST /api/auth/register.
type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	AcceptedTerms   bool   `json:"acceptedTerms"`
}

// LoginRequest is the JSON body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
