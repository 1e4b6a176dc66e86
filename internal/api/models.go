package api

import (
	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"access_token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token
// refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CreateTaskRequest defines the payload for task creation. Status is
// optional and defaults to open.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required,min=3,max=255"`
	Description string `json:"description" validate:"required,min=12"`
	Status      *int   `json:"status"      validate:"omitempty,min=1,max=5"`
}

// UpdateTaskRequest defines the payload for partial task updates. All
// fields are optional; absent fields keep their stored values.
type UpdateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=3,max=255"`
	Description *string `json:"description" validate:"omitempty,min=12"`
	Status      *int    `json:"status"      validate:"omitempty,min=1,max=5"`
}

// CreatePushSubscriptionRequest defines the payload for registering a
// browser push subscription.
type CreatePushSubscriptionRequest struct {
	Endpoint  string `json:"endpoint"   validate:"required,url"`
	P256dhKey string `json:"p256dh_key" validate:"required"`
	AuthKey   string `json:"auth_key"   validate:"required"`
}
