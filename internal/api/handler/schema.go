package handler

import "github.com/edukita/learning-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"omitempty,oneof=Guru Siswa"`
}

type loginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" validate:"required"`
	Password        string `json:"password"        validate:"required"`
}

type updateProfileRequest struct {
	Username     *string `json:"username,omitempty"      validate:"omitempty,min=3"`
	Email        *string `json:"email,omitempty"         validate:"omitempty,email"`
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty" validate:"omitempty,url"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8"`
}

// --- Response types ---

type messageResponse struct {
	Message string `json:"message"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type loginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

type profileResponse struct {
	User *domain.User `json:"user"`
}

type updateProfileResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type studentsResponse struct {
	Students []domain.User `json:"students"`
}

type usersResponse struct {
	Users []domain.User `json:"users"`
}
