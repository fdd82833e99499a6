package dto

import "myday/model"

type UserResponse struct {
	UserID   string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// UpdateProfileRequest is a patch over the profile; empty fields are left
// untouched.
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
	Phone    string `json:"phone"`
	Timezone string `json:"timezone"`
}

type SearchEmailRequest struct {
	Email string `json:"email"`
}

func UserToResponse(u model.User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Name:     u.Name,
		Email:    u.Email,
		Avatar:   u.Avatar,
		Phone:    u.Phone,
		Timezone: u.Timezone,
	}
}
