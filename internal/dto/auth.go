package dto

import "github.com/shwefx/money_changer_app/internal/core/domain"

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse identifies the logged-in user. The session token is also set
// as an httpOnly cookie; it is returned in the body for non-browser clients.
type LoginResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// MeResponse describes the authenticated user.
type MeResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// ToMeResponse converts a domain.User to a MeResponse.
func ToMeResponse(u *domain.User) MeResponse {
	return MeResponse{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Role:     u.Role,
	}
}
