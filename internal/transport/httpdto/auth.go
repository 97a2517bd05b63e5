package httpdto

import "community-board/internal/domain/user"

// LoginRequest is used for POST /login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is used for POST /register
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after a successful login or registration.
type AuthResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    user.Public `json:"user"`
}

const (
	MsgLoginRequired    = "Username and password are required"
	MsgLoginFailed      = "User not found or incorrect password"
	MsgLoginOK          = "Login successful!"
	MsgRegisterRequired = "All fields are required"
	MsgRegisterConflict = "Username or email already exists"
	MsgRegisterOK       = "User registered successfully"
	MsgServerError      = "Server error"
)
