package model

// LoginRequest is the payload for admin login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// User is the authenticated principal echoed back on login.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
