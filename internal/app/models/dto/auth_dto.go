package dto

// LoginRequest represents login credentials, forwarded to the backend as-is
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a new account request, forwarded to the backend
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// TokenResponse represents bearer token information issued by the backend
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType,omitempty" example:"Bearer"`
	ExpiresIn int64  `json:"expiresIn,omitempty"`
}
