package request

// LoginRequest represents the login request body
type LoginRequest struct {
	Mobile string `json:"mobile" binding:"required"`
	PIN    string `json:"pin" binding:"required,len=4,numeric"`
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Mobile string `json:"mobile" binding:"required"`
	Name   string `json:"name" binding:"required,max=100"`
	PIN    string `json:"pin" binding:"required,len=4,numeric"`
}

// RefreshTokenRequest represents the token refresh request body
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
