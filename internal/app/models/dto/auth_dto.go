package dto

// TokenRequest represents an admin token request
type TokenRequest struct {
	AdminKey string `json:"adminKey" binding:"required"`
}

// TokenResponse represents an issued admin token
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"`
}
