package models

// User is the authenticated account as reported by /user/me.
type User struct {
	ID         *int64  `json:"id,omitempty"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	ProfilePic *string `json:"profile_pic"`
}

// TokenResponse is the login response carrying the bearer credential.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
