package domain

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claims is the decoded payload of an access token.
type Claims struct {
	Subject   int64
	ExpiresAt time.Time
}

// AccessToken is what a successful login hands back to the client.
type AccessToken struct {
	Token     string `json:"access_token"`
	TokenType string `json:"token_type"`
}

const TokenTypeBearer = "bearer"
