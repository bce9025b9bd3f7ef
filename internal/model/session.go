package model

import "time"

type Session struct {
	ID           string
	Username     string
	RefreshToken string
	ExpiresAt    time.Time
}

type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
