package model

import "time"

type Session struct {
	ID        int64     `json:"id,string"`
	UserID    int64     `json:"userId,string"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
