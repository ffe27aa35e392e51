package session

import "github.com/insure-planner/go-api-server/internal/model"

type LoginRequest struct {
	Provider string `json:"provider" binding:"required,oneof=kakao naver email"`
	Name     string `json:"name" binding:"required,min=1,max=20"`
	Email    string `json:"email" binding:"required,email,max=50"`
}

type LoginResponse struct {
	AccessToken  string            `json:"accessToken"`
	RefreshToken string            `json:"refreshToken"`
	Profile      model.UserProfile `json:"profile"`
}

type SyncStatusResponse struct {
	IsLoggedIn   bool   `json:"isLoggedIn"`
	LastSyncedAt string `json:"lastSyncedAt,omitempty"`
}
