package session

import (
	"context"
	"fmt"
	"time"

	"github.com/insure-planner/go-api-server/internal/model"
	"github.com/insure-planner/go-api-server/internal/shared/logger"
	"github.com/insure-planner/go-api-server/internal/shared/token"
	"github.com/google/uuid"
)

// SyncClock reports when customer data was last written through to storage.
type SyncClock interface {
	LastSavedAt() time.Time
}

type SessionService struct {
	profileRepository *ProfileRepository
	tokenManager      token.Manager
	syncClock         SyncClock
}

func NewSessionService(profileRepository *ProfileRepository, tokenManager token.Manager, syncClock SyncClock) *SessionService {
	return &SessionService{
		profileRepository: profileRepository,
		tokenManager:      tokenManager,
		syncClock:         syncClock,
	}
}

// Login simulates a provider sign-in. There is no credential exchange:
// the chosen provider and profile fields are taken at face value, the
// profile is persisted, and a token pair is issued for the gated endpoints.
func (s *SessionService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	profile := model.UserProfile{
		ID:         uuid.NewString(),
		Name:       request.Name,
		Email:      request.Email,
		Provider:   model.AuthProvider(request.Provider),
		IsLoggedIn: true,
	}

	if err := s.profileRepository.Save(ctx, profile); err != nil {
		log.Error("로그인 실패 - 프로필 저장 오류", "error", err)
		return nil, fmt.Errorf("save profile: %w", err)
	}

	accessToken, err := s.tokenManager.GenerateAccessToken(profile.ID, profile.Email)
	if err != nil {
		log.Error("access token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.tokenManager.GenerateRefreshToken(profile.ID, profile.Email)
	if err != nil {
		log.Error("refresh token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	log.Info("로그인 성공", "provider", request.Provider, "email", logger.MaskEmail(profile.Email))

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      profile,
	}, nil
}

// Logout clears the stored profile. Clearing an already-empty slot succeeds.
func (s *SessionService) Logout(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if err := s.profileRepository.Remove(ctx); err != nil {
		log.Error("로그아웃 실패 - 프로필 삭제 오류", "error", err)
		return fmt.Errorf("remove profile: %w", err)
	}
	log.Info("로그아웃 완료")
	return nil
}

func (s *SessionService) Profile(ctx context.Context) (model.UserProfile, error) {
	profile, found, err := s.profileRepository.Get(ctx)
	if err != nil {
		return model.UserProfile{}, err
	}
	if !found {
		return model.UserProfile{}, fmt.Errorf("error %w", ErrProfileNotFound)
	}
	return profile, nil
}

// SyncStatus reports whether a profile is stored and when customer data was
// last written through. It is purely informational; the CRM endpoints do not
// depend on it.
func (s *SessionService) SyncStatus(ctx context.Context) SyncStatusResponse {
	_, found, err := s.profileRepository.Get(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn("동기화 상태 조회 실패", "error", err)
		found = false
	}

	response := SyncStatusResponse{IsLoggedIn: found}
	if savedAt := s.syncClock.LastSavedAt(); !savedAt.IsZero() {
		response.LastSyncedAt = savedAt.UTC().Format(time.RFC3339)
	}
	return response
}
