package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/insure-planner/go-api-server/internal/model"
	"github.com/insure-planner/go-api-server/internal/storage"
)

// ProfileRepository keeps the single agent profile in its storage slot.
// Unlike the customer data there is no in-memory authority here: the slot
// is read on demand so a removed slot immediately reads as logged out.
type ProfileRepository struct {
	store storage.Store
}

func NewProfileRepository(store storage.Store) *ProfileRepository {
	return &ProfileRepository{store: store}
}

func (r *ProfileRepository) Get(ctx context.Context) (model.UserProfile, bool, error) {
	raw, found, err := r.store.Get(ctx, storage.SlotProfile)
	if err != nil {
		return model.UserProfile{}, false, fmt.Errorf("load profile slot: %w", err)
	}
	if !found {
		return model.UserProfile{}, false, nil
	}

	var profile model.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		// A corrupt slot is treated the same as an absent one.
		return model.UserProfile{}, false, nil
	}
	return profile, true, nil
}

func (r *ProfileRepository) Save(ctx context.Context, profile model.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("serialize profile: %w", err)
	}
	if err := r.store.Set(ctx, storage.SlotProfile, string(data)); err != nil {
		return fmt.Errorf("persist profile slot: %w", err)
	}
	return nil
}

func (r *ProfileRepository) Remove(ctx context.Context) error {
	if err := r.store.Remove(ctx, storage.SlotProfile); err != nil {
		return fmt.Errorf("remove profile slot: %w", err)
	}
	return nil
}
