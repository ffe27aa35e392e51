package customer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/insure-planner/go-api-server/internal/model"
	"github.com/insure-planner/go-api-server/internal/shared/logger"
	"github.com/insure-planner/go-api-server/internal/storage"
	"github.com/google/uuid"
)

// CustomerRepository owns the authoritative in-memory customer collection.
// Reads always hit memory; every mutation writes the full collection back to
// the slot store. A failed write is reported through the log but never rolls
// back the in-memory state, which stays the source of truth for the session.
type CustomerRepository struct {
	store storage.Store

	mu          sync.RWMutex
	customers   []model.Customer
	lastSavedAt time.Time
}

func NewCustomerRepository(store storage.Store) *CustomerRepository {
	return &CustomerRepository{store: store}
}

// Initialize restores the collection from the slot store. Missing or
// malformed data falls back to the fixed seed dataset; the caller never
// sees an error.
func (r *CustomerRepository) Initialize(ctx context.Context) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok, err := r.store.Get(ctx, storage.SlotCustomers)
	if err != nil {
		log.Warn("고객 데이터 로드 실패 - 시드 데이터로 대체합니다", "error", err)
		r.customers = SeedCustomers()
		return
	}
	if !ok {
		log.Info("저장된 고객 데이터가 없습니다 - 시드 데이터로 시작합니다")
		r.customers = SeedCustomers()
		return
	}

	var customers []model.Customer
	if err := json.Unmarshal([]byte(raw), &customers); err != nil {
		log.Warn("고객 데이터 디코딩 실패 - 시드 데이터로 대체합니다", "error", err)
		r.customers = SeedCustomers()
		return
	}

	r.customers = customers
	log.Info("고객 데이터 로드 완료", "count", len(customers))
}

// Create validates the draft, assigns identity, and prepends the finalized
// record so the most recently created customer surfaces first.
func (r *CustomerRepository) Create(ctx context.Context, draft model.Customer) (model.Customer, error) {
	if strings.TrimSpace(draft.Name) == "" || strings.TrimSpace(draft.Phone) == "" {
		return model.Customer{}, fmt.Errorf("고객 생성 실패: %w", ErrCustomerFieldsRequired)
	}

	if draft.ID == "" {
		draft.ID = uuid.New().String()
	}
	if draft.CreatedAt == "" {
		draft.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if draft.Status == "" {
		draft.Status = model.StatusActive
	}
	if draft.Contracts == nil {
		draft.Contracts = []model.Contract{}
	}
	if draft.History == nil {
		draft.History = []model.HistoryEntry{}
	}
	if draft.Relationships == nil {
		draft.Relationships = []model.Relationship{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.customers = append([]model.Customer{draft}, r.customers...)
	r.persistLocked(ctx)

	return draft.Clone(), nil
}

// Update replaces the record matching customer.ID in place, preserving the
// position of every other record. A missing id fails loudly.
func (r *CustomerRepository) Update(ctx context.Context, customer model.Customer) (model.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.customers {
		if r.customers[i].ID == customer.ID {
			r.customers[i] = customer
			r.persistLocked(ctx)
			return customer.Clone(), nil
		}
	}

	return model.Customer{}, fmt.Errorf("고객 수정 실패 id=%s %w", customer.ID, ErrCustomerNotFound)
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op, not an error.
func (r *CustomerRepository) Delete(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.customers {
		if r.customers[i].ID == id {
			r.customers = append(r.customers[:i], r.customers[i+1:]...)
			r.persistLocked(ctx)
			return
		}
	}
}

// Get returns a snapshot of one customer.
func (r *CustomerRepository) Get(id string) (model.Customer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.customers {
		if r.customers[i].ID == id {
			return r.customers[i].Clone(), true
		}
	}
	return model.Customer{}, false
}

// List returns a snapshot of the whole collection in stored order.
func (r *CustomerRepository) List() []model.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Customer, len(r.customers))
	for i := range r.customers {
		out[i] = r.customers[i].Clone()
	}
	return out
}

// Count returns the number of customers.
func (r *CustomerRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.customers)
}

// LastSavedAt reports the time of the last successful durable write.
// The zero time means nothing has been persisted this session.
func (r *CustomerRepository) LastSavedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastSavedAt
}

// persistLocked writes the collection through to the slot store. Callers must
// hold the write lock. Persistence failure keeps the in-memory state intact.
func (r *CustomerRepository) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(r.customers)
	if err != nil {
		logger.FromContext(ctx).Warn("고객 데이터 직렬화 실패", "error", err)
		return
	}

	if err := r.store.Set(ctx, storage.SlotCustomers, string(raw)); err != nil {
		logger.FromContext(ctx).Warn("고객 데이터 저장 실패 - 메모리 상태는 유지됩니다", "error", err)
		return
	}

	r.lastSavedAt = time.Now().UTC()
}
