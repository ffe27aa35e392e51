package notice

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/insure-planner/go-api-server/internal/model"
	"github.com/insure-planner/go-api-server/internal/shared/logger"
	"github.com/insure-planner/go-api-server/internal/storage"
	"github.com/google/uuid"
)

// NoticeRepository owns the authoritative notice collection, newest first,
// with the same write-through persistence discipline as the customer store.
type NoticeRepository struct {
	store storage.Store

	mu      sync.RWMutex
	notices []model.Notice
}

func NewNoticeRepository(store storage.Store) *NoticeRepository {
	return &NoticeRepository{store: store}
}

// SeedNotices is the fixed fallback dataset.
func SeedNotices() []model.Notice {
	const seededAt = "2024-01-02T09:00:00Z"
	return []model.Notice{
		{ID: "n1", Content: "자동차 보험 만기 고객님 리스트를 확인하셨나요?", CreatedAt: seededAt},
		{ID: "n2", Content: "오늘 생일인 고객님께 안부 메시지를 보내보세요.", CreatedAt: seededAt},
		{ID: "n3", Content: "신규 상품 교육 자료를 다시 한번 숙지합시다.", CreatedAt: seededAt},
	}
}

// Initialize restores the collection; malformed or missing data falls back to
// the seed notices and never raises.
func (r *NoticeRepository) Initialize(ctx context.Context) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok, err := r.store.Get(ctx, storage.SlotNotices)
	if err != nil || !ok {
		if err != nil {
			log.Warn("공지 데이터 로드 실패 - 시드 데이터로 대체합니다", "error", err)
		}
		r.notices = SeedNotices()
		return
	}

	var notices []model.Notice
	if err := json.Unmarshal([]byte(raw), &notices); err != nil {
		log.Warn("공지 데이터 디코딩 실패 - 시드 데이터로 대체합니다", "error", err)
		r.notices = SeedNotices()
		return
	}

	r.notices = notices
}

// Add prepends a new notice and returns it.
func (r *NoticeRepository) Add(ctx context.Context, content string) model.Notice {
	notice := model.Notice{
		ID:        uuid.New().String(),
		Content:   content,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.notices = append([]model.Notice{notice}, r.notices...)
	r.persistLocked(ctx)

	return notice
}

// Delete removes the notice with the given id; absent ids are a no-op.
func (r *NoticeRepository) Delete(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notices {
		if r.notices[i].ID == id {
			r.notices = append(r.notices[:i], r.notices[i+1:]...)
			r.persistLocked(ctx)
			return
		}
	}
}

// List returns a snapshot in stored order.
func (r *NoticeRepository) List() []model.Notice {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Notice(nil), r.notices...)
}

func (r *NoticeRepository) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(r.notices)
	if err != nil {
		logger.FromContext(ctx).Warn("공지 데이터 직렬화 실패", "error", err)
		return
	}

	if err := r.store.Set(ctx, storage.SlotNotices, string(raw)); err != nil {
		logger.FromContext(ctx).Warn("공지 데이터 저장 실패 - 메모리 상태는 유지됩니다", "error", err)
	}
}
