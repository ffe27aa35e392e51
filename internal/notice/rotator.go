package notice

import (
	"sync"
	"time"
)

// DefaultRotateInterval matches the dashboard's 8초 공지 순환 주기.
const DefaultRotateInterval = 8 * time.Second

// Rotator cycles the index of the notice currently displayed on the
// dashboard. It is a plain repeating timer with no effect on the data model;
// Stop must be called when the hosting view is torn down so the goroutine
// does not leak.
type Rotator struct {
	repo     *NoticeRepository
	interval time.Duration

	mu      sync.Mutex
	index   int
	stop    chan struct{}
	stopped sync.Once
}

func NewRotator(repo *NoticeRepository, interval time.Duration) *Rotator {
	if interval <= 0 {
		interval = DefaultRotateInterval
	}
	return &Rotator{
		repo:     repo,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start begins rotating. Safe to call once per Rotator.
func (r *Rotator) Start() {
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				r.advance()
			case <-r.stop:
				return
			}
		}
	}()
}

// Stop cancels the rotation. Idempotent.
func (r *Rotator) Stop() {
	r.stopped.Do(func() {
		close(r.stop)
	})
}

// Current returns the notice to display, or false when there are none.
func (r *Rotator) Current() (string, bool) {
	notices := r.repo.List()
	if len(notices) == 0 {
		return "", false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index >= len(notices) {
		r.index = 0
	}
	return notices[r.index].ID, true
}

func (r *Rotator) advance() {
	count := len(r.repo.List())
	if count <= 1 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = (r.index + 1) % count
}
