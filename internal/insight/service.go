package insight

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/insure-planner/go-api-server/internal/shared/logger"
)

// User-facing fallback text; integration failures never surface as errors.
const (
	FallbackMissingKey = "AI 분석 기능을 활성화하려면 API 키 설정이 필요합니다."
	FallbackEmpty      = "분석 결과를 생성하지 못했습니다."
	FallbackFailure    = "분석 중 일시적인 오류가 발생했습니다. 나중에 다시 시도해 주세요."
)

const promptFormat = "당신은 숙련된 보험 설계사 전용 비즈니스 분석가입니다. 고객 %d명의 현황을 보고, 오늘 가장 시급하게 처리해야 할 3가지 활동(생일자 축하, 만기 안내, 보장 분석 등)을 제안하세요."

// CustomerCounter provides the customer count the prompt is built from.
type CustomerCounter interface {
	Count() int
}

// InsightService caches the latest generated insight. Responses carry a
// sequence number; a superseded response arriving late never overwrites a
// newer one (last write wins on the displayed result).
type InsightService struct {
	generator Generator // nil when no API key is configured
	customers CustomerCounter
	timeout   time.Duration

	mu        sync.Mutex
	seq       uint64
	latestSeq uint64
	latest    string
	updatedAt time.Time
	inflight  int
}

func NewInsightService(generator Generator, customers CustomerCounter, timeout time.Duration) *InsightService {
	return &InsightService{
		generator: generator,
		customers: customers,
		timeout:   timeout,
	}
}

// State is the insight panel's view model.
type State struct {
	Insight   string `json:"insight"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	Loading   bool   `json:"loading"`
}

// Latest returns the cached insight without triggering generation.
func (s *InsightService) Latest() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Refresh generates a new insight and returns the resulting panel state.
// Generation failures degrade to fixed fallback text. With zero customers
// there is nothing to analyze and the cached state is returned unchanged.
func (s *InsightService) Refresh(ctx context.Context) State {
	if s.customers.Count() == 0 {
		return s.Latest()
	}

	if s.generator == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.latestSeq++
		s.latest = FallbackMissingKey
		s.updatedAt = time.Now().UTC()
		return s.stateLocked()
	}

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.inflight++
	s.mu.Unlock()

	text := s.generate(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.inflight--
	if seq > s.latestSeq {
		s.latestSeq = seq
		s.latest = text
		s.updatedAt = time.Now().UTC()
	} else {
		logger.FromContext(ctx).Info("뒤늦게 도착한 분석 결과를 폐기합니다", "seq", seq, "latest_seq", s.latestSeq)
	}

	return s.stateLocked()
}

func (s *InsightService) generate(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := fmt.Sprintf(promptFormat, s.customers.Count())

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		logger.FromContext(ctx).Warn("AI 분석 실패 - 안내 문구로 대체합니다", "error", err)
		return FallbackFailure
	}
	if text == "" {
		return FallbackEmpty
	}
	return text
}

func (s *InsightService) stateLocked() State {
	state := State{
		Insight: s.latest,
		Loading: s.inflight > 0,
	}
	if !s.updatedAt.IsZero() {
		state.UpdatedAt = s.updatedAt.Format(time.RFC3339)
	}
	return state
}
