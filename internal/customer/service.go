package customer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/insure-planner/go-api-server/internal/model"
	"github.com/insure-planner/go-api-server/internal/shared/logger"
	"github.com/google/uuid"
)

// CustomerService funnels every contract/history mutation through the owning
// customer's update path so derived views always observe a consistent record.
type CustomerService struct {
	repo *CustomerRepository
}

func NewCustomerService(repo *CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) List(q Query) *ListResponse {
	customers := s.repo.List()
	filtered := Filter(customers, q)

	return &ListResponse{
		Customers: filtered,
		Total:     len(customers),
		Filtered:  len(filtered),
	}
}

func (s *CustomerService) Get(ctx context.Context, id string) (model.Customer, error) {
	c, ok := s.repo.Get(id)
	if !ok {
		logger.FromContext(ctx).Warn("고객 조회 실패", "customer_id", id)
		return model.Customer{}, fmt.Errorf("고객 조회 실패 id=%s %w", id, ErrCustomerNotFound)
	}
	return c, nil
}

func (s *CustomerService) Create(ctx context.Context, payload *CustomerPayload) (model.Customer, error) {
	created, err := s.repo.Create(ctx, payload.toModel(""))
	if err != nil {
		return model.Customer{}, err
	}

	logger.FromContext(ctx).Info("고객 등록 완료", "customer_id", created.ID)
	return created, nil
}

func (s *CustomerService) Update(ctx context.Context, id string, payload *CustomerPayload) (model.Customer, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return model.Customer{}, err
	}

	replacement := payload.toModel(id)
	replacement.CreatedAt = existing.CreatedAt // createdAt is immutable
	if replacement.Status == "" {
		replacement.Status = existing.Status
	}
	if replacement.Contracts == nil {
		replacement.Contracts = []model.Contract{}
	}
	if replacement.History == nil {
		replacement.History = []model.HistoryEntry{}
	}
	if replacement.Relationships == nil {
		replacement.Relationships = []model.Relationship{}
	}

	return s.repo.Update(ctx, replacement)
}

func (s *CustomerService) Delete(ctx context.Context, id string) {
	s.repo.Delete(ctx, id)
	logger.FromContext(ctx).Info("고객 삭제 처리", "customer_id", id)
}

// AddContract prepends a new contract to the customer.
func (s *CustomerService) AddContract(ctx context.Context, customerID string, payload *ContractPayload) (model.Customer, error) {
	if err := payload.validate(); err != nil {
		return model.Customer{}, err
	}

	c, err := s.Get(ctx, customerID)
	if err != nil {
		return model.Customer{}, err
	}

	contract := payload.toContract(uuid.New().String())
	if contract.StartDate == "" {
		contract.StartDate = today()
	}

	c.Contracts = append([]model.Contract{contract}, c.Contracts...)
	return s.repo.Update(ctx, c)
}

// UpdateContract replaces the contract with the given id on the customer.
func (s *CustomerService) UpdateContract(ctx context.Context, customerID, contractID string, payload *ContractPayload) (model.Customer, error) {
	if err := payload.validate(); err != nil {
		return model.Customer{}, err
	}

	c, err := s.Get(ctx, customerID)
	if err != nil {
		return model.Customer{}, err
	}

	for i := range c.Contracts {
		if c.Contracts[i].ID == contractID {
			c.Contracts[i] = payload.toContract(contractID)
			return s.repo.Update(ctx, c)
		}
	}

	return model.Customer{}, fmt.Errorf("계약 수정 실패 contract_id=%s %w", contractID, ErrContractNotFound)
}

// DeleteContract removes the contract; removing an absent contract is a no-op.
func (s *CustomerService) DeleteContract(ctx context.Context, customerID, contractID string) (model.Customer, error) {
	c, err := s.Get(ctx, customerID)
	if err != nil {
		return model.Customer{}, err
	}

	for i := range c.Contracts {
		if c.Contracts[i].ID == contractID {
			c.Contracts = append(c.Contracts[:i], c.Contracts[i+1:]...)
			return s.repo.Update(ctx, c)
		}
	}

	return c, nil
}

// AddHistory prepends an interaction record (newest first by convention).
func (s *CustomerService) AddHistory(ctx context.Context, customerID string, payload *HistoryPayload) (model.Customer, error) {
	c, err := s.Get(ctx, customerID)
	if err != nil {
		return model.Customer{}, err
	}

	entry := model.HistoryEntry{
		ID:      uuid.New().String(),
		Type:    payload.Type,
		Date:    payload.Date,
		Content: payload.Content,
	}
	if entry.Date == "" {
		entry.Date = today()
	}

	c.History = append([]model.HistoryEntry{entry}, c.History...)
	return s.repo.Update(ctx, c)
}

// LogTouch records the automatic touch entry written when the agent reaches
// out through the call/messenger buttons.
func (s *CustomerService) LogTouch(ctx context.Context, customerID, method string) (model.Customer, error) {
	c, err := s.Get(ctx, customerID)
	if err != nil {
		return model.Customer{}, err
	}

	entry := model.HistoryEntry{
		ID:      "auto-" + uuid.New().String(),
		Type:    model.HistoryTouch,
		Date:    today(),
		Content: fmt.Sprintf("[자동 기록] %s 버튼을 통해 고객에게 연락을 시도했습니다.", method),
	}

	c.History = append([]model.HistoryEntry{entry}, c.History...)
	return s.repo.Update(ctx, c)
}

// Network projects the customer's relationship graph for the 인맥 tab.
func (s *CustomerService) Network(ctx context.Context, customerID string) (*NetworkResponse, error) {
	c, err := s.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return &NetworkResponse{
		CustomerID: c.ID,
		Name:       c.Name,
		Nodes:      ProjectNetwork(c, s.repo.List()),
	}, nil
}

// Stats backs the dashboard counters.
func (s *CustomerService) Stats() *StatsResponse {
	customers := s.repo.List()

	contracts := 0
	for _, c := range customers {
		contracts += len(c.Contracts)
	}

	return &StatsResponse{
		TotalCustomers: len(customers),
		TotalContracts: contracts,
	}
}

// Suggestions backs the contract form autocomplete.
func (s *CustomerService) Suggestions(field, query string) *SuggestionsResponse {
	return &SuggestionsResponse{Suggestions: Suggest(s.repo.List(), field, query)}
}

func (p *ContractPayload) validate() error {
	if strings.TrimSpace(p.Insurer) == "" || strings.TrimSpace(p.ProductName) == "" {
		return fmt.Errorf("계약 저장 실패: %w", ErrContractFieldsRequired)
	}
	return nil
}

func (p *ContractPayload) toContract(id string) model.Contract {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return model.Contract{
		ID:             id,
		Insurer:        p.Insurer,
		ProductName:    p.ProductName,
		Premium:        p.Premium,
		PaymentMethod:  p.PaymentMethod,
		PaymentDetails: p.PaymentDetails,
		StartDate:      p.StartDate,
		Tags:           tags,
	}
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}
