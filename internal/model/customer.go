package model

// CustomerStatus is the management state of a customer.
// Wire values are the Korean labels shown to the user.
type CustomerStatus string

const (
	StatusActive    CustomerStatus = "유지"
	StatusCancelled CustomerStatus = "해지"
	StatusProspect  CustomerStatus = "잠재"
)

// Valid reports whether s is one of the three defined states.
func (s CustomerStatus) Valid() bool {
	switch s {
	case StatusActive, StatusCancelled, StatusProspect:
		return true
	}
	return false
}

// RelationType classifies a directed relationship edge between customers.
type RelationType string

const (
	RelationFamily      RelationType = "가족"
	RelationRecommender RelationType = "추천인"
	RelationFriend      RelationType = "지인"
	RelationColleague   RelationType = "직장동료"
)

func (r RelationType) Valid() bool {
	switch r {
	case RelationFamily, RelationRecommender, RelationFriend, RelationColleague:
		return true
	}
	return false
}

// HistoryType classifies an interaction log entry.
type HistoryType string

const (
	HistoryConsultation HistoryType = "상담일지"
	HistoryTouch        HistoryType = "터치(안부)"
	HistoryMedical      HistoryType = "병력/보상"
)

func (h HistoryType) Valid() bool {
	switch h {
	case HistoryConsultation, HistoryTouch, HistoryMedical:
		return true
	}
	return false
}

// Contract is an insurance policy owned by exactly one customer.
// The ID is unique within the owning customer only.
type Contract struct {
	ID             string   `json:"id"`
	Insurer        string   `json:"insurer"`
	ProductName    string   `json:"productName"`
	Premium        int64    `json:"premium"` // monthly premium in KRW, non-negative
	PaymentMethod  string   `json:"paymentMethod"`
	PaymentDetails string   `json:"paymentDetails"`
	StartDate      string   `json:"startDate"` // YYYY-MM-DD
	Tags           []string `json:"tags"`
}

// HasTag reports whether the contract carries the given tag.
func (c Contract) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HistoryEntry is a timestamped interaction record. The UI convention is
// newest-first; the model does not enforce ordering beyond that.
type HistoryEntry struct {
	ID      string      `json:"id"`
	Type    HistoryType `json:"type"`
	Date    string      `json:"date"` // YYYY-MM-DD
	Content string      `json:"content"`
}

// Relationship is a typed, directed weak reference to another customer.
// TargetID may dangle; lookups must degrade to a placeholder, never fail.
// Edges are not guaranteed symmetric.
type Relationship struct {
	TargetID string       `json:"targetId"`
	Type     RelationType `json:"type"`
}

// Customer is the managed client record. Contracts, history and relationships
// are exclusively owned substructures and are mutated only by replacing the
// whole customer through the repository's update path.
type Customer struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Phone              string         `json:"phone"` // free text, not normalized
	Address            string         `json:"address"`
	BirthDate          string         `json:"birthDate"` // YYYY-MM-DD, optional
	RegistrationNumber string         `json:"registrationNumber,omitempty"`
	KakaoLink          string         `json:"kakaoLink,omitempty"`
	Status             CustomerStatus `json:"status"`
	Company            string         `json:"company,omitempty"`
	JobTitle           string         `json:"jobTitle,omitempty"`
	Contracts          []Contract     `json:"contracts"`
	History            []HistoryEntry `json:"history"`
	Relationships      []Relationship `json:"relationships"`
	CreatedAt          string         `json:"createdAt"` // RFC3339, set once
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the repository's backing slices.
func (c Customer) Clone() Customer {
	out := c
	if c.Contracts != nil {
		out.Contracts = make([]Contract, len(c.Contracts))
		for i, con := range c.Contracts {
			out.Contracts[i] = con
			if con.Tags != nil {
				out.Contracts[i].Tags = append([]string(nil), con.Tags...)
			}
		}
	}
	if c.History != nil {
		out.History = append([]HistoryEntry(nil), c.History...)
	}
	if c.Relationships != nil {
		out.Relationships = append([]Relationship(nil), c.Relationships...)
	}
	return out
}
