package customer

import "github.com/insure-planner/go-api-server/internal/model"

// CustomerPayload is the draft record submitted by the client. Everything
// beyond name and phone is optional; validated construction produces the
// finalized model.Customer.
type CustomerPayload struct {
	Name               string               `json:"name" binding:"required,min=1,max=50"`
	Phone              string               `json:"phone" binding:"required"`
	Address            string               `json:"address"`
	BirthDate          string               `json:"birthDate" binding:"omitempty,datetime=2006-01-02"`
	RegistrationNumber string               `json:"registrationNumber"`
	KakaoLink          string               `json:"kakaoLink"`
	Status             model.CustomerStatus `json:"status" binding:"omitempty,customer_status"`
	Company            string               `json:"company"`
	JobTitle           string               `json:"jobTitle"`
	Contracts          []model.Contract     `json:"contracts"`
	History            []model.HistoryEntry `json:"history"`
	Relationships      []model.Relationship `json:"relationships"`
	CreatedAt          string               `json:"createdAt"`
}

func (p *CustomerPayload) toModel(id string) model.Customer {
	return model.Customer{
		ID:                 id,
		Name:               p.Name,
		Phone:              p.Phone,
		Address:            p.Address,
		BirthDate:          p.BirthDate,
		RegistrationNumber: p.RegistrationNumber,
		KakaoLink:          p.KakaoLink,
		Status:             p.Status,
		Company:            p.Company,
		JobTitle:           p.JobTitle,
		Contracts:          p.Contracts,
		History:            p.History,
		Relationships:      p.Relationships,
		CreatedAt:          p.CreatedAt,
	}
}

// ContractPayload creates or replaces one contract on a customer.
type ContractPayload struct {
	Insurer        string   `json:"insurer" binding:"required"`
	ProductName    string   `json:"productName" binding:"required"`
	Premium        int64    `json:"premium" binding:"omitempty,gte=0"`
	PaymentMethod  string   `json:"paymentMethod"`
	PaymentDetails string   `json:"paymentDetails"`
	StartDate      string   `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	Tags           []string `json:"tags"`
}

// HistoryPayload appends one interaction record.
type HistoryPayload struct {
	Type    model.HistoryType `json:"type" binding:"required,history_type"`
	Date    string            `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Content string            `json:"content" binding:"required"`
}

// TouchPayload records an automatic touch entry for a contact attempt.
type TouchPayload struct {
	Method string `json:"method" binding:"required,max=20"`
}

type ListResponse struct {
	Customers []model.Customer `json:"customers"`
	Total     int              `json:"total"`
	Filtered  int              `json:"filtered"`
}

type NetworkResponse struct {
	CustomerID string        `json:"customerId"`
	Name       string        `json:"name"`
	Nodes      []NetworkNode `json:"nodes"`
}

type StatsResponse struct {
	TotalCustomers int `json:"totalCustomers"`
	TotalContracts int `json:"totalContracts"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}
