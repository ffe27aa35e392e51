package customer

import "github.com/insure-planner/go-api-server/internal/model"

// seedCreatedAt keeps the fallback dataset deterministic so repeated
// initializations against an empty or corrupted slot produce identical state.
const seedCreatedAt = "2024-01-02T09:00:00Z"

// SeedCustomers is the fixed dataset used when no persisted data exists or
// the persisted blob cannot be decoded.
func SeedCustomers() []model.Customer {
	return []model.Customer{
		{
			ID:                 "1",
			Name:               "김철수",
			Phone:              "010-1234-5678",
			Address:            "서울특별시 강남구 테헤란로 123",
			BirthDate:          "1985-05-20",
			RegistrationNumber: "850520-1******",
			Status:             model.StatusActive,
			Company:            "삼성전자",
			JobTitle:           "과장",
			Contracts: []model.Contract{
				{
					ID:             "c1",
					Insurer:        "삼성화재",
					ProductName:    "무배당 통합보험",
					Premium:        150000,
					PaymentMethod:  "자동이체",
					PaymentDetails: "우리은행 1002-***-****",
					StartDate:      "2022-01-15",
					Tags:           []string{"종합"},
				},
			},
			History: []model.HistoryEntry{
				{
					ID:      "h1",
					Type:    model.HistoryConsultation,
					Date:    "2023-11-01",
					Content: "기존 보험 분석 및 리모델링 상담 완료",
				},
			},
			Relationships: []model.Relationship{
				{TargetID: "2", Type: model.RelationFamily},
			},
			CreatedAt: seedCreatedAt,
		},
		{
			ID:            "2",
			Name:          "이영희",
			Phone:         "010-9876-5432",
			Address:       "경기도 성남시 분당구 정자동",
			BirthDate:     "1988-12-10",
			Status:        model.StatusActive,
			Contracts:     []model.Contract{},
			History:       []model.HistoryEntry{},
			Relationships: []model.Relationship{
				{TargetID: "1", Type: model.RelationFamily},
			},
			CreatedAt: seedCreatedAt,
		},
	}
}
