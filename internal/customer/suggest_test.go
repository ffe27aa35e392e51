package customer_test

import (
	"fmt"
	"testing"

	"github.com/insure-planner/go-api-server/internal/customer"
	"github.com/insure-planner/go-api-server/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSuggest_DistinctContainsMatch(t *testing.T) {
	// Given: Contracts with duplicate insurers across customers
	customers := []model.Customer{
		{Contracts: []model.Contract{
			{Insurer: "삼성화재", ProductName: "통합보험"},
			{Insurer: "삼성생명", ProductName: "연금보험"},
		}},
		{Contracts: []model.Contract{
			{Insurer: "삼성화재", ProductName: "운전자보험"},
		}},
	}

	// When: Suggest insurers for 삼성
	result := customer.Suggest(customers, customer.SuggestInsurer, "삼성")

	// Then: Distinct values in first-seen order
	assert.Equal(t, []string{"삼성화재", "삼성생명"}, result)
}

func TestSuggest_ExcludesExactMatch(t *testing.T) {
	// Given: A contract whose product equals the query
	customers := []model.Customer{
		{Contracts: []model.Contract{
			{Insurer: "삼성화재", ProductName: "암보험"},
			{Insurer: "삼성화재", ProductName: "암보험플러스"},
		}},
	}

	// When: Suggest products for the exact value
	result := customer.Suggest(customers, customer.SuggestProduct, "암보험")

	// Then: Only the longer variant remains
	assert.Equal(t, []string{"암보험플러스"}, result)
}

func TestSuggest_CapsAtFive(t *testing.T) {
	// Given: More than five matching insurers
	var contracts []model.Contract
	for i := 0; i < 8; i++ {
		contracts = append(contracts, model.Contract{Insurer: fmt.Sprintf("보험사%d", i)})
	}
	customers := []model.Customer{{Contracts: contracts}}

	// When: Suggest
	result := customer.Suggest(customers, customer.SuggestInsurer, "보험사")

	// Then: Capped at five
	assert.Len(t, result, 5)
}

func TestSuggest_EmptyQueryOrUnknownField(t *testing.T) {
	// Given: A contract collection
	customers := []model.Customer{{Contracts: []model.Contract{{Insurer: "삼성화재"}}}}

	// Then: Empty query and unknown field both return nothing
	assert.Empty(t, customer.Suggest(customers, customer.SuggestInsurer, ""))
	assert.Empty(t, customer.Suggest(customers, "tags", "삼성"))
}
