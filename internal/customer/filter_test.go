package customer_test

import (
	"testing"

	"github.com/insure-planner/go-api-server/internal/customer"
	"github.com/insure-planner/go-api-server/internal/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func filterFixture() []model.Customer {
	return []model.Customer{
		{
			ID:        "1",
			Name:      "김철수",
			Phone:     "010-1234-5678",
			BirthDate: "1980-05-14",
			Status:    model.StatusActive,
			Contracts: []model.Contract{
				{ID: "c1", Insurer: "삼성화재", ProductName: "종합보험", Tags: []string{"종합", "장기"}},
			},
		},
		{
			ID:        "2",
			Name:      "이영희",
			Phone:     "010-9876-5432",
			BirthDate: "1992-11-03",
			Status:    model.StatusCancelled,
			Contracts: []model.Contract{
				{ID: "c2", Insurer: "한화생명", ProductName: "암보험", Tags: []string{"건강"}},
			},
		},
		{
			ID:        "3",
			Name:      "Park Jisung",
			Phone:     "010-5555-0101",
			BirthDate: "1985-05-30",
			Status:    model.StatusProspect,
		},
	}
}

func TestFilter_EmptyQueryReturnsAllInOrder(t *testing.T) {
	// Given: Customer collection and an empty query
	customers := filterFixture()

	// When: Filter with no criteria
	result := customer.Filter(customers, customer.Query{})

	// Then: Every customer survives in stored order
	assert.Empty(t, cmp.Diff(customers, result))
}

func TestFilter_StatusAllSentinelMatchesEveryone(t *testing.T) {
	// Given: Customer collection with mixed statuses
	customers := filterFixture()

	// When: Filter by 전체 sentinel
	result := customer.Filter(customers, customer.Query{Status: customer.StatusFilterAll})

	// Then: Same as no status filter
	assert.Len(t, result, len(customers))
}

func TestFilter_StatusExactMatch(t *testing.T) {
	// Given: Customer collection with one 해지 customer
	customers := filterFixture()

	// When: Filter by 해지
	result := customer.Filter(customers, customer.Query{Status: "해지"})

	// Then: Only the lapsed customer remains
	assert.Len(t, result, 1)
	assert.Equal(t, "이영희", result[0].Name)
}

func TestFilter_SearchMatchesNameCaseInsensitive(t *testing.T) {
	// Given: Customer with a Latin-script name
	customers := filterFixture()

	// When: Search in a different case
	result := customer.Filter(customers, customer.Query{Search: "park ji"})

	// Then: Name match is case-insensitive
	assert.Len(t, result, 1)
	assert.Equal(t, "3", result[0].ID)
}

func TestFilter_SearchMatchesRawPhoneSubstring(t *testing.T) {
	// Given: Customer collection
	customers := filterFixture()

	// When: Search by a phone fragment including the dash
	result := customer.Filter(customers, customer.Query{Search: "9876-54"})

	// Then: Phone matches on the raw string
	assert.Len(t, result, 1)
	assert.Equal(t, "2", result[0].ID)
}

func TestFilter_BirthMonth(t *testing.T) {
	// Given: Two customers born in May, one in November
	customers := filterFixture()

	// When: Filter by month 05
	result := customer.Filter(customers, customer.Query{BirthMonth: "05"})

	// Then: Both May birthdays remain, stored order preserved
	assert.Len(t, result, 2)
	assert.Equal(t, "1", result[0].ID)
	assert.Equal(t, "3", result[1].ID)
}

func TestFilter_BirthMonthMalformedDateNeverMatches(t *testing.T) {
	// Given: A customer with a birthDate missing the month part
	customers := []model.Customer{{ID: "1", Name: "김철수", BirthDate: "1980"}}

	// When: Filter by any month
	result := customer.Filter(customers, customer.Query{BirthMonth: "05"})

	// Then: The malformed date is excluded, not an error
	assert.Empty(t, result)
}

func TestFilter_TagMatchesAnyContract(t *testing.T) {
	// Given: Customer collection
	customers := filterFixture()

	// When: Filter by the 건강 tag
	result := customer.Filter(customers, customer.Query{Tag: "건강"})

	// Then: Only the customer holding a tagged contract remains
	assert.Len(t, result, 1)
	assert.Equal(t, "2", result[0].ID)
}

func TestFilter_CriteriaCombineWithAnd(t *testing.T) {
	// Given: Customer collection
	customers := filterFixture()

	// When: Combine search and status
	result := customer.Filter(customers, customer.Query{Search: "010", Status: "유지"})

	// Then: Only customers satisfying every criterion remain
	assert.Len(t, result, 1)
	assert.Equal(t, "김철수", result[0].Name)
}

func TestFilter_IsPureAndIdempotent(t *testing.T) {
	// Given: A query matching a subset
	customers := filterFixture()
	q := customer.Query{BirthMonth: "05"}

	// When: Filter twice, the second time over its own output
	once := customer.Filter(customers, q)
	twice := customer.Filter(once, q)

	// Then: Input untouched and re-filtering is a no-op
	assert.Empty(t, cmp.Diff(filterFixture(), customers))
	assert.Empty(t, cmp.Diff(once, twice))
}

func TestFilter_NoMatchReturnsEmptyNonNilSlice(t *testing.T) {
	// Given: A query no customer satisfies
	customers := filterFixture()

	// When: Filter
	result := customer.Filter(customers, customer.Query{Search: "존재하지않는이름"})

	// Then: Empty but non-nil
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
