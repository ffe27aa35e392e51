package customer_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/insure-planner/go-api-server/internal/customer"
	"github.com/insure-planner/go-api-server/internal/model"
	sharedError "github.com/insure-planner/go-api-server/internal/shared/error"
	"github.com/insure-planner/go-api-server/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnvironment creates all dependencies needed for customer handler tests
func setupTestEnvironment(t *testing.T) *gin.Engine {
	t.Helper()

	repo := customer.NewCustomerRepository(testutil.SetupTestStore(t))
	repo.Initialize(context.Background())

	customerService := customer.NewCustomerService(repo)
	customerHandler := customer.NewCustomerHandler(customerService)

	router := testutil.SetupTestRouter()
	group := router.Group("/api/v1/customers")
	group.GET("", customerHandler.List)
	group.POST("", customerHandler.Create)
	group.GET("/stats", customerHandler.Stats)
	group.GET("/suggestions", customerHandler.Suggestions)
	group.GET("/:id", customerHandler.Get)
	group.PUT("/:id", customerHandler.Update)
	group.DELETE("/:id", customerHandler.Delete)
	group.GET("/:id/network", customerHandler.Network)
	group.POST("/:id/contracts", customerHandler.AddContract)
	group.PUT("/:id/contracts/:contractId", customerHandler.UpdateContract)
	group.DELETE("/:id/contracts/:contractId", customerHandler.DeleteContract)
	group.POST("/:id/history", customerHandler.AddHistory)
	group.POST("/:id/touch", customerHandler.Touch)

	return router
}

func TestListCustomers_Success(t *testing.T) {
	// Given: Seeded environment
	router := setupTestEnvironment(t)

	// When: List without filters
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/customers",
	})

	// Then: Seed customers with counters
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response customer.ListResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, 2, response.Total)
	assert.Equal(t, 2, response.Filtered)
	assert.Equal(t, "김철수", response.Customers[0].Name)
}

func TestListCustomers_FilterQueryParams(t *testing.T) {
	// Given: Seeded environment
	router := setupTestEnvironment(t)

	// When: Filter by tag
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/customers?tag=종합",
	})

	// Then: Only the tagged customer, total still reports everyone
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response customer.ListResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, 2, response.Total)
	assert.Equal(t, 1, response.Filtered)
	assert.Equal(t, "1", response.Customers[0].ID)
}

func TestCreateCustomer_Success(t *testing.T) {
	// Given: Seeded environment
	router := setupTestEnvironment(t)

	// When: Create a customer with the minimal fields
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/customers",
		Body: map[string]string{
			"name":  "박민수",
			"phone": "010-2222-3333",
		},
	})

	// Then: Created with assigned identity and default status
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var created model.Customer
	testutil.ParseResponse(t, recorder, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.StatusActive, created.Status)
}

func TestCreateCustomer_ValidationError(t *testing.T) {
	// Given: Seeded environment
	router := setupTestEnvironment(t)

	testCases := []struct {
		name        string
		requestBody map[string]string
	}{
		{name: "Missing name", requestBody: map[string]string{"phone": "010-2222-3333"}},
		{name: "Missing phone", requestBody: map[string]string{"name": "박민수"}},
		{name: "Invalid status", requestBody: map[string]string{"name": "박민수", "phone": "010-2222-3333", "status": "대기"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// When: Create with an invalid payload
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/customers",
				Body:   tc.requestBody,
			})

			// Then: Binding rejects the request
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestCreateCustomer_PhoneIsFreeText(t *testing.T) {
	// Given: Seeded environment
	router := setupTestEnvironment(t)

	// When: Create with a landline number
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/customers",
		Body: map[string]string{
			"name":  "박민수",
			"phone": "02-555-1234",
		},
	})

	// Then: The number is stored as entered
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var created model.Customer
	testutil.ParseResponse(t, recorder, &created)
	assert.Equal(t, "02-555-1234", created.Phone)
}

func TestGetCustomer_NotFound(t *testing.T) {
	// Given: Seeded environment
	router := setupTestEnvironment(t)

	// When: Fetch an unknown id
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/customers/ghost",
	})

	// Then: Domain not-found response
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "CUSTOMER-001", errorResponse.Code)
	assert.NotEmpty(t, errorResponse.Message)
}

func TestUpdateCustomer_PreservesCreatedAt(t *testing.T) {
	// Given: Seeded environment
	router := setupTestEnvironment(t)

	// When: Update with a forged createdAt
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/customers/1",
		Body: map[string]string{
			"name":      "김철수",
			"phone":     "010-1234-5678",
			"createdAt": "2030-12-31T00:00:00Z",
		},
	})

	// Then: The original creation time survives
	assert.Equal(t, http.StatusOK, recorder.Code)

	var updated model.Customer
	testutil.ParseResponse(t, recorder, &updated)
	assert.Equal(t, "2024-01-02T09:00:00Z", updated.CreatedAt)
}

func TestUpdateCustomer_KeepsStatusWhenOmitted(t *testing.T) {
	// Given: Customer 1 marked as cancelled
	router := setupTestEnvironment(t)
	cancelled := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/customers/1",
		Body: map[string]string{
			"name":   "김철수",
			"phone":  "010-1234-5678",
			"status": "해지",
		},
	})
	require.Equal(t, http.StatusOK, cancelled.Code)

	// When: A later update omits status
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/customers/1",
		Body: map[string]string{
			"name":  "김철수",
			"phone": "010-1234-5678",
		},
	})

	// Then: The stored status carries over and the record stays visible
	// in the matching status filter
	assert.Equal(t, http.StatusOK, recorder.Code)

	var updated model.Customer
	testutil.ParseResponse(t, recorder, &updated)
	assert.Equal(t, model.StatusCancelled, updated.Status)

	listed := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/customers?status=해지",
	})
	assert.Equal(t, http.StatusOK, listed.Code)

	var response customer.ListResponse
	testutil.ParseResponse(t, listed, &response)
	require.Equal(t, 1, response.Filtered)
	assert.Equal(t, "1", response.Customers[0].ID)
}

func TestDeleteCustomer_NoContent(t *testing.T) {
	// Given: Seeded environment
	router := setupTestEnvironment(t)

	// When: Delete an existing then an absent customer
	first := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/customers/1",
	})
	second := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/customers/1",
	})

	// Then: Both succeed
	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, http.StatusNoContent, second.Code)
}

func TestNetwork_Success(t *testing.T) {
	// Given: Seeded environment (김철수 relates to 이영희)
	router := setupTestEnvironment(t)

	// When: Fetch the relationship graph
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/customers/1/network",
	})

	// Then: One positioned node with the related customer's name
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response customer.NetworkResponse
	testutil.ParseResponse(t, recorder, &response)
	require.Len(t, response.Nodes, 1)
	assert.Equal(t, "이영희", response.Nodes[0].Name)
	assert.InDelta(t, 130, response.Nodes[0].X, 1e-6)
}

func TestAddContract_Success(t *testing.T) {
	// Given: Seeded environment
	router := setupTestEnvironment(t)

	// When: Add a contract
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/customers/2/contracts",
		Body: map[string]any{
			"insurer":     "현대해상",
			"productName": "운전자보험",
			"premium":     45000,
		},
	})

	// Then: Contract prepended with generated id and start date
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var updated model.Customer
	testutil.ParseResponse(t, recorder, &updated)
	require.Len(t, updated.Contracts, 1)
	assert.NotEmpty(t, updated.Contracts[0].ID)
	assert.NotEmpty(t, updated.Contracts[0].StartDate)
}

func TestAddContract_MissingRequiredFields(t *testing.T) {
	// Given: Seeded environment
	router := setupTestEnvironment(t)

	// When: Add a contract without a product name
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/customers/2/contracts",
		Body:   map[string]string{"insurer": "현대해상"},
	})

	// Then: Binding rejects the payload
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateContract_NotFound(t *testing.T) {
	// Given: Seeded environment
	router := setupTestEnvironment(t)

	// When: Update a contract id that does not exist
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPut,
		URL:    "/api/v1/customers/1/contracts/ghost",
		Body: map[string]string{
			"insurer":     "현대해상",
			"productName": "운전자보험",
		},
	})

	// Then: Contract-level not-found code
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "CUSTOMER-004", errorResponse.Code)
}

func TestDeleteContract_AbsentIsNoOp(t *testing.T) {
	// Given: Seeded environment
	router := setupTestEnvironment(t)

	// When: Delete a contract that does not exist
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/customers/1/contracts/ghost",
	})

	// Then: Customer returned unchanged
	assert.Equal(t, http.StatusOK, recorder.Code)

	var unchanged model.Customer
	testutil.ParseResponse(t, recorder, &unchanged)
	assert.Len(t, unchanged.Contracts, 1)
}

func TestAddHistory_Success(t *testing.T) {
	// Given: Seeded environment
	router := setupTestEnvironment(t)

	// When: Log a consultation
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/customers/2/history",
		Body: map[string]string{
			"type":    "상담일지",
			"content": "연금보험 니즈 확인",
		},
	})

	// Then: Entry prepended with today's date filled in
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var updated model.Customer
	testutil.ParseResponse(t, recorder, &updated)
	require.NotEmpty(t, updated.History)
	assert.Equal(t, model.HistoryConsultation, updated.History[0].Type)
	assert.NotEmpty(t, updated.History[0].Date)
}

func TestAddHistory_UnknownTypeRejected(t *testing.T) {
	// Given: Seeded environment
	router := setupTestEnvironment(t)

	// When: Log an entry with a type outside the fixed categories
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/customers/2/history",
		Body: map[string]string{
			"type":    "기타",
			"content": "메모",
		},
	})

	// Then: Binding rejects the request
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestTouch_RecordsAutomaticEntry(t *testing.T) {
	// Given: Seeded environment
	router := setupTestEnvironment(t)

	// When: Record a touch through the 전화 button
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/customers/1/touch",
		Body:   map[string]string{"method": "전화"},
	})

	// Then: Automatic touch entry surfaces first
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var updated model.Customer
	testutil.ParseResponse(t, recorder, &updated)
	require.NotEmpty(t, updated.History)
	assert.Equal(t, model.HistoryTouch, updated.History[0].Type)
	assert.Contains(t, updated.History[0].Content, "전화")
	assert.Contains(t, updated.History[0].ID, "auto-")
}

func TestStats_CountsCustomersAndContracts(t *testing.T) {
	// Given: Seeded environment
	router := setupTestEnvironment(t)

	// When: Fetch dashboard stats
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/customers/stats",
	})

	// Then: Seed counts
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response customer.StatsResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, 2, response.TotalCustomers)
	assert.Equal(t, 1, response.TotalContracts)
}

func TestSuggestions_DistinctInsurers(t *testing.T) {
	// Given: Seeded environment
	router := setupTestEnvironment(t)

	// When: Autocomplete insurers
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/customers/suggestions?field=insurer&q=삼성",
	})

	// Then: The seed insurer is suggested
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response customer.SuggestionsResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, []string{"삼성화재"}, response.Suggestions)
}
