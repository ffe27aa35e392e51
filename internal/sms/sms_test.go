package sms_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/insure-planner/go-api-server/internal/model"
	sharedError "github.com/insure-planner/go-api-server/internal/shared/error"
	"github.com/insure-planner/go-api-server/internal/shared/testutil"
	"github.com/insure-planner/go-api-server/internal/sms"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeURI_IOSFormat(t *testing.T) {
	// Given: Two formatted phone numbers
	phones := []string{"010-1234-5678", "010-9876-5432"}

	// When: Compose for iOS
	uri := sms.ComposeURI(sms.PlatformIOS, phones, "안녕하세요")

	// Then: Comma-separated digits with &body=
	assert.True(t, strings.HasPrefix(uri, "sms:01012345678,01098765432&body="), uri)
	assert.NotContains(t, uri, "안녕하세요") // body is escaped
}

func TestComposeURI_AndroidAndUnknownFormat(t *testing.T) {
	// Given: Two phone numbers
	phones := []string{"010-1234-5678", "010-9876-5432"}

	// When: Compose for Android and for an unspecified platform
	android := sms.ComposeURI(sms.PlatformAndroid, phones, "hi")
	fallback := sms.ComposeURI("", phones, "hi")

	// Then: Semicolon-separated digits with ?body=, same for the fallback
	assert.Equal(t, "sms:01012345678;01098765432?body=hi", android)
	assert.Equal(t, android, fallback)
}

func TestComposeURI_BodyQueryEscaped(t *testing.T) {
	// Given: A body with spaces and reserved characters
	uri := sms.ComposeURI(sms.PlatformAndroid, []string{"01011112222"}, "만기 안내 & 상담")

	// Then: The body is query-escaped
	assert.Equal(t, "sms:01011112222?body=%EB%A7%8C%EA%B8%B0+%EC%95%88%EB%82%B4+%26+%EC%83%81%EB%8B%B4", uri)
}

func TestComposeURI_DropsEmptyPhones(t *testing.T) {
	// Given: A phone with no digits at all
	uri := sms.ComposeURI(sms.PlatformIOS, []string{"없음", "010-1234-5678"}, "")

	// Then: Only the digit-bearing number survives
	assert.Equal(t, "sms:01012345678&body=", uri)
}

func TestRenderTemplate_SingleRecipientUsesName(t *testing.T) {
	// When: Render the greeting for one recipient
	body, ok := sms.RenderTemplate("greeting", []string{"김철수"})

	// Then: The name replaces the placeholder
	require.True(t, ok)
	assert.Contains(t, body, "김철수 고객님")
	assert.NotContains(t, body, "{이름}")
}

func TestRenderTemplate_BulkUsesPlaceholder(t *testing.T) {
	// When: Render the birthday template for several recipients
	body, ok := sms.RenderTemplate("birthday", []string{"김철수", "이영희"})

	// Then: The generic placeholder is used
	require.True(t, ok)
	assert.Contains(t, body, "OOO 고객님")
}

func TestRenderTemplate_UnknownID(t *testing.T) {
	// When: Render a template that does not exist
	_, ok := sms.RenderTemplate("ghost", []string{"김철수"})

	// Then: Not found
	assert.False(t, ok)
}

// fakeDirectory serves canned customers to the compose handler.
type fakeDirectory map[string]model.Customer

func (d fakeDirectory) Get(id string) (model.Customer, bool) {
	c, ok := d[id]
	return c, ok
}

func setupComposeRouter(t *testing.T) *gin.Engine {
	t.Helper()

	directory := fakeDirectory{
		"1": {ID: "1", Name: "김철수", Phone: "010-1234-5678"},
		"2": {ID: "2", Name: "이영희", Phone: "010-9876-5432"},
	}
	smsHandler := sms.NewSmsHandler(directory)

	router := testutil.SetupTestRouter()
	router.GET("/api/v1/messages/templates", smsHandler.Templates)
	router.POST("/api/v1/messages/compose", smsHandler.Compose)
	return router
}

func TestTemplates_ListsCannedMessages(t *testing.T) {
	// Given: Compose router
	router := setupComposeRouter(t)

	// When: Fetch templates
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/messages/templates",
	})

	// Then: All four canned messages
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Templates []sms.Template `json:"templates"`
	}
	testutil.ParseResponse(t, recorder, &response)
	assert.Len(t, response.Templates, 4)
}

func TestCompose_FreeFormBody(t *testing.T) {
	// Given: Compose router
	router := setupComposeRouter(t)

	// When: Compose an iOS message for both customers
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/messages/compose",
		Body: map[string]any{
			"customerIds": []string{"1", "2"},
			"platform":    "ios",
			"body":        "hello",
		},
	})

	// Then: URI uses the iOS dialect for both numbers
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response sms.ComposeResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "sms:01012345678,01098765432&body=hello", response.URI)
	assert.Equal(t, 2, response.RecipientCount)
}

func TestCompose_TemplateRendersRecipientName(t *testing.T) {
	// Given: Compose router
	router := setupComposeRouter(t)

	// When: Compose from the greeting template for one customer
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/messages/compose",
		Body: map[string]any{
			"customerIds": []string{"1"},
			"templateId":  "greeting",
		},
	})

	// Then: The rendered body carries the customer's name
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response sms.ComposeResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Contains(t, response.Body, "김철수")
	assert.Equal(t, 1, response.RecipientCount)
}

func TestCompose_AllRecipientsUnknown(t *testing.T) {
	// Given: Compose router
	router := setupComposeRouter(t)

	// When: Compose for ids that resolve to nobody
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/messages/compose",
		Body: map[string]any{
			"customerIds": []string{"ghost"},
			"body":        "hello",
		},
	})

	// Then: Domain error for missing recipients
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "SMS-001", errorResponse.Code)
}

func TestCompose_UnknownTemplate(t *testing.T) {
	// Given: Compose router
	router := setupComposeRouter(t)

	// When: Compose with a template id that does not exist
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/messages/compose",
		Body: map[string]any{
			"customerIds": []string{"1"},
			"templateId":  "ghost",
		},
	})

	// Then: Template error code
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "SMS-002", errorResponse.Code)
}
