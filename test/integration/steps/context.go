// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/finbot/backend/internal/application/usecase/chat"
	"github.com/finbot/backend/internal/application/usecase/dataset"
	"github.com/finbot/backend/internal/application/usecase/report"
	"github.com/finbot/backend/internal/application/usecase/statement"
	"github.com/finbot/backend/internal/application/usecase/summary"
	"github.com/finbot/backend/internal/infra/server/router"
	redisCache "github.com/finbot/backend/internal/integration/cache"
	"github.com/finbot/backend/internal/integration/entrypoint/controller"
	"github.com/finbot/backend/internal/integration/persistence"
	"github.com/finbot/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// The dataset created by the most recent upload, substituted into
	// endpoint paths as {dataset_id}.
	datasetID string

	narrative *mock.NarrativeService
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db := mock.NewDb()
		if err := db.Reset(); err != nil {
			return ctx, fmt.Errorf("failed to reset database: %w", err)
		}
		redisClient := mock.NewRedis()
		if err := mock.ClearRedis(redisClient); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}

		tc := &TestContext{narrative: mock.NewUnavailableNarrative()}

		datasetRepo := persistence.NewDatasetRepository(db.DbConn)
		reportCache := redisCache.NewReportCache(redisClient, time.Hour)
		chatHistory := redisCache.NewChatHistory(redisClient, time.Hour, 50)

		r := router.NewRouter(
			controller.NewHealthController(
				func() bool { return true },
				func() bool { return redisClient.Ping(context.Background()).Err() == nil },
			),
			controller.NewDatasetController(
				dataset.NewUploadDatasetUseCase(datasetRepo),
				dataset.NewGetDateRangeUseCase(datasetRepo),
			),
			controller.NewStatementController(
				statement.NewGetIncomeStatementUseCase(datasetRepo),
				statement.NewGetBalanceSheetUseCase(datasetRepo),
				statement.NewGetCashFlowUseCase(datasetRepo),
				statement.NewGetRatiosUseCase(datasetRepo),
			),
			controller.NewSummaryController(
				summary.NewGetSummaryUseCase(datasetRepo),
				report.NewGetInsightsUseCase(datasetRepo, tc.narrative),
			),
			controller.NewReportController(
				report.NewGenerateReportUseCase(datasetRepo, tc.narrative, reportCache),
			),
			controller.NewChatController(
				chat.NewChatUseCase(datasetRepo, tc.narrative, chatHistory),
			),
		)
		tc.engine = r.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^the narrative service is available with reply "([^"]*)"$`, theNarrativeServiceIsAvailableWithReply)
	ctx.Step(`^I upload a CSV dataset:$`, iUploadACSVDataset)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func theNarrativeServiceIsAvailableWithReply(ctx context.Context, reply string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.narrative.Available = true
	tc.narrative.ChatReply = reply
	return nil
}

func iUploadACSVDataset(ctx context.Context, csv *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "transactions.csv")
	if err != nil {
		return ctx, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write([]byte(csv.Content)); err != nil {
		return ctx, fmt.Errorf("failed to write CSV payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return ctx, fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, tc.server.URL+"/api/v1/datasets", &buf)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	if err := tc.do(req); err != nil {
		return ctx, err
	}

	// Remember the dataset for {dataset_id} substitution in later steps.
	var body struct {
		DatasetID string `json:"dataset_id"`
	}
	if err := json.Unmarshal(tc.responseBody, &body); err == nil && body.DatasetID != "" {
		tc.datasetID = body.DatasetID
	}

	return SetTestContext(ctx, tc), nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	req, err := http.NewRequest(method, tc.server.URL+tc.expand(endpoint), nil)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}

	if err := tc.do(req); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	req, err := http.NewRequest(method, tc.server.URL+tc.expand(endpoint), bytes.NewBufferString(body.Content))
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if err := tc.do(req); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

// do sends the request and captures the response body.
func (tc *TestContext) do(req *http.Request) error {
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// expand replaces the {dataset_id} placeholder with the last uploaded
// dataset's ID.
func (tc *TestContext) expand(endpoint string) string {
	return strings.ReplaceAll(endpoint, "{dataset_id}", tc.datasetID)
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := lookupField(tc.responseBody, field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := lookupField(tc.responseBody, field)
	return err
}

// lookupField resolves a dot-separated path in the response JSON. Numeric
// path segments index into arrays.
func lookupField(body []byte, field string) (interface{}, error) {
	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, part := range strings.Split(field, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response", field)
			}
			current = value
		case []interface{}:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("field '%s' has no element '%s'", field, part)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field '%s' is not an object in response", field)
		}
	}
	return current, nil
}
