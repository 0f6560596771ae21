package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/ent"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/pkg/models"
	"github.com/trilogy-group/nexus-agents/pkg/services"
	testdb "github.com/trilogy-group/nexus-agents/test/database"
)

// fakeController records orchestrator calls without running pipelines.
type fakeController struct {
	cancelled    []string
	consolidated []string
}

func (f *fakeController) CancelTask(_ context.Context, taskID string) error {
	f.cancelled = append(f.cancelled, taskID)
	return nil
}

func (f *fakeController) ConsolidateProject(_ context.Context, projectID string) (int, error) {
	f.consolidated = append(f.consolidated, projectID)
	return 3, nil
}

func (f *fakeController) Depths() map[string]int {
	return map[string]int{"search": 0, "llm": 0, "synthesis": 0}
}

type testServer struct {
	router     *gin.Engine
	client     *ent.Client
	controller *fakeController
	svc        Services
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	svc := Services{
		Tasks:      services.NewTaskService(client),
		Operations: services.NewOperationService(client),
		DOK:        services.NewDOKService(client),
		Sources:    services.NewSourceService(client),
		Entities:   services.NewEntityService(client),
		Projects:   services.NewProjectService(client),
		Warnings:   services.NewSystemWarningsService(),
	}
	controller := &fakeController{}

	server := NewServer(svc, controller, nil, nil, dbClient, nil)
	router := gin.New()
	server.RegisterRoutes(router)
	return &testServer{router: router, client: client, controller: controller, svc: svc}
}

func (ts *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreateTask(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/tasks",
		`{"title":"remote work","research_query":"impact of remote work","research_type":"analytical_report"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeJSON(t, w)
	assert.Equal(t, "pending", body["status"])
	assert.NotEmpty(t, body["id"])

	// Aggregation without a config is a request error.
	w = ts.do(t, http.MethodPost, "/tasks",
		`{"title":"schools","research_query":"schools in 94110","research_type":"data_aggregation"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTask_NotFound(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/tasks/00000000-0000-0000-0000-000000000000", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTasks_FiltersByStatus(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	task, err := ts.svc.Tasks.CreateTask(ctx, models.CreateTaskRequest{
		Title:         "one",
		ResearchQuery: "query one",
		ResearchType:  string(researchtask.ResearchTypeAnalyticalReport),
	})
	require.NoError(t, err)
	_, err = ts.svc.Tasks.CreateTask(ctx, models.CreateTaskRequest{
		Title:         "two",
		ResearchQuery: "query two",
		ResearchType:  string(researchtask.ResearchTypeAnalyticalReport),
	})
	require.NoError(t, err)
	_, err = ts.svc.Tasks.TransitionStatus(ctx, task.ID, researchtask.StatusRunning)
	require.NoError(t, err)

	w := ts.do(t, http.MethodGet, "/tasks?status=pending", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, float64(1), body["total_count"])
}

func TestGetReport_Lifecycle(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	task, err := ts.svc.Tasks.CreateTask(ctx, models.CreateTaskRequest{
		Title:         "report task",
		ResearchQuery: "research query",
		ResearchType:  string(researchtask.ResearchTypeAnalyticalReport),
	})
	require.NoError(t, err)

	// Not started: report is not ready.
	w := ts.do(t, http.MethodGet, "/tasks/"+task.ID+"/report", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	_, err = ts.svc.Tasks.TransitionStatus(ctx, task.ID, researchtask.StatusRunning)
	require.NoError(t, err)
	require.NoError(t, ts.svc.Tasks.SaveReport(ctx, task.ID, "# Report\n\nBody."))
	_, err = ts.svc.Tasks.TransitionStatus(ctx, task.ID, researchtask.StatusCompleted)
	require.NoError(t, err)

	w = ts.do(t, http.MethodGet, "/tasks/"+task.ID+"/report", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/markdown")
	assert.Contains(t, w.Body.String(), "# Report")
}

func TestGetReport_FailedTaskConflict(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	task, err := ts.svc.Tasks.CreateTask(ctx, models.CreateTaskRequest{
		Title:         "doomed",
		ResearchQuery: "query",
		ResearchType:  string(researchtask.ResearchTypeAnalyticalReport),
	})
	require.NoError(t, err)
	require.NoError(t, ts.svc.Tasks.FailTask(ctx, task.ID, "ProviderPermanent", "model returned garbage"))

	w := ts.do(t, http.MethodGet, "/tasks/"+task.ID+"/report", "")
	require.Equal(t, http.StatusConflict, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "ProviderPermanent", body["error_kind"])
}

func TestCancelTask(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	task, err := ts.svc.Tasks.CreateTask(ctx, models.CreateTaskRequest{
		Title:         "to cancel",
		ResearchQuery: "query",
		ResearchType:  string(researchtask.ResearchTypeAnalyticalReport),
	})
	require.NoError(t, err)

	w := ts.do(t, http.MethodPost, "/tasks/"+task.ID+"/cancel", "")
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, []string{task.ID}, ts.controller.cancelled)

	// Unknown task: 404 before the controller is reached.
	w = ts.do(t, http.MethodPost, "/tasks/00000000-0000-0000-0000-000000000000/cancel", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, ts.controller.cancelled, 1)
}

func TestDeleteTask(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	task, err := ts.svc.Tasks.CreateTask(ctx, models.CreateTaskRequest{
		Title:         "to delete",
		ResearchQuery: "query",
		ResearchType:  string(researchtask.ResearchTypeAnalyticalReport),
	})
	require.NoError(t, err)

	w := ts.do(t, http.MethodDelete, "/tasks/"+task.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = ts.do(t, http.MethodGet, "/tasks/"+task.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportCSV_RejectsAnalyticalTask(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	task, err := ts.svc.Tasks.CreateTask(ctx, models.CreateTaskRequest{
		Title:         "analytical",
		ResearchQuery: "query",
		ResearchType:  string(researchtask.ResearchTypeAnalyticalReport),
	})
	require.NoError(t, err)

	w := ts.do(t, http.MethodGet, "/tasks/"+task.ID+"/export/csv", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDOKStats(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	task, err := ts.svc.Tasks.CreateTask(ctx, models.CreateTaskRequest{
		Title:         "dok task",
		ResearchQuery: "query",
		ResearchType:  string(researchtask.ResearchTypeAnalyticalReport),
	})
	require.NoError(t, err)

	w := ts.do(t, http.MethodGet, "/api/dok/"+task.ID+"/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	stats := body["stats"].(map[string]any)
	assert.Equal(t, float64(0), stats["total_insights"])

	w = ts.do(t, http.MethodGet, "/api/dok/00000000-0000-0000-0000-000000000000/stats", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConsolidateProject(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	project, err := ts.svc.Projects.CreateProject(ctx, models.CreateProjectRequest{Name: "census"})
	require.NoError(t, err)

	w := ts.do(t, http.MethodPost, "/api/projects/"+project.ID+"/consolidate", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, float64(3), body["entities"])
	assert.Equal(t, []string{project.ID}, ts.controller.consolidated)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Contains(t, body, "queues")
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
