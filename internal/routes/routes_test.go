package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"loan-reconciliation-backend/internal/domain"
	"loan-reconciliation-backend/internal/logging"
	"loan-reconciliation-backend/internal/models"
	"loan-reconciliation-backend/internal/repository"
	service "loan-reconciliation-backend/internal/services/reconciliation"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gatedSource holds OpenSettled until release is closed.
type gatedSource struct {
	*repository.SettledLoanRepository
	release chan struct{}
}

func (g *gatedSource) OpenSettled(ctx context.Context, pageSize int) (service.SettledCursor, error) {
	<-g.release
	return g.SettledLoanRepository.OpenSettled(ctx, pageSize)
}

type testServer struct {
	router  *gin.Engine
	db      *gorm.DB
	release chan struct{}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithSink(t, nil)
}

// newTestServerWithSink serves findings from sink, or from the database when
// sink is nil.
func newTestServerWithSink(t *testing.T, sink repository.FindingStore) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.All()...))

	moved := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Loan{ID: uuid.New(), CCBNumber: "B", ContractStatus: "OPEN"}).Error)
	require.NoError(t, db.Create(&models.StockLoan{ID: uuid.New(), Document: "B"}).Error)
	require.NoError(t, db.Create(&models.SettledLoan{Document: "A", MovementDate: &moved}).Error)
	require.NoError(t, db.Create(&models.SettledLoan{Document: "B", MovementDate: &moved}).Error)

	if sink == nil {
		sink = repository.NewFindingRepository(db)
	}
	release := make(chan struct{})
	svc, err := service.NewReconciliationService(service.Dependencies{
		Ledger:     repository.NewLoanRepository(db),
		Stock:      repository.NewStockLoanRepository(db),
		Settled:    &gatedSource{SettledLoanRepository: repository.NewSettledLoanRepository(db), release: release},
		Partitions: sink,
		Runs:       repository.NewRunRepository(db),
		Logger:     logging.NewDiscardLogger(),
	}, service.Options{PaidStatus: "PAID"})
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r, db, svc, sink)
	return &testServer{router: r, db: db, release: release}
}

func (s *testServer) do(t *testing.T, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/api/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestReconciliationRunFlow(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/reconciliation/run")
	require.Equal(t, http.StatusAccepted, w.Code)
	runID := decode(t, w)["run_id"].(string)

	// The first run is parked in OpenSettled.
	w = s.do(t, http.MethodPost, "/api/reconciliation/run")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodGet, "/api/reconciliation/"+runID+"/report")
	assert.Equal(t, http.StatusConflict, w.Code)

	close(s.release)
	require.Eventually(t, func() bool {
		w := s.do(t, http.MethodGet, "/api/reconciliation/"+runID)
		var body struct {
			Status string `json:"status"`
		}
		return w.Code == http.StatusOK &&
			json.Unmarshal(w.Body.Bytes(), &body) == nil &&
			body.Status == models.RunStatusCompleted
	}, 5*time.Second, 20*time.Millisecond)

	w = s.do(t, http.MethodGet, "/api/reconciliation/"+runID)
	run := decode(t, w)
	assert.Equal(t, float64(2), run["processed_count"])
	assert.Equal(t, float64(3), run["finding_count"])

	w = s.do(t, http.MethodGet, "/api/reconciliation/"+runID+"/report")
	require.Equal(t, http.StatusOK, w.Code)
	var report domain.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 3, report.TotalFindings)
	assert.Equal(t, 2, report.ScannedRecords)
	require.Len(t, report.Days, 1)
	assert.Equal(t, "settled/20240101", report.Days[0].Partition)

	w = s.do(t, http.MethodGet, "/api/reconciliation/"+runID+"/report?format=text")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "Inconsistency report by day (settled)"))

	w = s.do(t, http.MethodGet, "/api/reconciliation/"+runID+"/stats")
	require.Equal(t, http.StatusOK, w.Code)
	var stats repository.RunStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(3), stats.Total)
	assert.Len(t, stats.Kinds, 3)

	w = s.do(t, http.MethodGet, "/api/reconciliation/findings?date=20240101&kind=StockConflict")
	require.Equal(t, http.StatusOK, w.Code)
	page := decode(t, w)
	items := page["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0].(map[string]interface{})["document"])
	assert.Equal(t, false, page["has_more"])

	w = s.do(t, http.MethodGet, "/api/reconciliation/findings?date=20240101&limit=2")
	require.Equal(t, http.StatusOK, w.Code)
	page = decode(t, w)
	assert.Len(t, page["items"], 2)
	assert.Equal(t, true, page["has_more"])

	w = s.do(t, http.MethodGet, "/api/reconciliation/findings?date=20240101&run_id="+uuid.NewString())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["items"])
}

// runToCompletion starts a run, releases it and waits until it is stored.
func (s *testServer) runToCompletion(t *testing.T) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/reconciliation/run")
	require.Equal(t, http.StatusAccepted, w.Code)
	runID := decode(t, w)["run_id"].(string)
	close(s.release)
	require.Eventually(t, func() bool {
		w := s.do(t, http.MethodGet, "/api/reconciliation/"+runID)
		var body struct {
			Status string `json:"status"`
		}
		return w.Code == http.StatusOK &&
			json.Unmarshal(w.Body.Bytes(), &body) == nil &&
			body.Status == models.RunStatusCompleted
	}, 5*time.Second, 20*time.Millisecond)
	return runID
}

func TestReconciliationFindings_FileSink(t *testing.T) {
	sink := repository.NewFilePartitionWriter(t.TempDir())
	s := newTestServerWithSink(t, sink)
	runID := s.runToCompletion(t)

	w := s.do(t, http.MethodGet, "/api/reconciliation/"+runID+"/report")
	require.Equal(t, http.StatusOK, w.Code)
	var report domain.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	require.Len(t, report.Days, 1)
	assert.Equal(t, sink.Path(domain.Partition{Category: "settled", Date: "20240101"}), report.Days[0].Partition)

	// Nothing was written to the findings table.
	var rows int64
	require.NoError(t, s.db.Model(&models.Finding{}).Count(&rows).Error)
	assert.Zero(t, rows)

	w = s.do(t, http.MethodGet, "/api/reconciliation/findings?date=20240101")
	require.Equal(t, http.StatusOK, w.Code)
	page := decode(t, w)
	assert.Len(t, page["items"], 3)
	assert.Equal(t, false, page["has_more"])

	w = s.do(t, http.MethodGet, "/api/reconciliation/findings?date=20240101&kind=StockConflict&run_id="+runID)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode(t, w)["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "B", items[0].(map[string]interface{})["document"])

	w = s.do(t, http.MethodGet, "/api/reconciliation/findings?date=20240101&limit=2")
	require.Equal(t, http.StatusOK, w.Code)
	page = decode(t, w)
	assert.Len(t, page["items"], 2)
	require.Equal(t, true, page["has_more"])
	w = s.do(t, http.MethodGet, "/api/reconciliation/findings?date=20240101&limit=2&cursor="+page["next_cursor"].(string))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["items"], 1)

	// A log is addressed by category and date.
	w = s.do(t, http.MethodGet, "/api/reconciliation/findings")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReconciliationErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		path string
		code int
	}{
		{"/api/reconciliation/not-a-uuid", http.StatusBadRequest},
		{"/api/reconciliation/" + uuid.NewString(), http.StatusNotFound},
		{"/api/reconciliation/" + uuid.NewString() + "/report", http.StatusNotFound},
		{"/api/reconciliation/findings?date=2024-01-01", http.StatusBadRequest},
		{"/api/reconciliation/findings?kind=Unknown", http.StatusBadRequest},
		{"/api/reconciliation/findings?limit=-3", http.StatusBadRequest},
		{"/api/reconciliation/findings?cursor=abc", http.StatusBadRequest},
		{"/api/reconciliation/findings?run_id=nope", http.StatusBadRequest},
		{"/api/reconciliation/findings?kind=all", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := s.do(t, http.MethodGet, tt.path)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
