package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gormsqlite "github.com/glebarez/sqlite"
	"github.com/kirubha-07/elix-career-advisor/internal/advisor"
	"github.com/kirubha-07/elix-career-advisor/internal/auth"
	"github.com/kirubha-07/elix-career-advisor/internal/config"
	"github.com/kirubha-07/elix-career-advisor/internal/dataset"
	"github.com/kirubha-07/elix-career-advisor/internal/httpapi/handlers"
	"github.com/kirubha-07/elix-career-advisor/internal/report"
	"github.com/kirubha-07/elix-career-advisor/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	router    *gin.Engine
	reportDir string
	queue     *fakeQueue
}

type fakeQueue struct {
	published []string
}

func (q *fakeQueue) PublishJob(ctx context.Context, jobID string) error {
	_ = ctx
	q.published = append(q.published, jobID)
	return nil
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestEnv(t *testing.T, withJobs bool) *testEnv {
	t.Helper()
	return newTestEnvWithDataset(t, withJobs, filepath.Join(t.TempDir(), "DATASET.csv"))
}

func newTestEnvWithDataset(t *testing.T, withJobs bool, datasetPath string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	data, err := dataset.Load(datasetPath)
	require.NoError(t, err)
	creds, err := auth.NewCredentials()
	require.NoError(t, err)

	cfg := config.Config{JWTSecret: "test-secret", JWTTTL: time.Hour, ReportDir: t.TempDir()}
	adv := advisor.NewService(data, session.NewStore(), creds, cfg.JWTSecret, cfg.JWTTTL)
	reg := report.DefaultRegistry()
	reports := report.NewService(reg, nil, 0, cfg.ReportDir)

	env := &testEnv{reportDir: cfg.ReportDir}
	var jobs *report.Jobs
	if withJobs {
		db, err := gorm.Open(gormsqlite.Open("file::memory:"), &gorm.Config{})
		require.NoError(t, err)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.SetMaxOpenConns(1)
		require.NoError(t, report.Migrate(db))

		env.queue = &fakeQueue{}
		jobs = report.NewJobs(report.NewRepo(db), env.queue, reg, data)
	}

	env.router = NewRouter(handlers.NewHandler(cfg, adv, reports, jobs))
	return env
}

func (e *testEnv) do(method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	var rd *bytes.Reader
	if body != "" {
		rd = bytes.NewReader([]byte(body))
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func TestPing(t *testing.T) {
	e := newTestEnv(t, false)
	w := e.do(http.MethodGet, "/ping", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, 0, decodeEnvelope(t, w).Code)
}

func TestRequestIDIsEchoed(t *testing.T) {
	e := newTestEnv(t, false)
	w := e.do(http.MethodGet, "/ping", "", map[string]string{"X-Request-ID": "rid-1"})
	assert.Equal(t, "rid-1", w.Header().Get("X-Request-ID"))
}

func TestNoRouteAndNoMethod(t *testing.T) {
	e := newTestEnv(t, false)

	w := e.do(http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 40400, decodeEnvelope(t, w).Code)

	w = e.do(http.MethodGet, "/login", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, 40500, decodeEnvelope(t, w).Code)
}

func TestRecoveryReturnsEnvelope(t *testing.T) {
	e := newTestEnv(t, false)
	e.router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := e.do(http.MethodGet, "/boom", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 50000, decodeEnvelope(t, w).Code)
}

func TestLogin(t *testing.T) {
	e := newTestEnv(t, false)

	t.Run("guest on blank fields", func(t *testing.T) {
		w := e.do(http.MethodPost, "/login", `{"username":"","password":""}`, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var res advisor.LoginResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "guest", res.Status)
		assert.NotEmpty(t, res.SessionID)
	})

	t.Run("guest on unreadable body", func(t *testing.T) {
		w := e.do(http.MethodPost, "/login", `not json`, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"guest"`)
	})

	t.Run("valid credentials", func(t *testing.T) {
		w := e.do(http.MethodPost, "/login", `{"username":"admin","password":"admin123"}`, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var res advisor.LoginResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "ok", res.Status)
		assert.Equal(t, "admin", res.SessionID)
		assert.Equal(t, "Welcome admin", res.Message)
		assert.NotEmpty(t, res.Token)
	})

	t.Run("whitespace username is not blank", func(t *testing.T) {
		w := e.do(http.MethodPost, "/login", `{"username":"   ","password":"admin123"}`, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"error","message":"Invalid credentials"}`, w.Body.String())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		w := e.do(http.MethodPost, "/login", `{"username":"admin","password":"nope"}`, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"error","message":"Invalid credentials"}`, w.Body.String())
	})
}

func TestAsk_EmptyQuery(t *testing.T) {
	e := newTestEnv(t, false)

	for _, body := range []string{`{"query":""}`, `{"query":"   "}`, `{}`} {
		w := e.do(http.MethodPost, "/ask", body, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"answer":"Please send a Student ID, Name, or skill."}`, w.Body.String())
	}
}

func TestAsk_InvalidJSON(t *testing.T) {
	e := newTestEnv(t, false)
	w := e.do(http.MethodPost, "/ask", `{"query":`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 10001, decodeEnvelope(t, w).Code)
}

func TestAsk_NumericQueryMatchesID(t *testing.T) {
	e := newTestEnv(t, false)
	w := e.do(http.MethodPost, "/ask", `{"query":1001,"session_id":"s-1"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Answer    string           `json:"answer"`
		SessionID string           `json:"session_id"`
		Insights  advisor.Insights `json:"insights"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, strings.HasPrefix(res.Answer, "Hi Aishwarya Iyer. Based on your profile (G P A 9.06)"), res.Answer)
	assert.Equal(t, "s-1", res.SessionID)
	assert.Equal(t, "1001", res.Insights.StudentID)
	assert.Equal(t, res.Answer, res.Insights.SummaryText)
	assert.Len(t, res.Insights.CareerSuggestions, 4)
}

func TestAsk_NonFiniteCellsRenderAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.csv")
	content := strings.Join([]string{
		"Student_ID,Name,GPA,10th_Marks,12th_Marks,Skills,Interested_Domain,Career_Suggestions,Internships,Certifications",
		"2001,Nan Student,NaN,90,inf,SQL,Data,Data Analyst,,",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	e := newTestEnvWithDataset(t, false, path)

	w := e.do(http.MethodPost, "/ask", `{"query":"2001"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Body.Bytes())

	var res struct {
		Answer   string         `json:"answer"`
		Insights map[string]any `json:"insights"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	assert.Contains(t, res.Answer, "(G P A N/A)")
	assert.Nil(t, res.Insights["gpa"])
	assert.Equal(t, map[string]any{"10th": 90.0, "12th": nil}, res.Insights["marks"])

	w = e.do(http.MethodGet, "/download/2001", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAsk_NoMatch(t *testing.T) {
	e := newTestEnv(t, false)
	w := e.do(http.MethodPost, "/ask", `{"query":"zzzz"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"answer":"I couldn’t find your profile. Please tell me your Student ID, Name, or Skills."}`, w.Body.String())
}

func TestSessionHistory(t *testing.T) {
	e := newTestEnv(t, false)
	e.do(http.MethodPost, "/ask", `{"query":"Priya Sharma","session_id":"hist-1"}`, nil)

	w := e.do(http.MethodGet, "/sessions/hist-1/history", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sess session.Session
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &sess))
	assert.Equal(t, "hist-1", sess.ID)
	require.Len(t, sess.History, 2)
	assert.Equal(t, session.SenderUser, sess.History[0].Sender)
	assert.Equal(t, "Priya Sharma", sess.History[0].Message)
	assert.Equal(t, session.SenderSystem, sess.History[1].Sender)

	w = e.do(http.MethodGet, "/sessions/unknown/history", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMe(t *testing.T) {
	e := newTestEnv(t, false)

	w := e.do(http.MethodGet, "/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(http.MethodGet, "/me", "", map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(http.MethodPost, "/login", `{"username":"kirubha","password":"12345"}`, nil)
	var res advisor.LoginResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	e.do(http.MethodPost, "/ask", `{"query":"1003","session_id":"kirubha"}`, nil)

	w = e.do(http.MethodGet, "/me", "", map[string]string{"Authorization": "Bearer " + res.Token})
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		Username  string          `json:"username"`
		SessionID string          `json:"session_id"`
		History   []session.Entry `json:"history"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &me))
	assert.Equal(t, "kirubha", me.Username)
	assert.Equal(t, "kirubha", me.SessionID)
	assert.Len(t, me.History, 2)
}

func TestDownload_PDF(t *testing.T) {
	e := newTestEnv(t, false)
	w := e.do(http.MethodGet, "/download/1002", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Aarav_Kumar_career_plan.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	onDisk, err := os.ReadFile(filepath.Join(e.reportDir, "Aarav_Kumar_career_plan.pdf"))
	require.NoError(t, err)
	assert.Equal(t, w.Body.Bytes(), onDisk)
}

func TestDownload_XLSX(t *testing.T) {
	e := newTestEnv(t, false)
	w := e.do(http.MethodGet, "/download/1003?format=xlsx", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Priya_Sharma_career_plan.xlsx")
	assert.FileExists(t, filepath.Join(e.reportDir, "Priya_Sharma_career_plan.xlsx"))
}

func TestDownload_Errors(t *testing.T) {
	e := newTestEnv(t, false)

	w := e.do(http.MethodGet, "/download/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Student not found", decodeEnvelope(t, w).Message)

	w = e.do(http.MethodGet, "/download/1001?format=doc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	entries, err := os.ReadDir(e.reportDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReports_DisabledWithoutQueue(t *testing.T) {
	e := newTestEnv(t, false)
	w := e.do(http.MethodPost, "/reports", `{"student_id":"1001"}`, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReports_EnqueueAndGet(t *testing.T) {
	e := newTestEnv(t, true)

	w := e.do(http.MethodPost, "/reports", `{"student_id":"1001","format":"xlsx"}`, nil)
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	var created struct {
		JobID string `json:"job_id"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &created))
	assert.Equal(t, []string{created.JobID}, e.queue.published)

	w = e.do(http.MethodGet, "/reports/"+created.JobID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var job report.Job
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &job))
	assert.Equal(t, report.JobQueued, job.Status)
	assert.Equal(t, "xlsx", job.Format)

	w = e.do(http.MethodGet, "/reports/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = e.do(http.MethodPost, "/reports", `{"student_id":"9999"}`, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = e.do(http.MethodPost, "/reports", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
