package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Keaton-Harvey/DatabasesProject/internal/dto"
	"github.com/Keaton-Harvey/DatabasesProject/internal/model"
	"github.com/Keaton-Harvey/DatabasesProject/internal/service"
	pkgerrors "github.com/Keaton-Harvey/DatabasesProject/pkg/errors"
	"github.com/Keaton-Harvey/DatabasesProject/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := RegisterValidators(); err != nil {
		panic(err)
	}
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock EvaluationService ──

type mockEvaluationService struct {
	updateResult    *dto.UpdateEvaluationResponse
	updateErr       error
	duplicateResult *dto.DuplicateEvaluationResponse
	duplicateErr    error
	listResult      []dto.EvaluationResponse
	listErr         error
	sectionResult   *dto.SectionStatusResponse
	sectionErr      error
	semesterResult  *dto.SemesterStatusResponse
	semesterErr     error

	lastUpdate    *dto.UpdateEvaluationRequest
	lastSection   model.SectionKey
	lastDuplicate *dto.DuplicateEvaluationRequest
}

func (m *mockEvaluationService) Update(_ context.Context, req *dto.UpdateEvaluationRequest) (*dto.UpdateEvaluationResponse, error) {
	m.lastUpdate = req
	return m.updateResult, m.updateErr
}
func (m *mockEvaluationService) Duplicate(_ context.Context, req *dto.DuplicateEvaluationRequest) (*dto.DuplicateEvaluationResponse, error) {
	m.lastDuplicate = req
	return m.duplicateResult, m.duplicateErr
}
func (m *mockEvaluationService) ListBySection(_ context.Context, key model.SectionKey) ([]dto.EvaluationResponse, error) {
	m.lastSection = key
	return m.listResult, m.listErr
}
func (m *mockEvaluationService) GetSectionStatus(_ context.Context, key model.SectionKey) (*dto.SectionStatusResponse, error) {
	m.lastSection = key
	return m.sectionResult, m.sectionErr
}
func (m *mockEvaluationService) GetSemesterStatus(_ context.Context, _ int, _ string) (*dto.SemesterStatusResponse, error) {
	return m.semesterResult, m.semesterErr
}

// ── Mock DegreeService ──

type mockDegreeService struct {
	createErr error
	goalReq   *dto.CreateGoalRequest
}

func (m *mockDegreeService) Create(_ context.Context, req *dto.CreateDegreeRequest) (*dto.DegreeResponse, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &dto.DegreeResponse{DegreeID: req.DegreeID, Name: req.Name, Level: req.Level}, nil
}
func (m *mockDegreeService) List(_ context.Context) ([]dto.DegreeResponse, error) {
	return []dto.DegreeResponse{}, nil
}
func (m *mockDegreeService) AddGoal(_ context.Context, req *dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	m.goalReq = req
	return &dto.GoalResponse{DegreeID: req.DegreeID, GoalCode: req.GoalCode, Description: req.Description}, nil
}
func (m *mockDegreeService) ListGoals(_ context.Context, _ string) ([]dto.GoalResponse, error) {
	return []dto.GoalResponse{}, nil
}

// ── Mock ReportService ──

type mockReportService struct {
	rows          []dto.PassRateResponse
	err           error
	lastThreshold float64
	rangeQuery    *dto.SectionRangeQuery
}

func (m *mockReportService) DegreeCourses(_ context.Context, _ string) ([]model.DegreeCourse, error) {
	return []model.DegreeCourse{}, m.err
}
func (m *mockReportService) DegreeGoals(_ context.Context, _ string) ([]dto.GoalResponse, error) {
	return []dto.GoalResponse{}, m.err
}
func (m *mockReportService) CoursesForGoals(_ context.Context, _ string, _ []string) ([]model.CourseGoal, error) {
	return []model.CourseGoal{}, m.err
}
func (m *mockReportService) DegreesForCourse(_ context.Context, _ string) ([]model.CourseDegreeDetail, error) {
	return []model.CourseDegreeDetail{}, m.err
}
func (m *mockReportService) AvailableCourses(_ context.Context, _ int, _ string) ([]dto.CourseResponse, error) {
	return []dto.CourseResponse{}, m.err
}
func (m *mockReportService) SectionsInRange(_ context.Context, query *dto.SectionRangeQuery) ([]dto.SectionResponse, error) {
	m.rangeQuery = query
	return []dto.SectionResponse{}, m.err
}
func (m *mockReportService) SectionsAboveThreshold(_ context.Context, _ int, _ string, threshold float64) ([]dto.PassRateResponse, error) {
	m.lastThreshold = threshold
	return m.rows, m.err
}

// ── Mock ExportService ──

type mockExportService struct {
	buf           *bytes.Buffer
	filename      string
	err           error
	lastThreshold *float64
}

func (m *mockExportService) ExportSemester(_ context.Context, _ int, _ string, threshold *float64) (*bytes.Buffer, string, error) {
	m.lastThreshold = threshold
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func serve(method, path, target string, body io.Reader, h gin.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r := gin.New()
	r.Handle(method, path, h)
	r.ServeHTTP(w, req)
	return w
}

func validUpdateRequest() dto.UpdateEvaluationRequest {
	note := "more practice problems"
	return dto.UpdateEvaluationRequest{
		EvaluationKeyRequest: dto.EvaluationKeyRequest{
			CourseNumber: "CS1010",
			SectionID:    "001",
			Year:         2025,
			Term:         "Spring",
			DegreeID:     "BSCS",
			GoalCode:     "G001",
		},
		GradeCountA:     10,
		GradeCountB:     10,
		GradeCountC:     5,
		GradeCountF:     5,
		ImprovementNote: &note,
	}
}

// ═══════════════════════════════════════════════════════════
// EvaluationHandler Tests
// ═══════════════════════════════════════════════════════════

func TestEvaluationHandler_Update_Success(t *testing.T) {
	mock := &mockEvaluationService{
		updateResult: &dto.UpdateEvaluationResponse{
			Evaluation:            dto.EvaluationResponse{Status: "Fully Entered (With Improvement Note)"},
			DuplicationCandidates: []string{"BACS"},
		},
	}
	h := NewEvaluationHandler(mock)

	w := serve("PUT", "/evaluations", "/evaluations", jsonBody(validUpdateRequest()), h.UpdateEvaluation)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if resp := parseResponse(w); resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
	if mock.lastUpdate == nil || mock.lastUpdate.GradeCountA != 10 || mock.lastUpdate.DegreeID != "BSCS" {
		t.Errorf("request not forwarded to service: %+v", mock.lastUpdate)
	}
}

func TestEvaluationHandler_Update_BadGoalCode(t *testing.T) {
	mock := &mockEvaluationService{}
	h := NewEvaluationHandler(mock)

	req := validUpdateRequest()
	req.GoalCode = "GOAL"
	w := serve("PUT", "/evaluations", "/evaluations", jsonBody(req), h.UpdateEvaluation)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != codeBindFailed {
		t.Errorf("expected code %d, got %d", codeBindFailed, resp.Code)
	}
	if mock.lastUpdate != nil {
		t.Error("service should not be called when binding fails")
	}
}

func TestEvaluationHandler_Update_NegativeCount(t *testing.T) {
	h := NewEvaluationHandler(&mockEvaluationService{})

	req := validUpdateRequest()
	req.GradeCountF = -1
	w := serve("PUT", "/evaluations", "/evaluations", jsonBody(req), h.UpdateEvaluation)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestEvaluationHandler_Update_Consistency(t *testing.T) {
	mock := &mockEvaluationService{
		updateErr: &pkgerrors.ConsistencyError{Expected: 30, Actual: 29},
	}
	h := NewEvaluationHandler(mock)

	w := serve("PUT", "/evaluations", "/evaluations", jsonBody(validUpdateRequest()), h.UpdateEvaluation)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != codeConsistency {
		t.Errorf("expected code %d, got %d", codeConsistency, resp.Code)
	}
	details, ok := resp.Details.(map[string]interface{})
	if !ok || details["expected"] != float64(30) || details["actual"] != float64(29) {
		t.Errorf("unexpected details: %v", resp.Details)
	}
}

func TestEvaluationHandler_Update_MissingEvaluation(t *testing.T) {
	mock := &mockEvaluationService{
		updateErr: pkgerrors.NewReference("evaluation", "CS1010/001/2025/Spring/BSCS/G001"),
	}
	h := NewEvaluationHandler(mock)

	w := serve("PUT", "/evaluations", "/evaluations", jsonBody(validUpdateRequest()), h.UpdateEvaluation)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != codeReference {
		t.Errorf("expected code %d, got %d", codeReference, resp.Code)
	}
}

func TestEvaluationHandler_Update_ConnectionLost(t *testing.T) {
	mock := &mockEvaluationService{
		updateErr: &pkgerrors.ConnectionError{Op: "update evaluation", Err: fmt.Errorf("dial tcp: connection refused")},
	}
	h := NewEvaluationHandler(mock)

	w := serve("PUT", "/evaluations", "/evaluations", jsonBody(validUpdateRequest()), h.UpdateEvaluation)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
}

func TestEvaluationHandler_Duplicate_Success(t *testing.T) {
	mock := &mockEvaluationService{
		duplicateResult: &dto.DuplicateEvaluationResponse{Updated: []dto.EvaluationResponse{{DegreeID: "BACS"}}},
	}
	h := NewEvaluationHandler(mock)

	body := dto.DuplicateEvaluationRequest{
		EvaluationKeyRequest: validUpdateRequest().EvaluationKeyRequest,
		TargetDegreeIDs:      []string{"BACS"},
	}
	w := serve("POST", "/evaluations/duplicate", "/evaluations/duplicate", jsonBody(body), h.DuplicateEvaluation)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if mock.lastDuplicate == nil || len(mock.lastDuplicate.TargetDegreeIDs) != 1 {
		t.Errorf("targets not forwarded: %+v", mock.lastDuplicate)
	}
}

func TestEvaluationHandler_SemesterStatus_BadTerm(t *testing.T) {
	h := NewEvaluationHandler(&mockEvaluationService{})

	w := serve("GET", "/semesters/:year/:term/status", "/semesters/2025/Winter/status", nil, h.GetSemesterStatus)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	details, _ := resp.Details.(map[string]interface{})
	if details["field"] != "term" {
		t.Errorf("expected field term, got %v", resp.Details)
	}
}

// ═══════════════════════════════════════════════════════════
// SectionHandler Tests
// ═══════════════════════════════════════════════════════════

func TestSectionHandler_GetStatus_PathParams(t *testing.T) {
	mock := &mockEvaluationService{
		sectionResult: &dto.SectionStatusResponse{CourseNumber: "CS1010", SectionID: "001", Status: "No Evaluation Entered"},
	}
	h := NewSectionHandler(nil, mock)

	w := serve("GET", "/sections/:course/:section/:year/:term/status",
		"/sections/CS1010/001/2025/Spring/status", nil, h.GetStatus)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	want := model.SectionKey{CourseNumber: "CS1010", SectionID: "001", Year: 2025, Term: model.TermSpring}
	if mock.lastSection != want {
		t.Errorf("expected key %+v, got %+v", want, mock.lastSection)
	}
}

func TestSectionHandler_ListEvaluations_BadYear(t *testing.T) {
	mock := &mockEvaluationService{}
	h := NewSectionHandler(nil, mock)

	w := serve("GET", "/sections/:course/:section/:year/:term/evaluations",
		"/sections/CS1010/001/25/Spring/evaluations", nil, h.ListEvaluations)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// DegreeHandler Tests
// ═══════════════════════════════════════════════════════════

func TestDegreeHandler_Create_Duplicate(t *testing.T) {
	mock := &mockDegreeService{createErr: pkgerrors.NewDuplicate("degree", model.ConstraintDegreeNameLevel)}
	h := NewDegreeHandler(mock, &mockReportService{})

	w := serve("POST", "/degrees", "/degrees", jsonBody(dto.CreateDegreeRequest{
		DegreeID: "BSCS2", Name: "Computer Science", Level: "BS",
	}), h.CreateDegree)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	resp := parseResponse(w)
	details, _ := resp.Details.(map[string]interface{})
	if details["constraint"] != model.ConstraintDegreeNameLevel {
		t.Errorf("expected constraint %s, got %v", model.ConstraintDegreeNameLevel, resp.Details)
	}
}

func TestDegreeHandler_Create_BadLevel(t *testing.T) {
	h := NewDegreeHandler(&mockDegreeService{}, &mockReportService{})

	w := serve("POST", "/degrees", "/degrees", jsonBody(dto.CreateDegreeRequest{
		DegreeID: "BSCS", Name: "Computer Science", Level: "PhD",
	}), h.CreateDegree)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestDegreeHandler_AddGoal_DegreeFromPath(t *testing.T) {
	mock := &mockDegreeService{}
	h := NewDegreeHandler(mock, &mockReportService{})

	w := serve("POST", "/degrees/:id/goals", "/degrees/BSCS/goals", jsonBody(map[string]string{
		"degree_id":   "IGNORED",
		"goal_code":   "G002",
		"description": "Design algorithms",
	}), h.AddGoal)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if mock.goalReq == nil || mock.goalReq.DegreeID != "BSCS" {
		t.Errorf("expected degree id from path, got %+v", mock.goalReq)
	}
}

// ═══════════════════════════════════════════════════════════
// ReportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestReportHandler_PassRate_DefaultThreshold(t *testing.T) {
	mock := &mockReportService{rows: []dto.PassRateResponse{}}
	h := NewReportHandler(mock, 70)

	w := serve("GET", "/semesters/:year/:term/pass-rate", "/semesters/2025/Spring/pass-rate", nil, h.PassRate)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if mock.lastThreshold != 70 {
		t.Errorf("expected default threshold 70, got %v", mock.lastThreshold)
	}
}

func TestReportHandler_PassRate_ExplicitThreshold(t *testing.T) {
	mock := &mockReportService{}
	h := NewReportHandler(mock, 70)

	w := serve("GET", "/semesters/:year/:term/pass-rate", "/semesters/2025/Spring/pass-rate?threshold=82.5", nil, h.PassRate)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if mock.lastThreshold != 82.5 {
		t.Errorf("expected threshold 82.5, got %v", mock.lastThreshold)
	}
}

func TestReportHandler_PassRate_ThresholdOutOfRange(t *testing.T) {
	mock := &mockReportService{}
	h := NewReportHandler(mock, 70)

	w := serve("GET", "/semesters/:year/:term/pass-rate", "/semesters/2025/Spring/pass-rate?threshold=150", nil, h.PassRate)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestReportHandler_SectionsInRange_ValidationError(t *testing.T) {
	mock := &mockReportService{err: pkgerrors.NewValidation("course_number", "课程编号与教师编号至少提供一个")}
	h := NewReportHandler(mock, 70)

	w := serve("GET", "/reports/sections", "/reports/sections?start_year=2024&start_term=Fall&end_year=2025&end_term=Spring",
		nil, h.SectionsInRange)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if mock.rangeQuery == nil || mock.rangeQuery.StartYear != 2024 {
		t.Errorf("query not bound: %+v", mock.rangeQuery)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("excel content"),
		filename: "assessment_2025_Spring.xlsx",
	}
	h := NewExportHandler(mock)

	w := serve("GET", "/semesters/:year/:term/export", "/semesters/2025/Spring/export", nil, h.ExportSemester)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	ct := w.Header().Get("Content-Type")
	if ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type: %s", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if cd != "attachment; filename*=UTF-8''assessment_2025_Spring.xlsx" {
		t.Errorf("unexpected Content-Disposition: %s", cd)
	}
	if mock.lastThreshold != nil {
		t.Errorf("expected nil threshold, got %v", *mock.lastThreshold)
	}
}

func TestExportHandler_NoSections(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrExportNoSections})

	w := serve("GET", "/semesters/:year/:term/export", "/semesters/2025/Fall/export", nil, h.ExportSemester)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != codeNoSections {
		t.Errorf("expected code %d, got %d", codeNoSections, resp.Code)
	}
}

func TestExportHandler_GenerateFailed(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrExportGenerateFail})

	w := serve("GET", "/semesters/:year/:term/export", "/semesters/2025/Fall/export", nil, h.ExportSemester)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}
