/*
handlers_test.go - Unit tests for API handlers

Tests for:
- Record CRUD and allowance defaulting
- Catalogue resolution endpoints
- Summary and chart endpoints
*/
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/railops/shift-engine/catalogue"
	"github.com/railops/shift-engine/config"
	"github.com/railops/shift-engine/workday/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	operator := config.OperatorConfig{
		Role:              catalogue.RoleDriver,
		HomeLocation:      catalogue.LocationBenidorm,
		PreviousYearHours: 1650,
	}
	h := NewHandler(store.NewMemory(), catalogue.Default(), operator)
	return NewRouter(h, "test")
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func saveRequest(shiftName string, day int) map[string]any {
	return map[string]any{
		"shift_name": shiftName,
		"start_date": fmt.Sprintf("2024-10-%02dT05:20:00Z", day),
		"end_date":   fmt.Sprintf("2024-10-%02dT13:54:00Z", day),
	}
}

// =============================================================================
// CATALOGUE ENDPOINTS
// =============================================================================

func TestListShifts(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/catalogue/shifts?date=2024-10-07", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string][]ShiftDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Contains(t, got, "Benidorm")
	assert.Contains(t, got, "Denia")
	assert.NotEmpty(t, got["Benidorm"])
}

func TestGetVersion(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/catalogue/version?location=benidorm&date=2024-10-07", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got VersionDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "2024-09-09", got.ValidFrom)
}

func TestGetVersion_NoneInForce(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/catalogue/version?location=benidorm&date=2020-01-01", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetVersion_UnknownLocation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/catalogue/version?location=alicante&date=2024-10-07", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStandardMinutes(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/catalogue/standard-minutes?date=2024-10-07", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 468, got["standard_minutes"])
}

// =============================================================================
// RECORD ENDPOINTS
// =============================================================================

func TestCreateRecord_ReturnsDerivedFacts(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/records", saveRequest("1", 7))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got RecordDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Mañana", got.Type)
	assert.Equal(t, "De 05:20 a 13:54", got.Span)
	assert.Equal(t, 8.57, got.WorkedHours)
	assert.False(t, got.IsAllowance)
}

func TestCreateRecord_AllowanceDefaultsFromDepot(t *testing.T) {
	router := newTestRouter(t)

	// GIVEN: a shift published for Denia while the operator's home depot
	// is Benidorm
	rec := doJSON(t, router, http.MethodPost, "/api/records", saveRequest("21", 7))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got RecordDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.IsAllowance)
}

func TestCreateRecord_ExplicitAllowanceWins(t *testing.T) {
	router := newTestRouter(t)

	req := saveRequest("21", 7)
	req["is_allowance"] = false

	rec := doJSON(t, router, http.MethodPost, "/api/records", req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got RecordDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.IsAllowance)
}

func TestCreateRecord_InvalidSpan(t *testing.T) {
	router := newTestRouter(t)

	req := map[string]any{
		"shift_name": "1",
		"start_date": "2024-10-07T13:54:00Z",
		"end_date":   "2024-10-07T05:20:00Z",
	}

	rec := doJSON(t, router, http.MethodPost, "/api/records", req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRecord_DuplicateDayConflicts(t *testing.T) {
	router := newTestRouter(t)

	require.Equal(t, http.StatusCreated,
		doJSON(t, router, http.MethodPost, "/api/records", saveRequest("1", 7)).Code)

	rec := doJSON(t, router, http.MethodPost, "/api/records", saveRequest("2", 7))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRecordLifecycle(t *testing.T) {
	router := newTestRouter(t)

	created := doJSON(t, router, http.MethodPost, "/api/records", saveRequest("1", 7))
	require.Equal(t, http.StatusCreated, created.Code)
	var dto RecordDTO
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &dto))

	// Update the shift name
	update := saveRequest("STDR", 7)
	updated := doJSON(t, router, http.MethodPut, "/api/records/"+dto.ID, update)
	require.Equal(t, http.StatusOK, updated.Code)
	var after RecordDTO
	require.NoError(t, json.Unmarshal(updated.Body.Bytes(), &after))
	assert.True(t, after.IsStandard)

	// Fetch and delete
	assert.Equal(t, http.StatusOK,
		doJSON(t, router, http.MethodGet, "/api/records/"+dto.ID, nil).Code)
	assert.Equal(t, http.StatusNoContent,
		doJSON(t, router, http.MethodDelete, "/api/records/"+dto.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound,
		doJSON(t, router, http.MethodGet, "/api/records/"+dto.ID, nil).Code)
}

func TestGetRecord_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/records/nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// =============================================================================
// SUMMARY AND CHART ENDPOINTS
// =============================================================================

func TestGetMonthSummary(t *testing.T) {
	router := newTestRouter(t)

	require.Equal(t, http.StatusCreated,
		doJSON(t, router, http.MethodPost, "/api/records", saveRequest("1", 7)).Code)

	rec := doJSON(t, router, http.MethodGet, "/api/summary/month?date=2024-10-15", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got SummaryDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 8.57, got.WorkedHours)
	assert.Equal(t, 1, got.WorkedDays)
	assert.Equal(t, 1, got.SnackBreakCount)
	assert.Equal(t, "0.00", got.AllowanceCompensation)
	assert.Len(t, got.ByType, 3)
}

func TestGetYearSummary_EmptyStore(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/summary/year?date=2024-10-15", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got SummaryDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 0.0, got.WorkedHours)
	assert.Equal(t, 0, got.WorkedDays)
}

func TestGetMonthPayrollPDF(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/summary/month/pdf?date=2024-10-15", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestGetMonthlyHoursChart(t *testing.T) {
	router := newTestRouter(t)

	require.Equal(t, http.StatusCreated,
		doJSON(t, router, http.MethodPost, "/api/records", saveRequest("1", 7)).Code)

	rec := doJSON(t, router, http.MethodGet, "/api/charts/months?year=2024", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []MonthHoursDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 10, got[0].Month)
	assert.Equal(t, 8.57, got[0].Hours)
}

func TestGetComparisonChart(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/charts/comparison?year=2024", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got ComparisonDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 2024, got.Year)
	assert.Equal(t, 2023, got.PreviousYear)
	assert.Equal(t, 1650.0, got.PreviousHours)
}

func TestBadDateIsRejected(t *testing.T) {
	router := newTestRouter(t)

	assert.Equal(t, http.StatusBadRequest,
		doJSON(t, router, http.MethodGet, "/api/summary/month?date=not-a-date", nil).Code)
	assert.Equal(t, http.StatusBadRequest,
		doJSON(t, router, http.MethodGet, "/api/charts/months?year=abc", nil).Code)
}
