/*
handlers.go - HTTP API handlers for the shift engine

PURPOSE:
  Exposes the roster catalogue, work-day records and payroll summaries via
  REST. Handles HTTP request/response, JSON serialization, and delegates to
  domain logic.

ENDPOINTS:
  Catalogue:
    GET    /api/catalogue/shifts            Shifts in force, grouped by depot
    GET    /api/catalogue/version           Resolve one (location, date) version
    GET    /api/catalogue/standard-minutes  Standard shift length on a date

  Records:
    GET    /api/records                     All records, most recent first
    POST   /api/records                     Log a work day
    GET    /api/records/{id}                One record with derived facts
    PUT    /api/records/{id}                Edit a record
    DELETE /api/records/{id}                Delete a record

  Summaries:
    GET    /api/summary/month               Month aggregates
    GET    /api/summary/year                Year aggregates
    GET    /api/summary/month/pdf           Month payroll as PDF

  Charts:
    GET    /api/charts/months               Worked hours per month of a year
    GET    /api/charts/types                Worked hours per shift bucket
    GET    /api/charts/comparison           Year-over-year worked hours

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Record or roster version not found
  - 409: A record already exists on that day
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/railops/shift-engine/catalogue"
	"github.com/railops/shift-engine/config"
	"github.com/railops/shift-engine/payroll"
	"github.com/railops/shift-engine/report"
	"github.com/railops/shift-engine/workday"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store      workday.Store
	Catalogue  *catalogue.Catalogue
	Aggregator *payroll.Aggregator
	Operator   config.OperatorConfig
}

// NewHandler creates a new handler for one operator's instance.
func NewHandler(store workday.Store, cat *catalogue.Catalogue, operator config.OperatorConfig) *Handler {
	return &Handler{
		Store:      store,
		Catalogue:  cat,
		Aggregator: payroll.New(cat, operator.Role),
		Operator:   operator,
	}
}

// =============================================================================
// CATALOGUE HANDLERS
// =============================================================================

// ListShifts returns the shifts in force on a date, grouped by depot.
// GET /api/catalogue/shifts?date=2025-03-10
func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	date, err := queryDate(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}

	byLocation := h.Catalogue.ShiftsByLocation(h.Operator.Role, date)
	out := make(map[string][]ShiftDTO, len(byLocation))
	for location, shifts := range byLocation {
		dtos := make([]ShiftDTO, len(shifts))
		for i, s := range shifts {
			dtos[i] = toShiftDTO(s)
		}
		out[location] = dtos
	}
	writeJSON(w, http.StatusOK, out)
}

// GetVersion resolves the roster version for a depot and date.
// GET /api/catalogue/version?location=benidorm&date=2025-03-10
func (h *Handler) GetVersion(w http.ResponseWriter, r *http.Request) {
	date, err := queryDate(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}
	location := catalogue.Location(r.URL.Query().Get("location"))
	if !location.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid location", fmt.Errorf("unknown location %q", location))
		return
	}

	v, ok := h.Catalogue.Resolve(h.Operator.Role, location, date)
	if !ok {
		writeError(w, http.StatusNotFound, "No roster version in force", nil)
		return
	}
	writeJSON(w, http.StatusOK, toVersionDTO(v))
}

// GetStandardMinutes returns the standard shift length in force on a date.
// GET /api/catalogue/standard-minutes?date=2025-03-10
func (h *Handler) GetStandardMinutes(w http.ResponseWriter, r *http.Request) {
	date, err := queryDate(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"standard_minutes": h.Catalogue.StandardShiftMinutes(h.Operator.Role, date),
	})
}

// =============================================================================
// RECORD HANDLERS
// =============================================================================

// ListRecords returns all records, most recent first.
// GET /api/records
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list records", err)
		return
	}

	dtos := make([]RecordDTO, len(records))
	for i, rec := range records {
		dtos[i] = h.toRecordDTO(rec)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetRecord returns one record with its derived facts.
// GET /api/records/{id}
func (h *Handler) GetRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toRecordDTO(record))
}

// CreateRecord logs a new work day.
// POST /api/records
func (h *Handler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req SaveRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	record, err := h.recordFromRequest(req, "")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid record", err)
		return
	}

	if err := h.Store.Save(r.Context(), &record); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.toRecordDTO(record))
}

// UpdateRecord edits an existing record.
// PUT /api/records/{id}
func (h *Handler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.Store.Get(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}

	var req SaveRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	record, err := h.recordFromRequest(req, id)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid record", err)
		return
	}

	if err := h.Store.Save(r.Context(), &record); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toRecordDTO(record))
}

// DeleteRecord removes a record.
// DELETE /api/records/{id}
func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// recordFromRequest builds a domain record from the request body. When the
// allowance flag is absent it is defaulted: working a shift published for a
// depot other than the operator's home depot earns an allowance day.
func (h *Handler) recordFromRequest(req SaveRecordRequest, id string) (workday.Record, error) {
	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return workday.Record{}, fmt.Errorf("invalid start_date: %w", err)
	}
	end, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		return workday.Record{}, fmt.Errorf("invalid end_date: %w", err)
	}

	record := workday.Record{
		ID:                     id,
		ShiftName:              req.ShiftName,
		StartDate:              start,
		EndDate:                end,
		Saturation:             req.Saturation,
		ExtraTime:              req.ExtraTime,
		IsFreeLicense:          req.IsFreeLicense,
		IsWorkedHoliday:        req.IsWorkedHoliday,
		IsSpecialWorkedHoliday: req.IsSpecialWorkedHoliday,
		IsMentoring:            req.IsMentoring,
		IsPaidLicense:          req.IsPaidLicense,
		IsSickLeave:            req.IsSickLeave,
		IsWorkAccident:         req.IsWorkAccident,
		IsSPP:                  req.IsSPP,
	}

	if req.IsAllowance != nil {
		record.IsAllowance = *req.IsAllowance
	} else if loc, ok := h.Catalogue.LocationOf(req.ShiftName, h.Operator.Role); ok {
		record.IsAllowance = loc != h.Operator.HomeLocation
	}

	return record, record.Validate()
}

// =============================================================================
// SUMMARY HANDLERS
// =============================================================================

// GetMonthSummary returns the aggregates of the date's calendar month.
// GET /api/summary/month?date=2025-03-10
func (h *Handler) GetMonthSummary(w http.ResponseWriter, r *http.Request) {
	h.writeSummary(w, r, h.Aggregator.MonthSummary)
}

// GetYearSummary returns the aggregates of the date's calendar year.
// GET /api/summary/year?date=2025-03-10
func (h *Handler) GetYearSummary(w http.ResponseWriter, r *http.Request) {
	h.writeSummary(w, r, h.Aggregator.YearSummary)
}

func (h *Handler) writeSummary(w http.ResponseWriter, r *http.Request, summarize func([]workday.Record, time.Time) payroll.Summary) {
	date, err := queryDate(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}

	records, err := h.Store.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list records", err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryDTO(summarize(records, date)))
}

// GetMonthPayrollPDF renders the month's payroll summary as a PDF.
// GET /api/summary/month/pdf?date=2025-03-10
func (h *Handler) GetMonthPayrollPDF(w http.ResponseWriter, r *http.Request) {
	date, err := queryDate(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date", err)
		return
	}

	records, err := h.Store.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list records", err)
		return
	}

	summary := h.Aggregator.MonthSummary(records, date)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=payroll-%s.pdf", date.Format("2006-01")))
	if err := report.MonthlyPayroll(w, h.Operator.Role, date, summary); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to render PDF", err)
	}
}

// =============================================================================
// CHART HANDLERS
// =============================================================================

// GetMonthlyHoursChart returns worked hours per month of a year.
// GET /api/charts/months?year=2025
func (h *Handler) GetMonthlyHoursChart(w http.ResponseWriter, r *http.Request) {
	year, err := queryYear(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	records, err := h.Store.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list records", err)
		return
	}

	bars := h.Aggregator.MonthlyWorkedHours(records, year)
	dtos := make([]MonthHoursDTO, len(bars))
	for i, b := range bars {
		dtos[i] = MonthHoursDTO{Month: int(b.Month), Hours: b.Hours}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetTypeHoursChart returns worked hours per shift bucket over a year.
// GET /api/charts/types?year=2025
func (h *Handler) GetTypeHoursChart(w http.ResponseWriter, r *http.Request) {
	year, err := queryYear(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	records, err := h.Store.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list records", err)
		return
	}

	slices := h.Aggregator.HoursByType(records, year)
	dtos := make([]TypeHoursDTO, len(slices))
	for i, s := range slices {
		dtos[i] = TypeHoursDTO{Type: string(s.Type), Hours: s.Hours}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetComparisonChart returns the year-over-year worked-hours comparison.
// GET /api/charts/comparison?year=2025
func (h *Handler) GetComparisonChart(w http.ResponseWriter, r *http.Request) {
	year, err := queryYear(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	records, err := h.Store.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list records", err)
		return
	}

	c := h.Aggregator.CompareYears(records, year, h.Operator.PreviousYearHours)
	writeJSON(w, http.StatusOK, ComparisonDTO{
		Year:          c.Year,
		Hours:         c.Hours,
		PreviousYear:  c.PreviousYear,
		PreviousHours: c.PreviousHours,
		Difference:    c.Difference,
	})
}

// =============================================================================
// HELPERS
// =============================================================================

// queryDate parses a date query parameter, defaulting to today when absent.
func queryDate(r *http.Request, key string) (time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", raw)
}

// queryYear parses the year query parameter, defaulting to the current year.
func queryYear(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return time.Now().Year(), nil
	}
	return strconv.Atoi(raw)
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, workday.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, "Record not found", err)
	case errors.Is(err, workday.ErrDuplicateDay):
		writeError(w, http.StatusConflict, "A record already exists for that day", err)
	case errors.Is(err, workday.ErrInvalidRecord):
		writeError(w, http.StatusBadRequest, "Invalid record", err)
	default:
		writeError(w, http.StatusInternalServerError, "Storage error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
