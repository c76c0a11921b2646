package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wealthpath/calendar/internal/logger"
	"github.com/wealthpath/calendar/internal/service"
)

// SetLocalRequest is the body of PUT /wallclock/local.
type SetLocalRequest struct {
	Name string `json:"name"`
}

// SecondsInDayResponse is returned by the day-length endpoint.
type SecondsInDayResponse struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	WallClock string `json:"wallclock,omitempty"`
	Seconds   int    `json:"seconds"`
}

// CalendarHandler handles HTTP requests for calendar computations.
type CalendarHandler struct {
	calendarService CalendarServiceInterface
}

// NewCalendarHandler creates a new CalendarHandler with the given service.
func NewCalendarHandler(calendarService CalendarServiceInterface) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

// Routes mounts the calendar endpoints on r.
func (h *CalendarHandler) Routes(r chi.Router) {
	r.Get("/now", h.Now)
	r.Post("/parse", h.Parse)
	r.Post("/make", h.Make)
	r.Post("/add", h.Add)
	r.Post("/diff", h.Diff)
	r.Post("/convert", h.Convert)
	r.Post("/recurrences", h.Recurrences)

	r.Route("/calendar/{year}", func(r chi.Router) {
		r.Get("/", h.GetYear)
		r.Get("/{month}", h.GetMonth)
		r.Get("/{month}/{day}/seconds", h.GetSecondsInDay)
	})

	r.Get("/wallclock/local", h.GetLocal)
	r.Put("/wallclock/local", h.SetLocal)
}

// Now godoc
// @Summary Current time
// @Description Returns the current instant in a wall-clock. Local is used when wallclock is omitted; "system" selects the process default zone.
// @Tags calendar
// @Produce json
// @Param wallclock query string false "Wall-clock name (e.g., Europe/Rome)"
// @Success 200 {object} service.Moment
// @Failure 400 {object} ErrorResponse
// @Router /now [get]
func (h *CalendarHandler) Now(w http.ResponseWriter, r *http.Request) {
	m, err := h.calendarService.Now(r.Context(), r.URL.Query().Get("wallclock"))
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, m)
}

// Parse godoc
// @Summary Parse text into a date-time
// @Description Parses ISO-8601 (default), a locale date, or a locale time of day
// @Tags calendar
// @Accept json
// @Produce json
// @Param input body service.ParseInput true "Text to parse"
// @Success 200 {object} service.ParseResult
// @Failure 400 {object} ErrorResponse
// @Router /parse [post]
func (h *CalendarHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var input service.ParseInput
	if err := decodeJSON(r, &input); err != nil {
		respondAppError(w, r, err)
		return
	}

	result, err := h.calendarService.Parse(r.Context(), input)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Make godoc
// @Summary Build a date-time from fields
// @Description Normalizes civil fields in a wall-clock, resolving DST gaps and folds by precedence
// @Tags calendar
// @Accept json
// @Produce json
// @Param input body service.MakeInput true "Civil fields"
// @Success 200 {object} service.Moment
// @Failure 400 {object} ErrorResponse
// @Router /make [post]
func (h *CalendarHandler) Make(w http.ResponseWriter, r *http.Request) {
	var input service.MakeInput
	if err := decodeJSON(r, &input); err != nil {
		respondAppError(w, r, err)
		return
	}

	m, err := h.calendarService.Make(r.Context(), input)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, m)
}

// Add godoc
// @Summary Calendar arithmetic
// @Description Adds an amount of seconds, minutes, hours, days, weeks, months or years
// @Tags calendar
// @Accept json
// @Produce json
// @Param input body service.AddInput true "Start instant, unit and amount"
// @Success 200 {object} service.Moment
// @Failure 400 {object} ErrorResponse
// @Router /add [post]
func (h *CalendarHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input service.AddInput
	if err := decodeJSON(r, &input); err != nil {
		respondAppError(w, r, err)
		return
	}

	m, err := h.calendarService.Add(r.Context(), input)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, m)
}

// Diff godoc
// @Summary Difference between two instants
// @Tags calendar
// @Accept json
// @Produce json
// @Param input body service.DiffInput true "Start and stop instants"
// @Success 200 {object} service.DiffResult
// @Failure 400 {object} ErrorResponse
// @Router /diff [post]
func (h *CalendarHandler) Diff(w http.ResponseWriter, r *http.Request) {
	var input service.DiffInput
	if err := decodeJSON(r, &input); err != nil {
		respondAppError(w, r, err)
		return
	}

	result, err := h.calendarService.Diff(r.Context(), input)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Convert godoc
// @Summary Show one instant in several wall-clocks
// @Tags calendar
// @Accept json
// @Produce json
// @Param input body service.ConvertInput true "Instant and target wall-clocks"
// @Success 200 {array} service.Conversion
// @Failure 400 {object} ErrorResponse
// @Router /convert [post]
func (h *CalendarHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var input service.ConvertInput
	if err := decodeJSON(r, &input); err != nil {
		respondAppError(w, r, err)
		return
	}

	result, err := h.calendarService.Convert(r.Context(), input)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Recurrences godoc
// @Summary Expand a cron schedule
// @Description Lists the next occurrences of a standard five-field cron expression in a wall-clock
// @Tags calendar
// @Accept json
// @Produce json
// @Param input body service.RecurrenceInput true "Schedule, start and count"
// @Success 200 {array} service.Moment
// @Failure 400 {object} ErrorResponse
// @Router /recurrences [post]
func (h *CalendarHandler) Recurrences(w http.ResponseWriter, r *http.Request) {
	var input service.RecurrenceInput
	if err := decodeJSON(r, &input); err != nil {
		respondAppError(w, r, err)
		return
	}

	result, err := h.calendarService.Recurrences(r.Context(), input)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetYear godoc
// @Summary Year calendar facts
// @Tags calendar
// @Produce json
// @Param year path int true "Year (e.g., 2026)"
// @Success 200 {object} service.YearInfo
// @Failure 400 {object} ErrorResponse
// @Router /calendar/{year} [get]
func (h *CalendarHandler) GetYear(w http.ResponseWriter, r *http.Request) {
	year, err := parseIntParam("year", chi.URLParam(r, "year"))
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	info, err := h.calendarService.YearInfo(r.Context(), year)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}

// GetMonth godoc
// @Summary Month calendar facts
// @Description Returns the month length, weekday positions and DST transition days in the Local wall-clock
// @Tags calendar
// @Produce json
// @Param year path int true "Year (e.g., 2026)"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} service.MonthInfo
// @Failure 400 {object} ErrorResponse
// @Router /calendar/{year}/{month} [get]
func (h *CalendarHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, err := parseIntParam("year", chi.URLParam(r, "year"))
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	month, err := parseIntParam("month", chi.URLParam(r, "month"))
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	info, err := h.calendarService.MonthInfo(r.Context(), year, month)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}

// GetSecondsInDay godoc
// @Summary Length of a civil day
// @Tags calendar
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param day path int true "Day of month"
// @Param wallclock query string false "Wall-clock name"
// @Success 200 {object} SecondsInDayResponse
// @Failure 400 {object} ErrorResponse
// @Router /calendar/{year}/{month}/{day}/seconds [get]
func (h *CalendarHandler) GetSecondsInDay(w http.ResponseWriter, r *http.Request) {
	year, err := parseIntParam("year", chi.URLParam(r, "year"))
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	month, err := parseIntParam("month", chi.URLParam(r, "month"))
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	day, err := parseIntParam("day", chi.URLParam(r, "day"))
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	wc := r.URL.Query().Get("wallclock")

	seconds, err := h.calendarService.SecondsInDay(r.Context(), year, month, day, wc)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, SecondsInDayResponse{
		Year:      year,
		Month:     month,
		Day:       day,
		WallClock: wc,
		Seconds:   seconds,
	})
}

// GetLocal godoc
// @Summary Current Local wall-clock
// @Tags wallclock
// @Produce json
// @Success 200 {object} service.LocalWallClock
// @Router /wallclock/local [get]
func (h *CalendarHandler) GetLocal(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.calendarService.GetLocal(r.Context()))
}

// SetLocal godoc
// @Summary Select the Local wall-clock
// @Description Changes the zone that Local resolves to for the whole process
// @Tags wallclock
// @Accept json
// @Produce json
// @Param input body SetLocalRequest true "Zone name, or \"system\""
// @Success 200 {object} service.LocalWallClock
// @Failure 400 {object} ErrorResponse
// @Router /wallclock/local [put]
func (h *CalendarHandler) SetLocal(w http.ResponseWriter, r *http.Request) {
	var req SetLocalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondAppError(w, r, err)
		return
	}

	local, err := h.calendarService.SetLocal(r.Context(), req.Name)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	logger.FromContext(r.Context()).Info("local wallclock changed", "name", local.Name)
	respondJSON(w, http.StatusOK, local)
}
