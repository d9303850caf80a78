package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/metrics"
	"github.com/osse101/foundry90/internal/progress"
)

// ProgressHandler serves the day advancement endpoints
type ProgressHandler struct {
	service progress.Service
}

// NewProgressHandler creates a progress handler
func NewProgressHandler(service progress.Service) *ProgressHandler {
	return &ProgressHandler{service: service}
}

// DayContentRequest is the body shared by complete and draft
type DayContentRequest struct {
	Day           int               `json:"day" validate:"required,min=1"`
	Notes         *string           `json:"notes,omitempty" validate:"omitempty,max=20000"`
	Reflections   *string           `json:"reflections,omitempty" validate:"omitempty,max=20000"`
	StepResponses map[string]string `json:"step_responses,omitempty" validate:"omitempty,max=50,dive,keys,min=1,max=100,endkeys,max=5000"`
}

func (r DayContentRequest) content() domain.DraftInput {
	return domain.DraftInput{Notes: r.Notes, Reflections: r.Reflections, StepResponses: r.StepResponses}
}

// EndDayRequest optionally requests a specific unlock time
type EndDayRequest struct {
	CustomUnlockTime *time.Time `json:"custom_unlock_time,omitempty"`
}

// StartJourneyResponse wraps the progress record with whether it was created
type StartJourneyResponse struct {
	Progress *domain.Progress `json:"progress"`
	Created  bool             `json:"created"`
}

// HandleStartJourney creates the caller's progress record on day one
// @Summary Start journey
// @Description Creates the caller's progress record. Idempotent.
// @Tags progress
// @Produce json
// @Param X-User-ID header string true "User UUID"
// @Success 201 {object} StartJourneyResponse
// @Success 200 {object} StartJourneyResponse
// @Router /api/v1/progress/start [post]
func (h *ProgressHandler) HandleStartJourney(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}
	p, created, err := h.service.StartJourney(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Start journey", err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondJSON(w, status, StartJourneyResponse{Progress: p, Created: created})
}

// HandleCompleteDay marks a day complete
// @Summary Complete day
// @Description Completes the given day, recomputes streaks and schedules the next unlock
// @Tags progress
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User UUID"
// @Param request body DayContentRequest true "Day and optional content"
// @Success 200 {object} domain.CompleteDayResult
// @Failure 400 {object} FutureDayResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} LockedResponse
// @Router /api/v1/progress/complete [post]
func (h *ProgressHandler) HandleCompleteDay(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}
	var req DayContentRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Complete day"); err != nil {
		return
	}

	res, err := h.service.CompleteDay(r.Context(), userID, req.Day, req.content())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFutureDay):
			metrics.RecordCompletionRejected(metrics.ReasonFutureDay)
		case errors.Is(err, domain.ErrDayLocked):
			metrics.RecordCompletionRejected(metrics.ReasonLocked)
		}
		respondServiceError(w, r, "Complete day", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleEndDay sets the next unlock time early
// @Summary End day
// @Description Schedules the next unlock now + default delay, or at a custom time no sooner than the minimum rest period
// @Tags progress
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User UUID"
// @Param request body EndDayRequest false "Optional custom unlock time"
// @Success 200 {object} domain.EndDayResult
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/progress/end-day [post]
func (h *ProgressHandler) HandleEndDay(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}
	var req EndDayRequest
	if err := DecodeOptionalRequest(r, w, &req, "End day"); err != nil {
		return
	}

	res, err := h.service.EndDay(r.Context(), userID, req.CustomUnlockTime)
	if err != nil {
		respondServiceError(w, r, "End day", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleCanAdvance reports whether the next day is open
// @Summary Can advance
// @Tags progress
// @Produce json
// @Param X-User-ID header string true "User UUID"
// @Success 200 {object} domain.AdvanceStatus
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/progress/can-advance [get]
func (h *ProgressHandler) HandleCanAdvance(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}
	status, err := h.service.CanAdvance(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Can advance", err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}

// HandleSaveDraft stores day content without completing it
// @Summary Save draft
// @Tags progress
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User UUID"
// @Param request body DayContentRequest true "Draft content"
// @Success 200 {object} domain.Completion
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/progress/draft [post]
func (h *ProgressHandler) HandleSaveDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}
	var req DayContentRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Save draft"); err != nil {
		return
	}

	c, err := h.service.SaveDraft(r.Context(), userID, req.Day, req.content())
	if err != nil {
		respondServiceError(w, r, "Save draft", err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// HandleGetProgress returns the caller's progress, completions and achievements
// @Summary Get progress
// @Tags progress
// @Produce json
// @Param X-User-ID header string true "User UUID"
// @Success 200 {object} domain.ProgressView
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/progress [get]
func (h *ProgressHandler) HandleGetProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}
	view, err := h.service.GetProgress(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get progress", err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// HandleGetDay returns one day's record
// @Summary Get day
// @Tags progress
// @Produce json
// @Param X-User-ID header string true "User UUID"
// @Param day path int true "Day number"
// @Success 200 {object} domain.Completion
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/progress/days/{day} [get]
func (h *ProgressHandler) HandleGetDay(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}
	day, err := strconv.Atoi(chi.URLParam(r, URLParamDay))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidDayParam)
		return
	}

	c, err := h.service.GetDay(r.Context(), userID, day)
	if err != nil {
		respondServiceError(w, r, "Get day", err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// HandleGetAchievements returns the catalog with the caller's unlock state
// @Summary List achievements
// @Tags achievements
// @Produce json
// @Param X-User-ID header string true "User UUID"
// @Success 200 {array} domain.AchievementStatus
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/achievements [get]
func (h *ProgressHandler) HandleGetAchievements(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}
	statuses, err := h.service.GetAchievements(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get achievements", err)
		return
	}
	respondJSON(w, http.StatusOK, statuses)
}
