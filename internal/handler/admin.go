package handler

import (
	"net/http"
	"time"

	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/eventlog"
	"github.com/osse101/foundry90/internal/ledger"
	"github.com/osse101/foundry90/internal/progress"
)

// AdminHandler serves support tooling
type AdminHandler struct {
	progress progress.Service
	ledger   ledger.Service
	events   eventlog.Service
}

// NewAdminHandler creates an admin handler. A nil event log service disables
// the events endpoint.
func NewAdminHandler(progressService progress.Service, ledgerService ledger.Service, eventService eventlog.Service) *AdminHandler {
	return &AdminHandler{progress: progressService, ledger: ledgerService, events: eventService}
}

// ClearLockResponse returns the record after the lock was removed
type ClearLockResponse struct {
	Message  string           `json:"message"`
	Progress *domain.Progress `json:"progress"`
}

// EventsResponse wraps audit log entries
type EventsResponse struct {
	Events []eventlog.Event `json:"events"`
}

// HandleClearLock removes a user's pending unlock time
// @Summary Clear unlock lock
// @Tags admin
// @Produce json
// @Param user_id query string true "User UUID"
// @Success 200 {object} ClearLockResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/progress/clear-lock [post]
func (h *AdminHandler) HandleClearLock(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserIDQuery(w, r)
	if !ok {
		return
	}
	p, err := h.progress.ClearLock(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Clear lock", err)
		return
	}
	respondJSON(w, http.StatusOK, ClearLockResponse{Message: MsgLockCleared, Progress: p})
}

// HandleVerifyBalances reconciles stored balances against the ledger
// @Summary Verify balances
// @Tags admin
// @Produce json
// @Param user_id query string true "User UUID"
// @Success 200 {object} domain.BalanceReport
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/tokens/verify [get]
func (h *AdminHandler) HandleVerifyBalances(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserIDQuery(w, r)
	if !ok {
		return
	}
	report, err := h.ledger.VerifyBalances(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Verify balances", err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// HandleGetEvents queries the audit log
// @Summary Query events
// @Tags admin
// @Produce json
// @Param user_id query string false "User UUID"
// @Param type query string false "Event type"
// @Param since query string false "RFC3339 lower bound"
// @Param limit query int false "Maximum entries (default 100, max 1000)"
// @Success 200 {object} EventsResponse
// @Router /api/v1/admin/events [get]
func (h *AdminHandler) HandleGetEvents(w http.ResponseWriter, r *http.Request) {
	if h.events == nil {
		respondError(w, http.StatusNotFound, ErrMsgEventLogDisabled)
		return
	}

	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	filter := eventlog.EventFilter{Limit: limit}
	if uid := r.URL.Query().Get(QueryParamUserID); uid != "" {
		filter.UserID = &uid
	}
	if t := r.URL.Query().Get(QueryParamEventType); t != "" {
		filter.EventType = &t
	}
	if s := r.URL.Query().Get(QueryParamSince); s != "" {
		since, err := time.Parse(time.RFC3339, s)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidSince)
			return
		}
		filter.Since = &since
	}

	events, err := h.events.GetEvents(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, "Get events", err)
		return
	}
	respondJSON(w, http.StatusOK, EventsResponse{Events: events})
}
