package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// LockedResponse is returned with 429 when the next day has not unlocked yet
type LockedResponse struct {
	Error           string    `json:"error"`
	HoursLeft       int       `json:"hours_left"`
	TimeLeftSeconds int64     `json:"time_left_seconds"`
	NextUnlockTime  time.Time `json:"next_unlock_time"`
}

// FutureDayResponse is returned with 400 when a day past the current one is requested
type FutureDayResponse struct {
	Error        string `json:"error"`
	RequestedDay int    `json:"requested_day"`
	CurrentDay   int    `json:"current_day"`
}

// InsufficientFundsResponse is returned with 400 when a spend exceeds the balance
type InsufficientFundsResponse struct {
	Error     string           `json:"error"`
	TokenType domain.TokenType `json:"token_type"`
	Balance   int              `json:"balance"`
	Requested int              `json:"requested"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error(LogMsgEncodeResponseFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(LogMsgWriteResponseFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and renders it. Policy
// rejections carry their context in the body.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())

	var locked domain.LockedError
	var future domain.FutureDayError
	var funds domain.InsufficientFundsError
	switch {
	case errors.As(err, &locked):
		log.Info(opName+LogMsgRejectedSuffix, "reason", "locked", "hours_left", locked.HoursLeft)
		respondJSON(w, http.StatusTooManyRequests, LockedResponse{
			Error:           ErrMsgDayLockedError,
			HoursLeft:       locked.HoursLeft,
			TimeLeftSeconds: int64(locked.Remaining / time.Second),
			NextUnlockTime:  locked.NextUnlockTime,
		})
		return
	case errors.As(err, &future):
		log.Info(opName+LogMsgRejectedSuffix, "reason", "future_day",
			"requested_day", future.RequestedDay, "current_day", future.CurrentDay)
		respondJSON(w, http.StatusBadRequest, FutureDayResponse{
			Error:        ErrMsgFutureDayError,
			RequestedDay: future.RequestedDay,
			CurrentDay:   future.CurrentDay,
		})
		return
	case errors.As(err, &funds):
		log.Info(opName+LogMsgRejectedSuffix, "reason", "insufficient_funds",
			"token_type", funds.TokenType, "balance", funds.Balance, "requested", funds.Requested)
		respondJSON(w, http.StatusBadRequest, InsufficientFundsResponse{
			Error:     ErrMsgInsufficientFundsError,
			TokenType: funds.TokenType,
			Balance:   funds.Balance,
			Requested: funds.Requested,
		})
		return
	}

	status, msg := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+LogMsgFailedSuffix, "error", err)
	} else {
		log.Warn(opName+LogMsgFailedSuffix, "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrProgressNotFound):
		return http.StatusNotFound, ErrMsgProgressNotFoundError
	case errors.Is(err, domain.ErrCompletionNotFound):
		return http.StatusNotFound, ErrMsgCompletionNotFoundError
	case errors.Is(err, domain.ErrFutureDay):
		return http.StatusBadRequest, ErrMsgFutureDayError
	case errors.Is(err, domain.ErrDayLocked):
		return http.StatusTooManyRequests, ErrMsgDayLockedError
	case errors.Is(err, domain.ErrDayOutOfRange):
		return http.StatusBadRequest, ErrMsgDayOutOfRangeError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgInsufficientFundsError
	case errors.Is(err, domain.ErrInvalidTokenType):
		return http.StatusBadRequest, ErrMsgInvalidTokenTypeError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrBalanceLimit):
		return http.StatusBadRequest, ErrMsgBalanceLimitError
	case errors.Is(err, domain.ErrInvalidUserID):
		return http.StatusBadRequest, ErrMsgInvalidUserIDError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
