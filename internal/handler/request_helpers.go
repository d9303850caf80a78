package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/osse101/foundry90/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If this function returns an error, the HTTP response has already been
// written and the handler should return.
//
//	var req CompleteDayRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Complete day"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	return decodeAndValidate(r, w, req, actionName, false)
}

// DecodeOptionalRequest is DecodeAndValidateRequest for endpoints whose body
// may be omitted. An empty body, chunked or not, leaves req at its zero value.
func DecodeOptionalRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	return decodeAndValidate(r, w, req, actionName, true)
}

func decodeAndValidate(r *http.Request, w http.ResponseWriter, req interface{}, actionName string, optional bool) error {
	log := logger.FromContext(r.Context())

	if r.Body == nil || r.Body == http.NoBody {
		if optional {
			return nil
		}
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return io.EOF
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return nil
		}
		log.Warn(LogMsgDecodeRequestFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgValidationSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// RequireUserID reads the caller identity set by the gateway. Missing is
// 401, malformed is 400. When ok is false the response has been written.
func RequireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := r.Header.Get(HeaderUserID)
	if raw == "" {
		respondError(w, http.StatusUnauthorized, ErrMsgMissingUserID)
		return "", false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidUserIDError)
		return "", false
	}
	return id.String(), true
}

// RequireUserIDQuery reads a target user id from the query string (admin routes)
func RequireUserIDQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw, ok := GetQueryParam(r, w, QueryParamUserID)
	if !ok {
		return "", false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidUserIDError)
		return "", false
	}
	return id.String(), true
}

// GetQueryParam retrieves a required query parameter. If ok is false the
// HTTP response has already been written.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter with a default
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseLimit reads an optional non-negative limit; zero lets the service pick
// its default
func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := GetOptionalQueryParam(r, QueryParamLimit, "0")
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return 0, false
	}
	return limit, true
}
