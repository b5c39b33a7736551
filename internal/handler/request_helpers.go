package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/osse101/MuForge_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written and the
// handler should return.
//
// Example usage:
//
//	var req ShopBuyRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Shop buy"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf(LogMsgDecodeFailedFmt, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf(LogMsgRequestDecodedFmt, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetQueryParam retrieves a required query parameter. If it is missing or
// empty an error response is written and ok is false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf(LogMsgMissingQueryFmt, paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetIntQueryParam retrieves an integer query parameter. A missing parameter
// yields defaultValue when one is given; otherwise it is an error like a
// malformed value. On error the response has already been written.
func GetIntQueryParam(r *http.Request, w http.ResponseWriter, paramName string, defaultValue *int) (int, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		if defaultValue != nil {
			return *defaultValue, true
		}
		logger.FromContext(r.Context()).Warn(fmt.Sprintf(LogMsgMissingQueryFmt, paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return 0, false
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf(LogMsgInvalidQueryFmt, paramName), "value", raw)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName))
		return 0, false
	}
	return value, true
}

// LogRequestFields logs common request fields in a structured way.
//
// Example usage:
//
//	LogRequestFields(log, "session_id", req.SessionID, "item", req.ItemName)
func LogRequestFields(log *slog.Logger, keyvals ...interface{}) {
	if len(keyvals)%2 != 0 {
		log.Warn(LogMsgOddLogRequestFields)
		return
	}
	log.Debug(LogMsgRequestDetails, keyvals...)
}
