package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	apperrors "misteri/pkg/errors"
)

type ErrorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

type SuccessResponse struct {
	Data any `json:"data"`
}

type ListResponse struct {
	Data  any `json:"data"`
	Count int `json:"count"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func WriteError(w http.ResponseWriter, err error) error {
	statusCode, errResp := errorResponse(err)
	return WriteJSON(w, statusCode, errResp)
}

func errorResponse(err error) (int, ErrorResponse) {
	if !apperrors.IsAppError(err) {
		return http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Code: apperrors.CodeInternal}
	}
	appErr := apperrors.AsAppError(err)

	var statusCode int
	switch appErr.Code {
	case apperrors.CodeInvalidInput, apperrors.CodeBadRequest:
		statusCode = http.StatusBadRequest
	case apperrors.CodeNotFound:
		statusCode = http.StatusNotFound
	case apperrors.CodeValidation:
		statusCode = http.StatusUnprocessableEntity
	case apperrors.CodeUpstream:
		statusCode = http.StatusBadGateway
	case apperrors.CodeTimeout:
		statusCode = http.StatusGatewayTimeout
	case apperrors.CodeUnavailable:
		statusCode = http.StatusServiceUnavailable
	default:
		statusCode = http.StatusInternalServerError
	}

	resp := ErrorResponse{Error: appErr.Message, Code: appErr.Code, Details: appErr.Details}
	if statusCode == http.StatusInternalServerError {
		resp.Error = "Internal server error"
	}
	return statusCode, resp
}

func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, SuccessResponse{Data: data})
}

// WriteList writes a slice with its length. A nil slice is written as [].
func WriteList[T any](w http.ResponseWriter, items []T) error {
	if items == nil {
		items = []T{}
	}
	return WriteJSON(w, http.StatusOK, ListResponse{Data: items, Count: len(items)})
}

// QueryInt reads an optional integer query parameter. A missing parameter
// returns fallback.
func QueryInt(r *http.Request, name string, fallback int) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperrors.InvalidInput("invalid " + name + " parameter: " + s)
	}
	return v, nil
}
