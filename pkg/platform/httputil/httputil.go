// Package httputil holds the JSON response and request helpers shared by
// every handler.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "agegate/pkg/domain-errors"
)

// WriteJSON writes response as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent, so an encoding failure cannot change the status.
	_ = json.NewEncoder(w).Encode(response)
}

// ErrorResponse is the JSON envelope for every failed request.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

type httpError struct {
	status int
	code   string
}

var domainCodes = map[dErrors.Code]httpError{
	dErrors.CodeNotFound:             {http.StatusNotFound, "not_found"},
	dErrors.CodeBadRequest:           {http.StatusBadRequest, "bad_request"},
	dErrors.CodeInvalidInput:         {http.StatusBadRequest, "bad_request"},
	dErrors.CodeValidation:           {http.StatusBadRequest, "validation_error"},
	dErrors.CodeInvalidReferenceDate: {http.StatusBadRequest, "invalid_reference_date"},
	dErrors.CodeInvalidConfiguration: {http.StatusBadRequest, "invalid_configuration"},
	dErrors.CodeTimeout:              {http.StatusGatewayTimeout, "timeout"},
}

var internalError = httpError{http.StatusInternalServerError, "internal_error"}

func lookup(code dErrors.Code) httpError {
	if he, ok := domainCodes[code]; ok {
		return he
	}
	return internalError
}

// WriteError translates err into the JSON error envelope. Messages of
// internal errors are never sent to the client.
func WriteError(w http.ResponseWriter, err error) {
	var de *dErrors.Error
	if !errors.As(err, &de) || lookup(de.Code) == internalError {
		WriteJSON(w, internalError.status, ErrorResponse{Error: internalError.code})
		return
	}
	he := lookup(de.Code)
	WriteJSON(w, he.status, ErrorResponse{Error: he.code, ErrorDescription: de.Message})
}

// DomainCodeToHTTPStatus translates domain error codes to HTTP status codes.
func DomainCodeToHTTPStatus(code dErrors.Code) int {
	return lookup(code).status
}

// DomainCodeToHTTPCode translates domain error codes to the "error" field of the envelope.
func DomainCodeToHTTPCode(code dErrors.Code) string {
	return lookup(code).code
}
