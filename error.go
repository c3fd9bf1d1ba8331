package newsapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrTransport
	ErrInvalidRequest
	ErrInvalidResponse
	ErrInvalidHeader
	ErrConflictingFilters
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

// ErrCode is the closed set of error codes returned by the API
type ErrCode string

// ErrorResponse is a classified API error, produced from a non-2xx response
type ErrorResponse struct {
	Status  string  `json:"status"`
	Code    ErrCode `json:"code,omitempty"`
	Message string  `json:"message,omitempty"`
}

const (
	CodeApiKeyDisabled     ErrCode = "apiKeyDisabled"
	CodeApiKeyExhausted    ErrCode = "apiKeyExhausted"
	CodeApiKeyInvalid      ErrCode = "apiKeyInvalid"
	CodeApiKeyMissing      ErrCode = "apiKeyMissing"
	CodeParameterInvalid   ErrCode = "parameterInvalid"
	CodeParametersMissing  ErrCode = "parametersMissing"
	CodeRateLimited        ErrCode = "rateLimited"
	CodeSourcesTooMany     ErrCode = "sourcesTooMany"
	CodeSourceDoesNotExist ErrCode = "sourceDoesNotExist"
	CodeUnexpectedError    ErrCode = "unexpectedError"
)

var errCodes = map[string]ErrCode{
	"apiKeyDisabled":     CodeApiKeyDisabled,
	"apiKeyExhausted":    CodeApiKeyExhausted,
	"apiKeyInvalid":      CodeApiKeyInvalid,
	"apiKeyMissing":      CodeApiKeyMissing,
	"parameterInvalid":   CodeParameterInvalid,
	"parametersMissing":  CodeParametersMissing,
	"rateLimited":        CodeRateLimited,
	"sourcesTooMany":     CodeSourcesTooMany,
	"sourceDoesNotExist": CodeSourceDoesNotExist,
	"unexpectedError":    CodeUnexpectedError,
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrTransport:
		return "transport failure"
	case ErrInvalidRequest:
		return "invalid request"
	case ErrInvalidResponse:
		return "invalid response"
	case ErrInvalidHeader:
		return "invalid header value"
	case ErrConflictingFilters:
		return "conflicting filters"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

// ParseErrCode returns the error code for a wire string, and whether
// the string is one of the recognized codes
func ParseErrCode(v string) (ErrCode, bool) {
	code, ok := errCodes[v]
	return code, ok
}

func (c ErrCode) String() string {
	return string(c)
}

func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("%v: status=%s, code=%s, message=%s", ErrInvalidResponse, e.Status, e.Code, e.Message)
}

func (e *ErrorResponse) Unwrap() error {
	return ErrInvalidResponse
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// classifyResponse turns a non-2xx response into an ErrorResponse. It never
// fails: an unparseable body is itself classified, using the status code and a
// scan of the raw body for rate-limit phrases.
func classifyResponse(status int, body []byte) *ErrorResponse {
	var response ErrorResponse
	if err := json.Unmarshal(body, &response); err == nil && response.Status != "" {
		if code, ok := ParseErrCode(string(response.Code)); ok {
			response.Code = code
		} else {
			response.Code = fallbackCode(status)
		}
		if response.Message == "" {
			response.Message = "Unknown error"
		}
		return &response
	}

	message := "Failed to parse error response"
	if bytes.Contains(body, []byte("too many requests")) || bytes.Contains(body, []byte("rate limit")) {
		message = "You have made too many requests. Rate limit exceeded."
	}
	return &ErrorResponse{
		Status:  "error",
		Code:    fallbackCode(status),
		Message: message,
	}
}

// When the body carries no recognized code, a 429 is a rate limit and
// anything else is unexpected.
func fallbackCode(status int) ErrCode {
	if status == 429 {
		return CodeRateLimited
	}
	return CodeUnexpectedError
}
