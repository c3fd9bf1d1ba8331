package newsapi

import (
	"errors"
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"
)

func Test_error_001(t *testing.T) {
	assert := assert.New(t)

	// Known code maps 1:1
	response := classifyResponse(400, []byte(`{"status":"error","code":"apiKeyInvalid","message":"m"}`))
	assert.Equal("error", response.Status)
	assert.Equal(CodeApiKeyInvalid, response.Code)
	assert.Equal("m", response.Message)
	assert.ErrorIs(response, ErrInvalidResponse)
}

func Test_error_002(t *testing.T) {
	assert := assert.New(t)

	// Parsed body with an unrecognized code falls back on the status code
	response := classifyResponse(429, []byte(`{"status":"error","code":"somethingElse"}`))
	assert.Equal(CodeRateLimited, response.Code)
	assert.Equal("Unknown error", response.Message)

	response = classifyResponse(500, []byte(`{"status":"error"}`))
	assert.Equal(CodeUnexpectedError, response.Code)
}

func Test_error_003(t *testing.T) {
	assert := assert.New(t)

	// Unparseable body falls back on the status code
	response := classifyResponse(429, []byte(`<html>busy</html>`))
	assert.Equal("error", response.Status)
	assert.Equal(CodeRateLimited, response.Code)
	assert.Equal("Failed to parse error response", response.Message)

	response = classifyResponse(500, []byte(`not json`))
	assert.Equal(CodeUnexpectedError, response.Code)
}

func Test_error_004(t *testing.T) {
	assert := assert.New(t)

	// Rate-limit phrases in an unparseable body produce a clearer message
	response := classifyResponse(429, []byte(`you have made too many requests today`))
	assert.Equal(CodeRateLimited, response.Code)
	assert.Equal("You have made too many requests. Rate limit exceeded.", response.Message)

	response = classifyResponse(503, []byte(`rate limit reached`))
	assert.Equal(CodeUnexpectedError, response.Code)
	assert.Equal("You have made too many requests. Rate limit exceeded.", response.Message)
}

func Test_error_005(t *testing.T) {
	assert := assert.New(t)

	// Every wire code round-trips through the lookup tables
	for wire, code := range errCodes {
		parsed, ok := ParseErrCode(wire)
		assert.True(ok)
		assert.Equal(code, parsed)
		assert.Equal(wire, parsed.String())
	}
	_, ok := ParseErrCode("unknownCode")
	assert.False(ok)
	_, ok = ParseErrCode("")
	assert.False(ok)
}

func Test_error_006(t *testing.T) {
	assert := assert.New(t)

	// Enum errors wrap for errors.Is matching
	err := ErrInvalidRequest.With("missing field")
	assert.True(errors.Is(err, ErrInvalidRequest))
	assert.Equal("invalid request: missing field", err.Error())

	err = ErrTransport.Withf("dial tcp: %s", "refused")
	assert.True(errors.Is(err, ErrTransport))
	assert.Equal("transport failure: dial tcp: refused", err.Error())
}
