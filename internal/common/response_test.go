package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorResponse(c, http.StatusBadRequest, "Invalid query", errors.New("too long"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body struct {
		Error ErrorInfo `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "BAD_REQUEST", body.Error.Code)
	assert.Equal(t, "Invalid query", body.Error.Message)
	assert.Equal(t, "too long", body.Error.Details)
}

func TestSuccessResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SuccessResponse(c, []string{"a"}, &Meta{Kind: "board", Query: "", Total: 1})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":["a"],"meta":{"kind":"board","query":"","total":1}}`, w.Body.String())
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", getErrorCode(404))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", getErrorCode(500))
	assert.Equal(t, "ERROR", getErrorCode(418))
}
