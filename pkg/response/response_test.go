package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h gin.HandlerFunc) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	h(c)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestSuccess(t *testing.T) {
	w, resp := serve(t, func(c *gin.Context) {
		Success(c, gin.H{"id": "42"})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	assert.Equal(t, map[string]interface{}{"id": "42"}, resp.Data)
}

func TestCreated(t *testing.T) {
	w, resp := serve(t, func(c *gin.Context) {
		Created(c, []string{"1", "2"})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name   string
		h      gin.HandlerFunc
		status int
		code   string
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, CodeInvalidCount, "count out of range") }, http.StatusBadRequest, CodeInvalidCount},
		{"not found", func(c *gin.Context) { NotFound(c, "no such route") }, http.StatusNotFound, CodeNotFound},
		{"internal", func(c *gin.Context) { InternalError(c, "boom") }, http.StatusInternalServerError, CodeInternal},
		{"unavailable", func(c *gin.Context) { ServiceUnavailable(c, "lease lost") }, http.StatusServiceUnavailable, CodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := serve(t, tt.h)

			assert.Equal(t, tt.status, w.Code)
			assert.False(t, resp.Success)
			assert.Nil(t, resp.Data)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestError_AbortsChain(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Error(c, http.StatusTeapot, "TEAPOT", "short and stout")
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusTeapot, w.Code)
}
