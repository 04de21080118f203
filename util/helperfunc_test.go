package util

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func runHandler(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	handler(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var response APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestCallSuccessOK(t *testing.T) {
	w := runHandler(func(c *gin.Context) {
		CallSuccessOK(c, APISuccessParams{Msg: "done", Data: []string{"a", "b"}})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	response := decode(t, w)
	assert.True(t, response.Success)
	assert.Equal(t, "done", response.Msg)
	assert.Empty(t, response.Error)
}

func TestCallUserError(t *testing.T) {
	w := runHandler(func(c *gin.Context) {
		CallUserError(c, APIErrorParams{Msg: "bad input", Err: fmt.Errorf("field missing")})
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decode(t, w)
	assert.False(t, response.Success)
	assert.Equal(t, "bad input", response.Msg)
	assert.Equal(t, "field missing", response.Error)
}

func TestCallServerError(t *testing.T) {
	w := runHandler(func(c *gin.Context) {
		CallServerError(c, APIErrorParams{Msg: "boom", Err: fmt.Errorf("db down")})
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	response := decode(t, w)
	assert.False(t, response.Success)
}

func TestCallErrorNotFound(t *testing.T) {
	w := runHandler(func(c *gin.Context) {
		CallErrorNotFound(c, APIErrorParams{Msg: "missing", Err: fmt.Errorf("no row")})
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContains(t *testing.T) {
	list := []string{"a", "b", "c"}
	assert.True(t, Contains("b", list))
	assert.False(t, Contains("d", list))
	assert.False(t, Contains("a", nil))
}

func TestLogSingleton(t *testing.T) {
	first := Log()
	second := Log()
	assert.NotNil(t, first)
	assert.Same(t, first, second)
}
