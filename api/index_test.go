package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHandlerServesRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	Handler(w, httptest.NewRequest(http.MethodGet, "/predict/restock", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "recommendations")

	// 2回目以降も同じエンジンを使う
	first := setupApp()
	w = httptest.NewRecorder()
	Handler(w, httptest.NewRequest(http.MethodPost, "/predict/disease", strings.NewReader(`{"days_ahead":7}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Same(t, first, setupApp())
}

func TestFailingApp(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := failingApp(assert.AnError)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
