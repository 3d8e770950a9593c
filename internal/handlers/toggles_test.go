package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/omnibar/internal/handlers"
	"github.com/jonesrussell/omnibar/internal/settings"
	"github.com/jonesrussell/omnibar/internal/suggest"
	"github.com/jonesrussell/omnibar/internal/testhelpers"
)

func setupToggleRouter(t *testing.T) (*gin.Engine, *settings.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := settings.NewMemory()
	handler := handlers.NewToggleHandler(store, testhelpers.NewTestLogger())

	router := gin.New()
	router.GET("/toggles/:name", handler.Get)
	router.PUT("/toggles/:name", handler.Set)
	return router, store
}

func TestToggleHandler(t *testing.T) {
	t.Run("unset toggle reads as enabled", func(t *testing.T) {
		router, _ := setupToggleRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/toggles/"+suggest.TopDomainsToggle, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Enabled bool `json:"enabled"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Enabled)
	})

	t.Run("set persists the flag", func(t *testing.T) {
		router, store := setupToggleRouter(t)

		payload, _ := json.Marshal(gin.H{"enabled": false})
		req := httptest.NewRequest(http.MethodPut, "/toggles/"+suggest.CustomDomainsToggle, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		on, err := store.Toggle(context.Background(), suggest.CustomDomainsToggle)
		require.NoError(t, err)
		assert.False(t, on)
	})

	t.Run("unknown toggle is not found", func(t *testing.T) {
		router, _ := setupToggleRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/toggles/bogus", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
