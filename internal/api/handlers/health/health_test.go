package health

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"recipe-recommender/internal/core/favorites"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := favorites.OpenDatabase(filepath.Join(t.TempDir(), "favorites.sqlite"))
	require.NoError(t, err)

	r := gin.New()
	r.GET("/health", HealthCheck)
	r.GET("/ready", ReadinessCheck(db))
	r.GET("/live", LivenessCheck)

	cases := map[string]string{
		"/health": `{"status":"ok"}`,
		"/ready":  `{"status":"ready"}`,
		"/live":   `{"status":"alive"}`,
	}
	for path, want := range cases {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, want, w.Body.String())
		})
	}
}

func TestReadinessReportsClosedDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := favorites.OpenDatabase(filepath.Join(t.TempDir(), "favorites.sqlite"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	r := gin.New()
	r.GET("/ready", ReadinessCheck(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
