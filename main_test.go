package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mrfixit/internal/config"
)

func testConfig(t *testing.T, driver string) *config.Config {
	t.Helper()
	v := viper.New()
	v.Set("DATABASE_DRIVER", driver)
	v.Set("DATABASE_DSN", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	cfg, err := config.Load(v)
	require.NoError(t, err)
	return cfg
}

func TestServer_HealthAndProducts(t *testing.T) {
	for _, driver := range []string{"memory", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			srv, err := newServer(testConfig(t, driver), zap.NewNop())
			require.NoError(t, err)
			srv.start()
			defer srv.close()

			resp, err := srv.app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			var health map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
			resp.Body.Close()
			assert.Equal(t, "healthy", health["status"])
			assert.Equal(t, driver, health["database"])
			assert.Equal(t, "disabled", health["rabbitmq"])

			resp, err = srv.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/products?category=tools", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			var page struct {
				Items      []map[string]interface{} `json:"items"`
				TotalItems int                      `json:"total_items"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
			resp.Body.Close()
			assert.Equal(t, 3, page.TotalItems)
		})
	}
}

func TestServer_SeedIsIdempotent(t *testing.T) {
	cfg := testConfig(t, "sqlite")

	first, err := newServer(cfg, zap.NewNop())
	require.NoError(t, err)
	defer first.close()

	// A second server on the same shared in-memory database must not
	// duplicate the seeded catalog.
	second, err := newServer(cfg, zap.NewNop())
	require.NoError(t, err)
	defer second.close()

	resp, err := second.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/products?limit=50", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var page struct {
		TotalItems int `json:"total_items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, 12, page.TotalItems)
}

func TestServer_CloseStopsAutoplay(t *testing.T) {
	srv, err := newServer(testConfig(t, "memory"), zap.NewNop())
	require.NoError(t, err)
	srv.start()
	require.True(t, srv.rotator.Armed())

	assert.NoError(t, srv.close())
	assert.False(t, srv.rotator.Armed())
}
