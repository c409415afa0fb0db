package googleplaces

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/places-sync/internal/config"
	"github.com/places-sync/internal/domain"
)

func newTestClient(t *testing.T, baseURL string) *client {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	cfg := &config.GoogleConfig{
		APIKey:         "test_key",
		BaseURL:        baseURL,
		LegacyBaseURL:  baseURL,
		RequestTimeout: 5,
	}
	return NewGooglePlacesClient(cfg, logger).(*client)
}

func TestClient_Search(t *testing.T) {
	t.Run("text query uses searchText endpoint", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"places": []map[string]interface{}{
					{"id": "abc123", "displayName": map[string]string{"text": "Example Cafe"}},
				},
			})
		}))
		defer server.Close()

		c := newTestClient(t, server.URL)
		outcome := c.Search(context.Background(), "Example Cafe")

		require.True(t, outcome.Success)
		assert.Equal(t, "/v1/places:searchText", gotPath)
		assert.Equal(t, "Example Cafe", gotBody["textQuery"])
		require.Len(t, outcome.Data, 1)
		assert.Equal(t, "abc123", outcome.Data[0].PlaceID)
		assert.Equal(t, "Example Cafe", outcome.Data[0].DisplayName)
	})

	t.Run("phone number uses legacy findplacefromtext", func(t *testing.T) {
		var gotPath, gotInputType string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotInputType = r.URL.Query().Get("inputtype")
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"candidates": []map[string]interface{}{
					{"place_id": "phone42"},
				},
			})
		}))
		defer server.Close()

		c := newTestClient(t, server.URL)
		outcome := c.Search(context.Background(), "+61249291154")

		require.True(t, outcome.Success)
		assert.Equal(t, "/place/findplacefromtext/json", gotPath)
		assert.Equal(t, "phonenumber", gotInputType)
		require.Len(t, outcome.Data, 1)
		assert.Equal(t, "phone42", outcome.Data[0].PlaceID)
	})

	t.Run("short plus-prefixed input is treated as text", func(t *testing.T) {
		var gotPath string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"places": []interface{}{}})
		}))
		defer server.Close()

		c := newTestClient(t, server.URL)
		outcome := c.Search(context.Background(), "+cafe")

		require.True(t, outcome.Success)
		assert.Equal(t, "/v1/places:searchText", gotPath)
		assert.Empty(t, outcome.Data)
	})

	t.Run("non-200 status yields failure outcome", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		c := newTestClient(t, server.URL)
		outcome := c.Search(context.Background(), "Example Cafe")

		assert.False(t, outcome.Success)
		assert.Contains(t, outcome.Error, "403")
	})

	t.Run("missing api key fails without network call", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		logger, _ := zap.NewDevelopment()
		c := NewGooglePlacesClient(&config.GoogleConfig{
			BaseURL:        server.URL,
			LegacyBaseURL:  server.URL,
			RequestTimeout: 5,
		}, logger)

		outcome := c.Search(context.Background(), "Example Cafe")

		assert.False(t, outcome.Success)
		assert.Equal(t, "Server Error", outcome.Error)
		assert.False(t, called)
	})
}

func TestClient_Details(t *testing.T) {
	t.Run("requests fixed field mask and tags v1 schema", func(t *testing.T) {
		var gotFields, gotPath string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotFields = r.URL.Query().Get("fields")
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"id":          "abc123",
				"displayName": map[string]string{"text": "Example Cafe"},
			})
		}))
		defer server.Close()

		c := newTestClient(t, server.URL)
		outcome := c.Details(context.Background(), "abc123")

		require.True(t, outcome.Success)
		assert.Equal(t, "/v1/places/abc123", gotPath)
		assert.Equal(t, detailFieldMask(), gotFields)
		assert.Equal(t, domain.SchemaV1, outcome.Data.Schema)
		assert.Equal(t, "abc123", outcome.Data.Payload["id"])
	})

	t.Run("transport error yields failure outcome", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // сервер уже закрыт - соединение не установится

		c := newTestClient(t, server.URL)
		outcome := c.Details(context.Background(), "abc123")

		assert.False(t, outcome.Success)
		assert.NotEmpty(t, outcome.Error)
	})

	t.Run("missing api key fails without network call", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		c := NewGooglePlacesClient(&config.GoogleConfig{RequestTimeout: 5}, logger)

		outcome := c.Details(context.Background(), "abc123")

		assert.False(t, outcome.Success)
		assert.Equal(t, "Server Error", outcome.Error)
	})
}

func TestIsPhoneNumber(t *testing.T) {
	assert.True(t, isPhoneNumber("+61249291154"))
	assert.False(t, isPhoneNumber("61249291154"))
	assert.False(t, isPhoneNumber("+612"))
	assert.False(t, isPhoneNumber("Example Cafe"))
}
