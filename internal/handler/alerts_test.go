package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safety-hub-go/internal/upstream"
)

func alertsRouter(upstreamURL string) *gin.Engine {
	client := upstream.NewNWSClient(upstreamURL, testFetcher())
	router := gin.New()
	router.GET("/api/alerts", NewAlertHandler(client).GetAlerts)
	return router
}

func TestGetAlerts_MissingParams(t *testing.T) {
	router := alertsRouter("http://unused")

	for _, path := range []string{"/api/alerts", "/api/alerts?lat=33.45", "/api/alerts?lon=-112.07"} {
		w := doGet(router, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestGetAlerts_UpstreamDownIsStillOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := doGet(alertsRouter(srv.URL), "/api/alerts?lat=33.45&lon=-112.07")

	// Never a 502 here: a dead alerting service reads as zero alerts.
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, []any{}, body["alerts"])
	assert.Equal(t, "NWS", body["source"])
	assert.NotContains(t, body, "note")
}

func TestGetAlerts_MalformedUpstreamIsStillOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	w := doGet(alertsRouter(srv.URL), "/api/alerts?lat=33.45&lon=-112.07")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, decodeBody(t, w)["alerts"])
}

func TestGetAlerts_ProjectsFeatures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"features":[{"id":"a1","properties":{"event":"Flood Warning","severity":"Severe"}}]}`))
	}))
	defer srv.Close()

	w := doGet(alertsRouter(srv.URL), "/api/alerts?lat=33.45&lon=-112.07")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	alerts, isSlice := body["alerts"].([]any)
	require.True(t, isSlice)
	require.Len(t, alerts, 1)

	alert := alerts[0].(map[string]any)
	assert.Equal(t, "a1", alert["id"])
	assert.Equal(t, "Flood Warning", alert["event"])
	assert.Equal(t, "Severe", alert["severity"])
	// Omitted upstream fields surface as nulls, not missing keys.
	require.Contains(t, alert, "headline")
	assert.Nil(t, alert["headline"])
}
