package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crimeRouter() *gin.Engine {
	router := gin.New()
	router.GET("/api/crime", NewCrimeHandler(testLogger()).GetCrime)
	return router
}

func TestGetCrime_MissingParams(t *testing.T) {
	router := crimeRouter()

	for _, path := range []string{"/api/crime", "/api/crime?lat=28.0", "/api/crime?lon=-82.0"} {
		w := doGet(router, path)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Contains(t, decodeBody(t, w), "error", path)
	}
}

func TestGetCrime_NonNumericParams(t *testing.T) {
	w := doGet(crimeRouter(), "/api/crime?lat=north&lon=west")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w), "error")
}

func TestGetCrime_StateScoped(t *testing.T) {
	// Tampa resolves to FL; stats must equal the FL table entry exactly.
	w := doGet(crimeRouter(), "/api/crime?lat=28.0&lon=-82.0")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "state", body["scope"])
	assert.Equal(t, "mock", body["source"])
	assert.Equal(t, "FL", body["state"])

	stats, isMap := body["stats"].(map[string]any)
	require.True(t, isMap)
	assert.Equal(t, float64(7), stats["homicide"])
	assert.Equal(t, float64(337), stats["violent_crime"])
	assert.Equal(t, float64(1480), stats["property_crime"])
	assert.NotContains(t, stats, "year")
}

func TestGetCrime_DemoFallback(t *testing.T) {
	w := doGet(crimeRouter(), "/api/crime?lat=0&lon=0")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "demo", body["scope"])
	assert.Equal(t, "demo", body["source"])
	require.Contains(t, body, "state")
	assert.Nil(t, body["state"])

	stats, isMap := body["stats"].(map[string]any)
	require.True(t, isMap)
	assert.Equal(t, float64(2023), stats["year"])
	assert.Equal(t, float64(420), stats["violent_crime"])
}

func TestGetCrime_Deterministic(t *testing.T) {
	// Overlapping boxes resolve identically on every call.
	for i := 0; i < 50; i++ {
		w := doGet(crimeRouter(), "/api/crime?lat=30.5&lon=-85.0")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "FL", decodeBody(t, w)["state"])
	}
}
