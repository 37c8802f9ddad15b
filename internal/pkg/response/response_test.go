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

func record(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", handler)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOK_WritesDataAsBody(t *testing.T) {
	w := record(func(c *gin.Context) {
		OK(c, gin.H{"score": 85})
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 85.0, body["score"])
}

func TestBadRequest(t *testing.T) {
	w := record(func(c *gin.Context) {
		BadRequest(c, "email is required")
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "email is required", body.Detail)
}

func TestNotFound(t *testing.T) {
	w := record(func(c *gin.Context) {
		NotFound(c, "analysis not found")
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServerError_DefaultDetail(t *testing.T) {
	w := record(func(c *gin.Context) {
		ServerError(c, "")
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Detail)
}

func TestPage(t *testing.T) {
	w := record(func(c *gin.Context) {
		Page(c, 42, 2, 20, []string{"a", "b"})
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var body PageData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body.Total)
	assert.Equal(t, 2, body.Page)
	assert.Equal(t, 20, body.PageSize)
}
