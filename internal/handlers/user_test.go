package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thais-adelino/projeto-skin-track/internal/models"
	"github.com/thais-adelino/projeto-skin-track/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	userHandler := NewUserHandler(services.NewUserService(db), nil)

	r := gin.New()
	r.GET("/api/health", userHandler.Health)
	r.POST("/api/users", userHandler.CreateUser)
	r.GET("/api/users", userHandler.ListUsers)
	r.GET("/api/statistics", userHandler.GetStatistics)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "OK", resp["status"])
	assert.Equal(t, "Server is running", resp["message"])
}

func TestCreateUser(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/users",
		`{"name":"Ana","skinType":"oily","characteristics":{"oily":6,"combination":0,"normal":1,"dry":0,"sensitive":2}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp CreateUserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotZero(t, resp.UserID)
	assert.Equal(t, "User data saved successfully", resp.Message)
}

func TestCreateUser_MissingFields(t *testing.T) {
	r := newTestRouter(t)

	for _, body := range []string{
		``,
		`{}`,
		`{"name":"Ana"}`,
		`{"name":"Ana","skinType":"oily"}`,
		`{"skinType":"oily","characteristics":{"oily":1}}`,
	} {
		w := doJSON(r, http.MethodPost, "/api/users", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Error)
	}

	// Nothing was written.
	w := doJSON(r, http.MethodGet, "/api/statistics", "")
	var stats services.Statistics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Zero(t, stats.Total)
}

func TestStatistics_ReflectsSaves(t *testing.T) {
	r := newTestRouter(t)

	for _, body := range []string{
		`{"name":"Ana","skinType":"oily","characteristics":{"oily":6}}`,
		`{"name":"Bia","skinType":"oily","characteristics":{"oily":4}}`,
		`{"name":"Clara","skinType":"dry","characteristics":{"dry":5}}`,
	} {
		w := doJSON(r, http.MethodPost, "/api/users", body)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(r, http.MethodGet, "/api/statistics", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats services.Statistics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(3), stats.Total)
	require.Len(t, stats.Statistics, 2)
	assert.Equal(t, "oily", stats.Statistics[0].SkinType)
	assert.InDelta(t, 66.67, stats.Statistics[0].Percentage, 0.001)
}

func TestListUsers(t *testing.T) {
	r := newTestRouter(t)

	for _, name := range []string{"Ana", "Bia"} {
		w := doJSON(r, http.MethodPost, "/api/users",
			`{"name":"`+name+`","skinType":"normal","characteristics":{"normal":3}}`)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(r, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)

	var users []services.UserSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 2)
	assert.Equal(t, "Bia", users[0].Name)
}
