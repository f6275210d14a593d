// Package testutil wires an in-memory database and request helpers for
// package tests.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kunaalsai007/Wishlist-App/config"
	"github.com/kunaalsai007/Wishlist-App/models"
	"github.com/kunaalsai007/Wishlist-App/repository"
	"github.com/kunaalsai007/Wishlist-App/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestSecret signs tokens minted in tests
const TestSecret = "test-secret"

// TestPassword is the password of every user made by CreateTestUser
const TestPassword = "password123"

// SetupTestDB opens a private in-memory database, migrates it and installs
// it as config.DB for the duration of the test
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.ConfigureTokens(TestSecret)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), config.GormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	previous := config.DB
	config.DB = db
	t.Cleanup(func() {
		config.DB = previous
		sqlDB.Close()
	})
	return db
}

// CreateTestUser registers a user with TestPassword
func CreateTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user, err := repository.NewUserRepository(db).Register(context.Background(), username, username+"@example.com", TestPassword)
	require.NoError(t, err)
	return user
}

// GetTestToken generates a bearer token for user
func GetTestToken(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(user.ID, user.Email)
	require.NoError(t, err)
	return token
}

// SteppingClock returns a clock that advances one second per call
func SteppingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

// TestRequest represents a test HTTP request
type TestRequest struct {
	Method string
	Path   string
	Body   interface{}
	Token  string
}

// TestResponse represents a test HTTP response
type TestResponse struct {
	StatusCode int
	Header     http.Header
	Raw        []byte
	Body       map[string]interface{}
}

// Data returns the "data" member of the response envelope as an object
func (r TestResponse) Data() map[string]interface{} {
	data, _ := r.Body["data"].(map[string]interface{})
	return data
}

// DataList returns the "data" member of the response envelope as a list
func (r TestResponse) DataList() []interface{} {
	data, _ := r.Body["data"].([]interface{})
	return data
}

// MakeTestRequest makes a test HTTP request
func MakeTestRequest(t *testing.T, router http.Handler, req TestRequest) TestResponse {
	t.Helper()

	var body []byte
	if req.Body != nil {
		var err error
		body, err = json.Marshal(req.Body)
		require.NoError(t, err)
	}

	httpReq, err := http.NewRequest(req.Method, req.Path, bytes.NewBuffer(body))
	require.NoError(t, err)
	httpReq.Header.Set("Content-Type", "application/json")
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httpReq)

	resp := TestResponse{
		StatusCode: w.Code,
		Header:     w.Header(),
		Raw:        w.Body.Bytes(),
	}
	if w.Body.Len() > 0 && isJSON(w.Header().Get("Content-Type")) {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp.Body))
	}
	return resp
}

func isJSON(contentType string) bool {
	return strings.HasPrefix(contentType, "application/json")
}
