package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kunaalsai007/Wishlist-App/config"
	"github.com/kunaalsai007/Wishlist-App/routes"
	"github.com/kunaalsai007/Wishlist-App/utils/testutil"
	"github.com/stretchr/testify/require"
)

type client struct {
	t      *testing.T
	router *gin.Engine
	token  string
	id     float64
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	testutil.SetupTestDB(t)
	return routes.SetupRouter(&config.Config{Env: "test", SessionSecret: "test-session-secret"})
}

// signup registers username through the API and returns a client holding
// its token
func signup(t *testing.T, router *gin.Engine, username string) *client {
	t.Helper()
	resp := testutil.MakeTestRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		Path:   "/auth/signup",
		Body: map[string]string{
			"username": username,
			"email":    username + "@example.com",
			"password": testutil.TestPassword,
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Raw))

	user := resp.Data()["user"].(map[string]interface{})
	return &client{
		t:      t,
		router: router,
		token:  resp.Data()["token"].(string),
		id:     user["id"].(float64),
	}
}

func (c *client) do(method, path string, body interface{}) testutil.TestResponse {
	c.t.Helper()
	return testutil.MakeTestRequest(c.t, c.router, testutil.TestRequest{
		Method: method,
		Path:   path,
		Body:   body,
		Token:  c.token,
	})
}

func (c *client) createWishlist(title string) map[string]interface{} {
	c.t.Helper()
	resp := c.do(http.MethodPost, "/wishlists", map[string]string{"title": title})
	require.Equal(c.t, http.StatusCreated, resp.StatusCode, string(resp.Raw))
	return resp.Data()
}

func (c *client) addItem(wishlistID float64, body map[string]interface{}) map[string]interface{} {
	c.t.Helper()
	resp := c.do(http.MethodPost, wishlistPath(wishlistID)+"/items", body)
	require.Equal(c.t, http.StatusCreated, resp.StatusCode, string(resp.Raw))
	return resp.Data()
}

func wishlistPath(id float64) string {
	return fmt.Sprintf("/wishlists/%d", int(id))
}

func itemPath(wishlistID float64, itemID interface{}) string {
	return fmt.Sprintf("%s/items/%v", wishlistPath(wishlistID), itemID)
}

func items(w map[string]interface{}) []interface{} {
	list, _ := w["items"].([]interface{})
	return list
}

func item(w map[string]interface{}, i int) map[string]interface{} {
	return items(w)[i].(map[string]interface{})
}

func collaboratorNames(w map[string]interface{}) []string {
	var names []string
	for _, c := range w["collaborators"].([]interface{}) {
		names = append(names, c.(map[string]interface{})["username"].(string))
	}
	return names
}

func updatedAt(t *testing.T, w map[string]interface{}) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339Nano, w["updatedAt"].(string))
	require.NoError(t, err)
	return ts
}
