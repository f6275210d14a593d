package controllers_test

import (
	"net/http"
	"testing"

	"github.com/kunaalsai007/Wishlist-App/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedWishlistScenario(t *testing.T) {
	router := newRouter(t)
	a := signup(t, router, "alice")
	b := signup(t, router, "bob")

	w := a.createWishlist("Birthday")
	id := w["id"].(float64)
	assert.Equal(t, "", w["description"])
	assert.Equal(t, []string{"alice"}, collaboratorNames(w))
	assert.Empty(t, items(w))
	assert.Equal(t, "alice", w["creator"].(map[string]interface{})["username"])
	created := updatedAt(t, w)

	w = a.addItem(id, map[string]interface{}{"name": "Headphones", "price": 49.99})
	require.Len(t, items(w), 1)
	headphones := item(w, 0)
	assert.Equal(t, "Headphones", headphones["name"])
	assert.Equal(t, 49.99, headphones["price"])
	assert.Equal(t, "alice", headphones["addedBy"].(map[string]interface{})["username"])
	assert.True(t, updatedAt(t, w).After(created))

	resp := a.do(http.MethodPost, wishlistPath(id)+"/invite", map[string]string{"email": "bob@example.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Raw))
	assert.Equal(t, []string{"alice", "bob"}, collaboratorNames(resp.Data()))

	w = b.addItem(id, map[string]interface{}{"name": "Mug"})
	require.Len(t, items(w), 2)
	assert.Equal(t, "bob", item(w, 1)["addedBy"].(map[string]interface{})["username"])

	resp = b.do(http.MethodPut, itemPath(id, headphones["id"]), map[string]interface{}{"name": "Cheap headphones"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, utils.KindAccessDenied, resp.Body["kind"])

	resp = a.do(http.MethodDelete, wishlistPath(id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, c := range []*client{a, b} {
		resp = c.do(http.MethodGet, wishlistPath(id), nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, utils.KindNotFound, resp.Body["kind"])
	}
}

func TestCreateWishlistValidation(t *testing.T) {
	router := newRouter(t)
	a := signup(t, router, "alice")

	resp := a.do(http.MethodPost, "/wishlists", map[string]string{"title": "   ", "description": "x"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "Title is required", resp.Body["message"])

	resp = a.do(http.MethodPost, "/wishlists", map[string]string{"title": "Holiday", "description": "beach things"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "beach things", resp.Data()["description"])
}

func TestListWishlists(t *testing.T) {
	router := newRouter(t)
	a := signup(t, router, "alice")
	b := signup(t, router, "bob")
	c := signup(t, router, "carol")

	first := a.createWishlist("First")
	shared := b.createWishlist("Shared")
	b.createWishlist("Bob only")

	resp := b.do(http.MethodPost, wishlistPath(shared["id"].(float64))+"/invite", map[string]string{"email": "alice@example.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = a.do(http.MethodGet, "/wishlists", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	lists := resp.DataList()
	require.Len(t, lists, 2)
	assert.Equal(t, "Shared", lists[0].(map[string]interface{})["title"])
	assert.Equal(t, first["id"], lists[1].(map[string]interface{})["id"])

	resp = c.do(http.MethodGet, "/wishlists", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, resp.Body["data"])
	assert.Empty(t, resp.DataList())
}

func TestGetWishlistNotFoundVersusDenied(t *testing.T) {
	router := newRouter(t)
	a := signup(t, router, "alice")
	stranger := signup(t, router, "mallory")
	w := a.createWishlist("Private")

	resp := stranger.do(http.MethodGet, wishlistPath(w["id"].(float64)), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Access denied", resp.Body["message"])

	resp = stranger.do(http.MethodGet, "/wishlists/9999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = stranger.do(http.MethodGet, "/wishlists/not-a-number", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = a.do(http.MethodGet, wishlistPath(w["id"].(float64)), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Private", resp.Data()["title"])
}

func TestDeleteWishlistCreatorOnly(t *testing.T) {
	router := newRouter(t)
	a := signup(t, router, "alice")
	b := signup(t, router, "bob")
	w := a.createWishlist("Birthday")
	id := w["id"].(float64)
	a.do(http.MethodPost, wishlistPath(id)+"/invite", map[string]string{"email": "bob@example.com"})
	b.addItem(id, map[string]interface{}{"name": "Mug"})

	resp := b.do(http.MethodDelete, wishlistPath(id), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Only the creator can delete the wishlist", resp.Body["message"])

	resp = a.do(http.MethodDelete, wishlistPath(id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Wishlist deleted successfully", resp.Body["message"])

	resp = a.do(http.MethodDelete, wishlistPath(id), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = b.do(http.MethodGet, "/wishlists", nil)
	assert.Empty(t, resp.DataList())
}
