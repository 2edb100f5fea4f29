package ctx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/maison/pkg/apperr"
	"github.com/shashiranjanraj/maison/pkg/auth"
	"github.com/shashiranjanraj/maison/pkg/ctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamAndQuery(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/products/{id}", ctx.Wrap(func(c *ctx.Context) {
		id, ok := c.ParamUint("id")
		require.True(t, ok)
		assert.Equal(t, uint(42), id)
		assert.Equal(t, "Electronics", c.Query("category"))
		assert.Equal(t, "default", c.DefaultQuery("sort", "default"))
		c.Success(map[string]uint{"id": id})
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/42?category=Electronics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":42`)
}

func TestParamUintRejectsGarbage(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/products/{id}", ctx.Wrap(func(c *ctx.Context) {
		_, ok := c.ParamUint("id")
		assert.False(t, ok)
		c.NotFound("Product")
	}))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/abc", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestBindJSONValidationFailure(t *testing.T) {
	type input struct {
		Title string `json:"title" validate:"required"`
	}

	handler := ctx.Wrap(func(c *ctx.Context) {
		var in input
		if !c.BindJSON(&in) {
			return
		}
		c.Success(in)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	handler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title"`)
	assert.Contains(t, rec.Body.String(), "validation")
}

func TestBindJSONMalformedBody(t *testing.T) {
	handler := ctx.Wrap(func(c *ctx.Context) {
		var in struct{}
		if !c.BindJSON(&in) {
			return
		}
		c.Success(nil)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{not json`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFailMapsKinds(t *testing.T) {
	cases := []struct {
		err    error
		status int
		body   string
	}{
		{apperr.NotFound("Product"), http.StatusNotFound, "Product not found"},
		{apperr.InsufficientStock("Classic Watch"), http.StatusBadRequest, "Not enough stock for Classic Watch"},
		{apperr.EmptyCart(), http.StatusBadRequest, "Cart is empty"},
		{assertAnError(), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		handler := ctx.Wrap(func(c *ctx.Context) { c.Fail(tc.err) })
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, tc.status, rec.Code)
		assert.Contains(t, rec.Body.String(), tc.body)
	}
}

func assertAnError() error {
	return apperr.Internal(assert.AnError)
}

func TestIdentityFromContext(t *testing.T) {
	handler := ctx.Wrap(func(c *ctx.Context) {
		ident, ok := c.Identity()
		require.True(t, ok)
		assert.Equal(t, "shashi", ident.Username)
		assert.True(t, ident.IsAdmin())
		c.Success(ident)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(auth.WithIdentity(req.Context(), auth.Identity{
		ID: 1, Username: "shashi", Role: auth.RoleAdmin,
	}))

	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIdentityMissingForAnonymous(t *testing.T) {
	handler := ctx.Wrap(func(c *ctx.Context) {
		_, ok := c.Identity()
		assert.False(t, ok)
		c.Unauthorized()
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
