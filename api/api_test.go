package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"bitwise74/review-api/model"
	"bitwise74/review-api/pkg/security"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// newTestAPI spins up the full router against a fresh in-memory
// database. Mail stays on the logging sender because mail.enabled is
// false.
func newTestAPI(t *testing.T) *API {
	t.Helper()

	gin.SetMode(gin.TestMode)

	name, err := gonanoid.Generate("abcdefghijklmnopqrstuvwxyz", 8)
	require.NoError(t, err)

	viper.Set("database.driver", "sqlite")
	viper.Set("database.dsn", fmt.Sprintf("file:%v?mode=memory&cache=shared", name))
	viper.Set("jwt.secret", "test-secret")
	viper.Set("jwt.access_ttl", "1h")
	viper.Set("jwt.refresh_ttl", "720h")
	viper.Set("signup.code_max_age", "24h")
	viper.Set("mail.enabled", false)
	viper.Set("cache.store", "memory")

	a, err := NewRouter()
	require.NoError(t, err)

	return a
}

func createUser(t *testing.T, a *API, username string, role model.Role) *model.User {
	t.Helper()

	u := &model.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
	}
	require.NoError(t, a.DB.Create(u).Error)

	return u
}

func bearer(t *testing.T, u *model.User) string {
	t.Helper()

	pair, err := security.MakeTokenPair(u.ID)
	require.NoError(t, err)

	return "Bearer " + pair.Access
}

func do(t *testing.T, a *API, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

func createCategory(t *testing.T, a *API, slug string) *model.Category {
	t.Helper()

	cat := &model.Category{Name: "Category " + slug, Slug: slug}
	require.NoError(t, a.DB.Create(cat).Error)

	return cat
}

func createGenre(t *testing.T, a *API, slug string) *model.Genre {
	t.Helper()

	g := &model.Genre{Name: "Genre " + slug, Slug: slug}
	require.NoError(t, a.DB.Create(g).Error)

	return g
}

func createTitle(t *testing.T, a *API, name string, category *model.Category) *model.Title {
	t.Helper()

	title := &model.Title{Name: name, Year: 2000, CategoryID: category.ID}
	require.NoError(t, a.DB.Create(title).Error)

	return title
}

func createReview(t *testing.T, a *API, title *model.Title, author *model.User, score int) *model.Review {
	t.Helper()

	review := &model.Review{TitleID: title.ID, AuthorID: author.ID, Text: "review text", Score: score}
	require.NoError(t, a.DB.Create(review).Error)

	return review
}

func TestHeartbeat(t *testing.T) {
	a := newTestAPI(t)

	w := do(t, a, http.MethodHead, "/api/heartbeat", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
