package web

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gopress-cms/gopress/database"
	"github.com/gopress-cms/gopress/logger"
	"github.com/gopress-cms/gopress/web/service"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var articleBody = strings.Repeat("This body is long enough. ", 2)

func newTestServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()
	logger.InitLogger(logging.ERROR, "")

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Close(db)
	})

	s := NewServer(db)
	engine, err := s.initRouter()
	require.NoError(t, err)

	ts := httptest.NewServer(engine)
	t.Cleanup(ts.Close)
	return ts, db
}

func newClient(t *testing.T, ts *httptest.Server) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := ts.Client()
	client.Jar = jar
	return client
}

func get(t *testing.T, client *http.Client, ts *httptest.Server, path string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func postForm(t *testing.T, client *http.Client, ts *httptest.Server, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := client.PostForm(ts.URL+path, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func register(t *testing.T, client *http.Client, ts *httptest.Server, username, password string) {
	t.Helper()
	resp, body := postForm(t, client, ts, "/register", url.Values{
		"name":     {"Alice"},
		"username": {username},
		"email":    {"a@example.com"},
		"password": {password},
		"confirm":  {password},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "You are now registered and can login")
}

func login(t *testing.T, client *http.Client, ts *httptest.Server, username, password string) {
	t.Helper()
	resp, body := postForm(t, client, ts, "/login", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "/dashboard", resp.Request.URL.Path)
	require.Contains(t, body, "You are now logged in")
}

func TestPublicPages(t *testing.T) {
	ts, _ := newTestServer(t)
	client := newClient(t, ts)

	resp, body := get(t, client, ts, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Welcome to GoPress")

	resp, _ = get(t, client, ts, "/about")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = get(t, client, ts, "/articles")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "No Articles Found")

	// missing article renders an empty page, not an error page
	resp, _ = get(t, client, ts, "/article/999")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtectedRoutesRedirectAnonymous(t *testing.T) {
	ts, db := newTestServer(t)
	client := newClient(t, ts)

	articles := service.NewArticleService(db)
	created, err := articles.Create("Keep me", articleBody, "alice")
	require.NoError(t, err)

	for _, path := range []string{"/dashboard", "/add_article", "/edit_article/1", "/logout"} {
		resp, body := get(t, client, ts, path)
		assert.Equal(t, "/login", resp.Request.URL.Path, path)
		assert.Contains(t, body, "Unauthorized, please login", path)
	}

	// the protected effect must not run while anonymous
	resp, _ := postForm(t, client, ts, "/delete_article/"+strconv.Itoa(created.Id), nil)
	assert.Equal(t, "/login", resp.Request.URL.Path)
	_, err = articles.GetByID(created.Id)
	assert.NoError(t, err)
}

func TestLoginFailures(t *testing.T) {
	ts, _ := newTestServer(t)
	client := newClient(t, ts)
	register(t, client, ts, "alice", "Secret1!")

	_, body := postForm(t, client, ts, "/login", url.Values{
		"username": {"nobody"},
		"password": {"Secret1!"},
	})
	assert.Contains(t, body, "username not found")

	_, body = postForm(t, client, ts, "/login", url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	})
	assert.Contains(t, body, "Invalid login")

	// a failed login leaves the session anonymous
	resp, _ := get(t, client, ts, "/dashboard")
	assert.Equal(t, "/login", resp.Request.URL.Path)
}

func TestRegisterValidation(t *testing.T) {
	ts, db := newTestServer(t)
	client := newClient(t, ts)

	_, body := postForm(t, client, ts, "/register", url.Values{
		"name":     {"Alice"},
		"username": {"alice"},
		"email":    {"a@example.com"},
		"password": {"Secret1!"},
		"confirm":  {"other"},
	})
	assert.Contains(t, body, "passwords do not match")

	// nothing persisted on validation failure
	users := service.NewUserService(db)
	_, err := users.CheckUser("alice", "Secret1!")
	assert.ErrorIs(t, err, service.ErrUnknownUsername)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ts, _ := newTestServer(t)
	client := newClient(t, ts)
	register(t, client, ts, "alice", "Secret1!")

	_, body := postForm(t, client, ts, "/register", url.Values{
		"name":     {"Other"},
		"username": {"alice"},
		"email":    {"other@example.com"},
		"password": {"Other1!"},
		"confirm":  {"Other1!"},
	})
	assert.Contains(t, body, "Username already taken")
}

func TestArticleLifecycle(t *testing.T) {
	ts, db := newTestServer(t)
	client := newClient(t, ts)
	articles := service.NewArticleService(db)

	register(t, client, ts, "alice", "Secret1!")
	login(t, client, ts, "alice", "Secret1!")

	// a too-short body is rejected and persists nothing
	_, body := postForm(t, client, ts, "/add_article", url.Values{
		"title": {"Hi"},
		"body":  {strings.Repeat("x", 29)},
	})
	assert.Contains(t, body, "Must be at least 30 characters long")
	all, err := articles.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	resp, body := postForm(t, client, ts, "/add_article", url.Values{
		"title": {"Hi"},
		"body":  {articleBody},
	})
	require.Equal(t, "/dashboard", resp.Request.URL.Path)
	assert.Contains(t, body, "Article created")
	assert.Contains(t, body, "Hi")

	all, err = articles.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	created := all[0]
	assert.Equal(t, "alice", created.Author)

	// visible on the public list too
	_, body = get(t, client, ts, "/articles")
	assert.Contains(t, body, "Hi")

	// edit form comes prepopulated
	_, body = get(t, client, ts, "/edit_article/"+strconv.Itoa(created.Id))
	assert.Contains(t, body, "Hi")
	assert.Contains(t, body, articleBody)

	resp, body = postForm(t, client, ts, "/edit_article/"+strconv.Itoa(created.Id), url.Values{
		"title": {"Hello again"},
		"body":  {articleBody},
	})
	require.Equal(t, "/dashboard", resp.Request.URL.Path)
	assert.Contains(t, body, "Article Updated")
	got, err := articles.GetByID(created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Hello again", got.Title)
	assert.Equal(t, "alice", got.Author)

	resp, body = postForm(t, client, ts, "/delete_article/"+strconv.Itoa(created.Id), nil)
	require.Equal(t, "/dashboard", resp.Request.URL.Path)
	assert.Contains(t, body, "Article Deleted")
	_, err = articles.GetByID(created.Id)
	assert.True(t, database.IsNotFound(err))
}

func TestLogoutClearsSession(t *testing.T) {
	ts, _ := newTestServer(t)
	client := newClient(t, ts)

	register(t, client, ts, "alice", "Secret1!")
	login(t, client, ts, "alice", "Secret1!")

	resp, body := get(t, client, ts, "/logout")
	assert.Equal(t, "/login", resp.Request.URL.Path)
	assert.Contains(t, body, "You are now logged out")

	resp, _ = get(t, client, ts, "/dashboard")
	assert.Equal(t, "/login", resp.Request.URL.Path)
}
