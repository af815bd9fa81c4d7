package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jjblog/models"
	"jjblog/repository"
)

func TestComposeRequiresLogin(t *testing.T) {
	articles := &mockArticleRepo{
		GetBySlugFunc: func(ctx context.Context, slug string) (*models.Article, error) {
			t.Fatal("store must not be queried for an anonymous request")
			return nil, nil
		},
	}
	r, _ := newTestRouter(&mockUserRepo{}, articles)

	w := get(r, "/compose/new")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login?next=%2Fcompose%2Fnew", w.Header().Get("Location"))
}

func TestComposeNewRendersEmptyForm(t *testing.T) {
	user := storedUser(t, "jerry@example.com", "s3cret")
	r, auth := newTestRouter(&mockUserRepo{GetByIDFunc: userByID(user)}, &mockArticleRepo{})

	w := get(r, "/compose/new", sessionCookieFor(t, auth, user.ID))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/compose/new"`)
}

func TestComposePrefillsExistingEntry(t *testing.T) {
	user := storedUser(t, "jerry@example.com", "s3cret")
	articles := &mockArticleRepo{
		GetBySlugFunc: func(ctx context.Context, slug string) (*models.Article, error) {
			return &models.Article{Slug: slug, Title: "Hello World", Markdown: "body"}, nil
		},
	}
	r, auth := newTestRouter(&mockUserRepo{GetByIDFunc: userByID(user)}, articles)

	w := get(r, "/compose/hello", sessionCookieFor(t, auth, user.ID))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="Hello World"`)
	assert.Contains(t, w.Body.String(), `value="hello"`)
}

func TestComposeMissingSlugShowsNotice(t *testing.T) {
	user := storedUser(t, "jerry@example.com", "s3cret")
	r, auth := newTestRouter(&mockUserRepo{GetByIDFunc: userByID(user)}, &mockArticleRepo{})

	w := get(r, "/compose/missing", sessionCookieFor(t, auth, user.ID))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No entry found for that slug")
}

func TestComposeSubmitUpsertsAndRedirects(t *testing.T) {
	user := storedUser(t, "jerry@example.com", "s3cret")
	var saved *models.Article
	articles := &mockArticleRepo{
		UpsertFunc: func(ctx context.Context, article *models.Article) error {
			saved = article
			return nil
		},
	}
	r, auth := newTestRouter(&mockUserRepo{GetByIDFunc: userByID(user)}, articles)

	form := url.Values{"title": {"Hello World"}, "slug": {"hello"}, "markdown": {"some **bold** text"}}
	w := postForm(r, "/compose/new", form, sessionCookieFor(t, auth, user.ID))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/entry/hello", w.Header().Get("Location"))
	require.NotNil(t, saved)
	assert.Equal(t, "hello", saved.Slug)
	assert.Equal(t, "Hello World", saved.Title)
	assert.Equal(t, "some **bold** text", saved.Markdown)
}

// The form's slug field keys the upsert, so an edit under /compose/old
// that submits slug=new writes the new slug instead of renaming.
func TestComposeSubmittedSlugOverridesPath(t *testing.T) {
	user := storedUser(t, "jerry@example.com", "s3cret")
	var saved *models.Article
	articles := &mockArticleRepo{
		UpsertFunc: func(ctx context.Context, article *models.Article) error {
			saved = article
			return nil
		},
	}
	r, auth := newTestRouter(&mockUserRepo{GetByIDFunc: userByID(user)}, articles)

	form := url.Values{"title": {"Hello World"}, "slug": {"renamed"}, "markdown": {"body"}}
	w := postForm(r, "/compose/hello", form, sessionCookieFor(t, auth, user.ID))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/entry/renamed", w.Header().Get("Location"))
	require.NotNil(t, saved)
	assert.Equal(t, "renamed", saved.Slug)
}

func TestComposeSubmitMissingFields(t *testing.T) {
	user := storedUser(t, "jerry@example.com", "s3cret")
	articles := &mockArticleRepo{
		UpsertFunc: func(ctx context.Context, article *models.Article) error {
			t.Fatal("incomplete submissions must not reach the store")
			return nil
		},
	}
	r, auth := newTestRouter(&mockUserRepo{GetByIDFunc: userByID(user)}, articles)

	form := url.Values{"title": {"Hello World"}, "slug": {"hello"}}
	w := postForm(r, "/compose/new", form, sessionCookieFor(t, auth, user.ID))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Last write wins when two submissions target one slug.
func TestComposeSameSlugTwiceKeepsSecond(t *testing.T) {
	user := storedUser(t, "jerry@example.com", "s3cret")
	store := map[string]models.Article{}
	articles := &mockArticleRepo{
		UpsertFunc: func(ctx context.Context, article *models.Article) error {
			store[article.Slug] = *article
			return nil
		},
	}
	r, auth := newTestRouter(&mockUserRepo{GetByIDFunc: userByID(user)}, articles)
	cookie := sessionCookieFor(t, auth, user.ID)

	postForm(r, "/compose/new", url.Values{"title": {"First"}, "slug": {"hello"}, "markdown": {"one"}}, cookie)
	postForm(r, "/compose/hello", url.Values{"title": {"Second"}, "slug": {"hello"}, "markdown": {"two"}}, cookie)

	require.Len(t, store, 1)
	assert.Equal(t, "Second", store["hello"].Title)
	assert.Equal(t, "two", store["hello"].Markdown)
}

func TestComposeEditLinkRoundTrip(t *testing.T) {
	// manage -> compose -> entry uses one slug throughout
	user := storedUser(t, "jerry@example.com", "s3cret")
	stored := models.Article{Slug: "hello", Title: "Hello World", Markdown: "body"}
	articles := &mockArticleRepo{
		ListFunc: func(ctx context.Context) ([]models.Article, error) {
			return []models.Article{stored}, nil
		},
		GetBySlugFunc: func(ctx context.Context, slug string) (*models.Article, error) {
			if slug == stored.Slug {
				a := stored
				return &a, nil
			}
			return nil, repository.ErrNoResult
		},
	}
	r, auth := newTestRouter(&mockUserRepo{GetByIDFunc: userByID(user)}, articles)
	cookie := sessionCookieFor(t, auth, user.ID)

	w := get(r, "/manage", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `href="/compose/hello"`)

	w = get(r, "/compose/hello", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/entry/hello", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "Hello World"))
}
