package web_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"microblog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPosts(t *testing.T, author models.User, n int) {
	for i := 0; i < n; i++ {
		post := models.Post{UserID: author.ID, Text: fmt.Sprintf("seeded post %d", i)}
		require.NoError(t, models.PostCreate(&post))
	}
}

func articles(body string) int {
	return strings.Count(body, "<article>")
}

func TestIndexPagination(t *testing.T) {
	router := setupServer(t)
	author := signup(t, "indexauthor")
	seedPosts(t, author, 13)

	w := do(router, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, articles(w.Body.String()))

	w = do(router, http.MethodGet, "/?page=2", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, articles(w.Body.String()))

	// page 0 and a non-numeric page both show page 1
	page1 := do(router, http.MethodGet, "/?page=1", nil, nil).Body.String()
	assert.Equal(t, page1, do(router, http.MethodGet, "/?page=0", nil, nil).Body.String())
	assert.Equal(t, page1, do(router, http.MethodGet, "/?page=nope", nil, nil).Body.String())

	// past the end clamps to the last page
	w = do(router, http.MethodGet, "/?page=99", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, articles(w.Body.String()))
}

func TestGroupFeed(t *testing.T) {
	router := setupServer(t)
	author := signup(t, "groupauthor")
	group, err := models.GroupCreate("Gopher News", "everything gopher")
	require.NoError(t, err)
	post := models.Post{UserID: author.ID, GroupID: &group.ID, Text: "grouped post"}
	require.NoError(t, models.PostCreate(&post))
	seedPosts(t, author, 2) // ungrouped noise

	w := do(router, http.MethodGet, "/group/gopher-news/", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, articles(w.Body.String()))
	assert.Contains(t, w.Body.String(), "grouped post")
	assert.Contains(t, w.Body.String(), "everything gopher")
}

func TestGroupFeedUnknownSlug(t *testing.T) {
	router := setupServer(t)

	w := do(router, http.MethodGet, "/group/no-such-group/", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileFeed(t *testing.T) {
	router := setupServer(t)
	author := signup(t, "profileauthor")
	other := signup(t, "otherauthor")
	seedPosts(t, author, 3)
	seedPosts(t, other, 2)

	w := do(router, http.MethodGet, "/profile/profileauthor/", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, articles(w.Body.String()))
	assert.Contains(t, w.Body.String(), "3 posts")
	// anonymous viewers are never "following"
	assert.Contains(t, w.Body.String(), "/profile/profileauthor/follow/")
}

func TestProfileUnknownUser(t *testing.T) {
	router := setupServer(t)

	w := do(router, http.MethodGet, "/profile/nobody/", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileShowsFollowingState(t *testing.T) {
	router := setupServer(t)
	author := signup(t, "celebrity")
	viewer := signup(t, "fan")
	require.NoError(t, models.FollowCreate(viewer.ID, author.ID))

	cookies := login(t, router, "fan")
	w := do(router, http.MethodGet, "/profile/celebrity/", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/profile/celebrity/unfollow/")
}

func TestFollowFeedRequiresAuth(t *testing.T) {
	router := setupServer(t)

	w := do(router, http.MethodGet, "/follow/", nil, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/auth/login/?next=")
}

func TestFollowFeedContents(t *testing.T) {
	router := setupServer(t)
	reader := signup(t, "reader")
	followed := signup(t, "followed")
	signup(t, "stranger")
	require.NoError(t, models.FollowCreate(reader.ID, followed.ID))

	followedPost := models.Post{UserID: followed.ID, Text: "from followed author"}
	require.NoError(t, models.PostCreate(&followedPost))
	stranger, err := models.UserByUsername("stranger")
	require.NoError(t, err)
	strangerPost := models.Post{UserID: stranger.ID, Text: "from a stranger"}
	require.NoError(t, models.PostCreate(&strangerPost))

	cookies := login(t, router, "reader")
	w := do(router, http.MethodGet, "/follow/", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "from followed author")
	assert.NotContains(t, w.Body.String(), "from a stranger")
}

func TestUnknownRouteRenders404(t *testing.T) {
	router := setupServer(t)

	w := do(router, http.MethodGet, "/definitely/not/a/page/", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "404")
}
