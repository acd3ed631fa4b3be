package models

import (
	"fmt"
	"testing"

	"microblog/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostPageWindows(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "prolific")
	for i := 0; i < 13; i++ {
		createTestPost(t, user, nil, fmt.Sprintf("post %d", i))
	}

	page, posts, err := PostPage(AllPosts(), "1", 10)
	require.NoError(t, err)
	assert.Len(t, posts, 10)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 2, page.NumPages)
	assert.Equal(t, int64(13), page.Total)

	page, posts, err = PostPage(AllPosts(), "2", 10)
	require.NoError(t, err)
	assert.Len(t, posts, 3)
	assert.Equal(t, 2, page.Number)

	// page 0 and garbage both land on page 1
	_, posts0, err := PostPage(AllPosts(), "0", 10)
	require.NoError(t, err)
	_, postsGarbage, err2 := PostPage(AllPosts(), "not-a-number", 10)
	require.NoError(t, err2)
	require.Len(t, posts0, 10)
	for i := range posts0 {
		assert.Equal(t, posts0[i].ID, postsGarbage[i].ID)
	}
}

func TestPostPageNewestFirst(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "author")
	first := createTestPost(t, user, nil, "first")
	second := createTestPost(t, user, nil, "second")
	third := createTestPost(t, user, nil, "third")

	_, posts, err := PostPage(AllPosts(), "", 10)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, third.ID, posts[0].ID)
	assert.Equal(t, second.ID, posts[1].ID)
	assert.Equal(t, first.ID, posts[2].ID)
}

func TestGroupFeedOnlyGroupPosts(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "author")
	group, err := GroupCreate("Cats", "")
	require.NoError(t, err)
	inGroup := createTestPost(t, user, &group.ID, "in group")
	createTestPost(t, user, nil, "no group")

	_, posts, err := PostPage(GroupFeed(group.ID), "", 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, inGroup.ID, posts[0].ID)
}

func TestPostUpdateKeepsCreationTime(t *testing.T) {
	setupTestDB(t)

	user := createTestUser(t, "author")
	post := createTestPost(t, user, nil, "original")
	created := post.CreatedAt

	post.Text = "edited"
	require.NoError(t, PostUpdate(&post))

	reloaded, err := PostByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", reloaded.Text)
	assert.Equal(t, created, reloaded.CreatedAt)
}

func TestUserDeleteCascades(t *testing.T) {
	setupTestDB(t)

	author := createTestUser(t, "doomed")
	commenter := createTestUser(t, "commenter")
	post := createTestPost(t, author, nil, "goes away")
	_, err := CommentCreate(post.ID, commenter.ID, "me too")
	require.NoError(t, err)

	require.NoError(t, UserDelete(author.ID))

	var postCount, commentCount int64
	db.Instance.Model(&Post{}).Count(&postCount)
	db.Instance.Model(&Comment{}).Count(&commentCount)
	assert.Equal(t, int64(0), postCount)
	assert.Equal(t, int64(0), commentCount)
}

func TestCommentsOldestFirst(t *testing.T) {
	setupTestDB(t)

	author := createTestUser(t, "author")
	post := createTestPost(t, author, nil, "discuss")
	first, err := CommentCreate(post.ID, author.ID, "first")
	require.NoError(t, err)
	second, err := CommentCreate(post.ID, author.ID, "second")
	require.NoError(t, err)

	comments, err := PostComments(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, second.ID, comments[1].ID)
}
