package web

import (
	"net/http"

	"microblog/auth"
	"microblog/models"

	"github.com/gin-gonic/gin"
)

const (
	postsPerPage  = 10
	followPerPage = 20
)

func Index(c *gin.Context) {
	page, posts, err := models.PostPage(models.AllPosts(), c.Query("page"), postsPerPage)
	if err != nil {
		ServerError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"posts": posts,
		"page":  page,
	})
}

func GroupPosts(c *gin.Context) {
	group, err := models.GroupBySlug(c.Param("slug"))
	if err != nil {
		NotFound(c)
		return
	}
	page, posts, err := models.PostPage(models.GroupFeed(group.ID), c.Query("page"), postsPerPage)
	if err != nil {
		ServerError(c, err)
		return
	}
	c.HTML(http.StatusOK, "group_list.tmpl", gin.H{
		"group": group,
		"posts": posts,
		"page":  page,
	})
}

func Profile(c *gin.Context) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		NotFound(c)
		return
	}
	viewer := auth.LoadSession(c).User()
	following := viewer.ID != 0 && models.Following(viewer.ID, author.ID)
	page, posts, err := models.PostPage(models.AuthorFeed(author.ID), c.Query("page"), postsPerPage)
	if err != nil {
		ServerError(c, err)
		return
	}
	c.HTML(http.StatusOK, "profile.tmpl", gin.H{
		"author":    author,
		"following": following,
		"postCount": page.Total,
		"posts":     posts,
		"page":      page,
	})
}

// FollowIndex shows posts from authors the signed-in user follows
func FollowIndex(c *gin.Context, user *models.User) {
	page, posts, err := models.PostPage(models.FollowFeed(user.ID), c.Query("page"), followPerPage)
	if err != nil {
		ServerError(c, err)
		return
	}
	c.HTML(http.StatusOK, "follow.tmpl", gin.H{
		"posts": posts,
		"page":  page,
	})
}
