package web

import (
	"net/http"

	"microblog/models"

	"github.com/gin-gonic/gin"
)

// ProfileFollow subscribes the signed-in user to an author. Following
// yourself is rejected, following twice changes nothing.
func ProfileFollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		NotFound(c)
		return
	}
	if author.ID != user.ID {
		if err := models.FollowCreate(user.ID, author.ID); err != nil {
			ServerError(c, err)
			return
		}
	}
	c.Redirect(http.StatusFound, profileURL(author.Username))
}

// ProfileUnfollow drops the subscription if it exists
func ProfileUnfollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		NotFound(c)
		return
	}
	if err := models.FollowDelete(user.ID, author.ID); err != nil {
		ServerError(c, err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(author.Username))
}
