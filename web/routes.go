package web

import (
	"time"

	"microblog/auth"
	"microblog/config"
	"microblog/utils"

	"github.com/gin-gonic/gin"
)

// Register wires every page onto the router. The index feed sits behind the
// optional rendered-page cache, everything behind authRouter needs a session.
func Register(router *gin.Engine) {
	router.NoRoute(NotFound)

	indexCache := utils.NewPageCache(config.REDIS_ADDR, time.Duration(config.PAGE_CACHE_SECONDS)*time.Second)
	router.GET("/", indexCache.Handler(), Index)
	router.GET("/group/:slug/", GroupPosts)
	router.GET("/profile/:username/", Profile)
	router.GET("/posts/:id/", PostDetail)
	router.GET("/media/*path", MediaFetch)

	router.GET("/auth/login/", Login)
	router.POST("/auth/login/", Login)
	router.GET("/auth/signup/", Signup)
	router.POST("/auth/signup/", Signup)
	router.GET("/auth/logout/", Logout)

	authRouter := &auth.Router{Base: router}
	authRouter.GET("/create/", PostCreate)
	authRouter.POST("/create/", PostCreate)
	authRouter.GET("/posts/:id/edit/", PostEdit)
	authRouter.POST("/posts/:id/edit/", PostEdit)
	authRouter.POST("/posts/:id/comment/", AddComment)
	authRouter.GET("/follow/", FollowIndex)
	authRouter.GET("/profile/:username/follow/", ProfileFollow)
	authRouter.GET("/profile/:username/unfollow/", ProfileUnfollow)
}
