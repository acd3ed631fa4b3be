package main

import (
	"strings"

	"microblog/config"
	"microblog/db"
	"microblog/logger"
	"microblog/models"
	"microblog/storage"
	"microblog/utils"
	"microblog/web"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "session"
	sessionExpirationTime = 30 * 86400 // 30 days
)

func main() {
	logger.Init(config.DEBUG_MODE)
	db.Init()
	models.Init()
	storage.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.CustomRecovery(web.Recovery))
	_ = router.SetTrustedProxies([]string{})

	router.LoadHTMLGlob("templates/*.tmpl")

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/media/"})))
	}
	router.Use(utils.NoCache()) // cached end-points override this

	web.Register(router)

	logger.Info("server starting", map[string]interface{}{"bind": config.BIND_ADDRESS})
	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	logger.Error("server stopped", err)
}
