package web

import (
	"net/http"

	"microblog/logger"

	"github.com/gin-gonic/gin"
)

func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.tmpl", gin.H{"path": c.Request.URL.Path})
	c.Abort()
}

func Forbidden(c *gin.Context) {
	c.HTML(http.StatusForbidden, "403.tmpl", gin.H{})
	c.Abort()
}

func ServerError(c *gin.Context, err error) {
	logger.Error("request failed", err)
	c.HTML(http.StatusInternalServerError, "500.tmpl", gin.H{})
	c.Abort()
}

// Recovery renders the 500 page for panics, wired via gin.CustomRecovery
func Recovery(c *gin.Context, recovered interface{}) {
	logger.Info("panic recovered", map[string]interface{}{"panic": recovered, "path": c.Request.URL.Path})
	c.HTML(http.StatusInternalServerError, "500.tmpl", gin.H{})
	c.Abort()
}
