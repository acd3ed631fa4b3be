package web

import (
	"strings"

	"microblog/storage"

	"github.com/gin-gonic/gin"
)

// MediaFetch serves uploaded post images from the configured storage
func MediaFetch(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		NotFound(c)
		return
	}
	storage.Get().Serve(path, c.Request, c.Writer)
}
