package utils

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/redis/go-redis/v9"
)

// NoCache marks every response as non-cacheable; cached end-points override it
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("cache-control", "no-cache")
		c.Next()
	}
}

type cachedPage struct {
	Body        []byte
	ContentType string
	Expires     int64
}

// PageCache keeps rendered pages for a short time, keyed by path and page
// number. Redis backs it when an address is configured, otherwise pages stay
// in process memory. A zero TTL disables it entirely.
type PageCache struct {
	TTL    time.Duration
	client *redis.Client
	local  cmap.ConcurrentMap[string, cachedPage]
}

func NewPageCache(redisAddr string, ttl time.Duration) *PageCache {
	pc := &PageCache{
		TTL:   ttl,
		local: cmap.New[cachedPage](),
	}
	if redisAddr != "" {
		pc.client = redis.NewClient(&redis.Options{Addr: redisAddr})
	}
	return pc
}

func (pc *PageCache) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if pc.TTL <= 0 || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		key := "page:" + c.Request.URL.Path + "?page=" + c.Query("page")
		if page, ok := pc.get(c, key); ok {
			c.Header("cache-control", "private, max-age="+strconv.Itoa(int(pc.TTL.Seconds())))
			c.Data(http.StatusOK, page.ContentType, page.Body)
			c.Abort()
			return
		}
		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()
		if writer.Status() == http.StatusOK {
			pc.put(c, key, cachedPage{
				Body:        writer.buf.Bytes(),
				ContentType: writer.Header().Get("content-type"),
				Expires:     time.Now().Add(pc.TTL).Unix(),
			})
		}
	}
}

func (pc *PageCache) get(c *gin.Context, key string) (cachedPage, bool) {
	if pc.client != nil {
		body, err := pc.client.Get(c.Request.Context(), key).Bytes()
		if err != nil {
			return cachedPage{}, false
		}
		return cachedPage{Body: body, ContentType: "text/html; charset=utf-8"}, true
	}
	page, ok := pc.local.Get(key)
	if !ok {
		return cachedPage{}, false
	}
	if page.Expires < time.Now().Unix() {
		pc.local.Remove(key)
		return cachedPage{}, false
	}
	return page, true
}

func (pc *PageCache) put(c *gin.Context, key string, page cachedPage) {
	if pc.client != nil {
		pc.client.Set(c.Request.Context(), key, page.Body, pc.TTL)
		return
	}
	pc.local.Set(key, page)
}

type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
