package web_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"microblog/db"
	"microblog/models"
	"microblog/web"

	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testPassword = "password123"

var testDBCounter int64

// setupServer builds the full router against a fresh in-memory database,
// templates and session store included
func setupServer(t *testing.T) *gin.Engine {
	dsn := fmt.Sprintf("file:web_test_%d?mode=memory&cache=shared&_foreign_keys=on",
		atomic.AddInt64(&testDBCounter, 1))
	tdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	db.Instance = tdb
	models.Init()
	t.Cleanup(func() {
		sqlDB, err := tdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.LoadHTMLGlob("../templates/*.tmpl")
	store := gormsessions.NewStore(db.Instance, true, []byte("test-session-key"))
	store.Options(sessions.Options{Path: "/", MaxAge: 30 * 86400})
	router.Use(sessions.Sessions("session", store))
	web.Register(router)
	return router
}

func signup(t *testing.T, username string) models.User {
	user, err := models.UserCreate(username, username, username+"@example.com", testPassword)
	require.NoError(t, err)
	return user
}

func login(t *testing.T, router *gin.Engine, username string) []*http.Cookie {
	w := do(router, http.MethodPost, "/auth/login/", url.Values{
		"username": {username},
		"password": {testPassword},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code, "login should redirect: %s", w.Body.String())
	return w.Result().Cookies()
}

func do(router *gin.Engine, method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postCount(t *testing.T) int64 {
	var count int64
	require.NoError(t, db.Instance.Model(&models.Post{}).Count(&count).Error)
	return count
}
