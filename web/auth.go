package web

import (
	"net/http"
	"strings"

	"microblog/auth"
	"microblog/forms"
	"microblog/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Login renders the sign-in form and checks submissions. A valid login picks
// up the next parameter so interrupted requests land back where they started.
func Login(c *gin.Context) {
	next := safeNext(c)
	if c.Request.Method == http.MethodGet {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{"form": forms.LoginForm{}, "errors": map[string]string{}, "next": next})
		return
	}
	form := forms.LoginForm{}
	_ = c.ShouldBindWith(&form, binding.Form)
	if err := form.Validate(); err != nil {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{"form": form, "errors": forms.FieldErrors(err), "next": next})
		return
	}
	user, err := models.UserLogin(form.Username, form.Password)
	if err != nil {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{"form": form, "errors": map[string]string{"": err.Error()}, "next": next})
		return
	}
	auth.LoadSession(c).LoginUser(user.ID)
	c.Redirect(http.StatusFound, next)
}

func Signup(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		c.HTML(http.StatusOK, "signup.tmpl", gin.H{"form": forms.SignupForm{}, "errors": map[string]string{}})
		return
	}
	form := forms.SignupForm{}
	_ = c.ShouldBindWith(&form, binding.Form)
	if err := form.Validate(); err != nil {
		c.HTML(http.StatusOK, "signup.tmpl", gin.H{"form": form, "errors": forms.FieldErrors(err)})
		return
	}
	user, err := models.UserCreate(form.Username, form.Name, form.Email, form.Password)
	if err != nil {
		c.HTML(http.StatusOK, "signup.tmpl", gin.H{"form": form, "errors": map[string]string{"": "username or email already taken"}})
		return
	}
	auth.LoadSession(c).LoginUser(user.ID)
	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	c.Redirect(http.StatusFound, "/")
}

// safeNext only follows local paths, never off-site redirect targets
func safeNext(c *gin.Context) string {
	next := c.Query("next")
	if next == "" {
		next = c.PostForm("next")
	}
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
