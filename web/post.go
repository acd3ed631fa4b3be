package web

import (
	"bytes"
	"net/http"
	"path/filepath"
	"strconv"

	"microblog/forms"
	"microblog/models"
	"microblog/storage"
	"microblog/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

const thumbSize = 640

func postURL(id uint64) string {
	return "/posts/" + strconv.FormatUint(id, 10) + "/"
}

func profileURL(username string) string {
	return "/profile/" + username + "/"
}

func PostDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		NotFound(c)
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		NotFound(c)
		return
	}
	comments, err := models.PostComments(post.ID)
	if err != nil {
		ServerError(c, err)
		return
	}
	c.HTML(http.StatusOK, "post_detail.tmpl", gin.H{
		"post":            post,
		"comments":        comments,
		"authorPostCount": post.User.PostCount(),
		"form":            forms.CommentForm{},
		"errors":          map[string]string{},
	})
}

// PostCreate shows the new-post form and handles its submission
func PostCreate(c *gin.Context, user *models.User) {
	if c.Request.Method == http.MethodGet {
		renderPostForm(c, forms.PostForm{}, nil, false, nil)
		return
	}
	form := forms.PostForm{}
	_ = c.ShouldBindWith(&form, binding.Form)
	group, errs := validatePostForm(form)
	if len(errs) > 0 {
		renderPostForm(c, form, errs, false, nil)
		return
	}
	post := models.Post{
		UserID: user.ID,
		Text:   form.Text,
	}
	if group != nil {
		post.GroupID = &group.ID
	}
	imagePath, err := savePostImage(c)
	if err != nil {
		renderPostForm(c, form, map[string]string{"image": err.Error()}, false, nil)
		return
	}
	post.Image = imagePath
	if err := models.PostCreate(&post); err != nil {
		ServerError(c, err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(user.Username))
}

// PostEdit lets the author change a post. Anybody else is quietly sent back
// to their own profile, no form, no change.
func PostEdit(c *gin.Context, user *models.User) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		NotFound(c)
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		NotFound(c)
		return
	}
	if post.UserID != user.ID {
		c.Redirect(http.StatusFound, profileURL(user.Username))
		return
	}
	if c.Request.Method == http.MethodGet {
		form := forms.PostForm{Text: post.Text}
		if post.GroupID != nil {
			form.Group = strconv.FormatUint(*post.GroupID, 10)
		}
		renderPostForm(c, form, nil, true, &post)
		return
	}
	form := forms.PostForm{}
	_ = c.ShouldBindWith(&form, binding.Form)
	group, errs := validatePostForm(form)
	if len(errs) > 0 {
		renderPostForm(c, form, errs, true, &post)
		return
	}
	post.Text = form.Text
	post.GroupID = nil
	if group != nil {
		post.GroupID = &group.ID
	}
	imagePath, err := savePostImage(c)
	if err != nil {
		renderPostForm(c, form, map[string]string{"image": err.Error()}, true, &post)
		return
	}
	if imagePath != "" {
		post.Image = imagePath
	}
	if err := models.PostUpdate(&post); err != nil {
		ServerError(c, err)
		return
	}
	c.Redirect(http.StatusFound, postURL(post.ID))
}

// AddComment appends a comment to a post and returns to its page
func AddComment(c *gin.Context, user *models.User) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		NotFound(c)
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		NotFound(c)
		return
	}
	form := forms.CommentForm{}
	_ = c.ShouldBindWith(&form, binding.Form)
	if err := form.Validate(); err != nil {
		comments, _ := models.PostComments(post.ID)
		c.HTML(http.StatusOK, "post_detail.tmpl", gin.H{
			"post":            post,
			"comments":        comments,
			"authorPostCount": post.User.PostCount(),
			"form":            form,
			"errors":          forms.FieldErrors(err),
		})
		return
	}
	if _, err := models.CommentCreate(post.ID, user.ID, form.Text); err != nil {
		ServerError(c, err)
		return
	}
	c.Redirect(http.StatusFound, postURL(post.ID))
}

// validatePostForm runs field validation and resolves the optional group
func validatePostForm(form forms.PostForm) (*models.Group, map[string]string) {
	if err := form.Validate(); err != nil {
		return nil, forms.FieldErrors(err)
	}
	if form.Group == "" {
		return nil, nil
	}
	groupID, err := strconv.ParseUint(form.Group, 10, 64)
	if err != nil {
		return nil, map[string]string{"Group": "unknown group"}
	}
	group, err := models.GroupByID(groupID)
	if err != nil {
		return nil, map[string]string{"Group": "unknown group"}
	}
	return &group, nil
}

func renderPostForm(c *gin.Context, form forms.PostForm, errs map[string]string, isEdit bool, post *models.Post) {
	if errs == nil {
		errs = map[string]string{}
	}
	groups, _ := models.GroupList()
	c.HTML(http.StatusOK, "create_post.tmpl", gin.H{
		"form":   form,
		"errors": errs,
		"isEdit": isEdit,
		"post":   post,
		"groups": groups,
	})
}

// savePostImage stores an uploaded image plus a bounded thumbnail next to it.
// No file in the request is fine, posts don't need an image.
func savePostImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	path := "posts/" + uuid.NewString() + filepath.Ext(file.Filename)
	if _, err := storage.Get().Save(path, src); err != nil {
		return "", err
	}
	// Thumbnail is best effort, an undecodable upload just keeps the original
	if thumbSrc, err := file.Open(); err == nil {
		var thumb bytes.Buffer
		if _, err := utils.CreateThumb(thumbSize, thumbSrc, &thumb); err == nil {
			_, _ = storage.Get().Save(path+".thumb.jpg", &thumb)
		}
		thumbSrc.Close()
	}
	return path, nil
}
