package forms

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// PostForm carries the create/edit post submission. Group holds the group id
// as submitted, empty for no group.
type PostForm struct {
	Text  string `form:"text"`
	Group string `form:"group"`
}

func (f PostForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Text, validation.Required.Error("post text is required")),
		validation.Field(&f.Group, validation.When(f.Group != "", is.Digit.Error("unknown group"))),
	)
}

type CommentForm struct {
	Text string `form:"text"`
}

func (f CommentForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Text, validation.Required.Error("comment text is required")),
	)
}

type SignupForm struct {
	Username string `form:"username"`
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (f SignupForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required, validation.Length(3, 150), is.Alphanumeric),
		validation.Field(&f.Name, validation.Length(0, 100)),
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, validation.Required, validation.Length(6, 128)),
	)
}

type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (f LoginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required),
		validation.Field(&f.Password, validation.Required),
	)
}

// FieldErrors flattens a validation result into field -> message for templates
func FieldErrors(err error) map[string]string {
	result := map[string]string{}
	if err == nil {
		return result
	}
	if errs, ok := err.(validation.Errors); ok {
		for field, fieldErr := range errs {
			result[field] = fieldErr.Error()
		}
		return result
	}
	result[""] = err.Error()
	return result
}
