package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterForm carries the registration fields. The binding tags hold
// the field rules; Confirm has no independent length rule.
type RegisterForm struct {
	Name     string `form:"name" binding:"required,min=1,max=50"`
	Username string `form:"username" binding:"required,min=4,max=25"`
	Email    string `form:"email" binding:"required,min=6,max=50"`
	Password string `form:"password" binding:"required,eqfield=Confirm"`
	Confirm  string `form:"confirm"`
}

// ArticleForm carries the article fields for both create and edit.
type ArticleForm struct {
	Title string `form:"title" binding:"required,max=200"`
	Body  string `form:"body" binding:"required,min=30"`
}

// fieldErrors turns a binding failure into per-field messages keyed by
// the lowercase field name, for re-rendering the originating form.
func fieldErrors(err error) map[string]string {
	msgs := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		msgs["form"] = "Invalid form data"
		return msgs
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs[field] = "This field is required"
		case "min":
			msgs[field] = fmt.Sprintf("Must be at least %s characters long", fe.Param())
		case "max":
			msgs[field] = fmt.Sprintf("Cannot be longer than %s characters", fe.Param())
		case "eqfield":
			msgs[field] = "passwords do not match"
		default:
			msgs[field] = "Invalid value"
		}
	}
	return msgs
}
