package controller

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validate(t *testing.T, form any) error {
	t.Helper()
	return binding.Validator.ValidateStruct(form)
}

func TestRegisterFormPasswordConfirmation(t *testing.T) {
	form := RegisterForm{
		Name:     "Alice",
		Username: "alice",
		Email:    "a@example.com",
		Password: "Secret1!",
		Confirm:  "different",
	}
	err := validate(t, &form)
	require.Error(t, err)
	assert.Equal(t, "passwords do not match", fieldErrors(err)["password"])

	form.Confirm = "Secret1!"
	assert.NoError(t, validate(t, &form))
}

func TestRegisterFormFieldRules(t *testing.T) {
	base := RegisterForm{
		Name:     "Alice",
		Username: "alice",
		Email:    "a@example.com",
		Password: "Secret1!",
		Confirm:  "Secret1!",
	}

	tests := []struct {
		name   string
		mutate func(*RegisterForm)
		field  string
	}{
		{"missing name", func(f *RegisterForm) { f.Name = "" }, "name"},
		{"name too long", func(f *RegisterForm) { f.Name = strings.Repeat("a", 51) }, "name"},
		{"username too short", func(f *RegisterForm) { f.Username = "abc" }, "username"},
		{"username too long", func(f *RegisterForm) { f.Username = strings.Repeat("a", 26) }, "username"},
		{"email too short", func(f *RegisterForm) { f.Email = "a@b.c" }, "email"},
		{"email too long", func(f *RegisterForm) { f.Email = strings.Repeat("a", 49) + "@example.com" }, "email"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			form := base
			tc.mutate(&form)
			err := validate(t, &form)
			require.Error(t, err)
			assert.Contains(t, fieldErrors(err), tc.field)
		})
	}
}

func TestArticleFormBodyBoundary(t *testing.T) {
	form := ArticleForm{Title: "Hi", Body: strings.Repeat("x", 29)}
	err := validate(t, &form)
	require.Error(t, err)
	assert.Contains(t, fieldErrors(err), "body")

	form.Body = strings.Repeat("x", 30)
	assert.NoError(t, validate(t, &form))
}

func TestArticleFormTitleRules(t *testing.T) {
	body := strings.Repeat("x", 30)

	err := validate(t, &ArticleForm{Title: "", Body: body})
	require.Error(t, err)
	assert.Equal(t, "This field is required", fieldErrors(err)["title"])

	err = validate(t, &ArticleForm{Title: strings.Repeat("t", 201), Body: body})
	require.Error(t, err)
	assert.Contains(t, fieldErrors(err), "title")

	assert.NoError(t, validate(t, &ArticleForm{Title: strings.Repeat("t", 200), Body: body}))
}
