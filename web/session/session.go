// Package session holds the login state and flash messages of one
// client, backed by a signed cookie.
package session

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUser = "LOGIN_USER"

// Flash is a one-time notice shown on the next rendered page.
// Category is a presentation hint (success, danger).
type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

// SetLoginUser marks the session as authenticated for username.
func SetLoginUser(c *gin.Context, username string) error {
	s := sessions.Default(c)
	s.Set(loginUser, username)
	return s.Save()
}

// SetMaxAge sets the session cookie lifetime in seconds.
func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

// GetLoginUser returns the authenticated username, or "" when the
// session is anonymous.
func GetLoginUser(c *gin.Context) string {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if username, ok := obj.(string); ok {
			return username
		}
	}
	return ""
}

// IsLogin reports whether the session is authenticated. An absent or
// expired session is anonymous, never an error.
func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != ""
}

// ClearSession drops the login state. The cookie itself stays so a
// flash queued afterwards still reaches the next page.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Delete(loginUser)
	return s.Save()
}

// AddFlash queues a one-time message for the next rendered page.
func AddFlash(c *gin.Context, category, message string) error {
	s := sessions.Default(c)
	s.AddFlash(Flash{Category: category, Message: message})
	return s.Save()
}

// Flashes drains and returns the queued messages.
func Flashes(c *gin.Context) []Flash {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	// reading flashes mutates the session, persist the drain
	_ = s.Save()
	return flashes
}
