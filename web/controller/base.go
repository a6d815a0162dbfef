// Package controller provides the HTTP handlers of the gopress site:
// public article pages, registration and login, and the authenticated
// dashboard behind the login guard.
package controller

import (
	"net/http"

	"github.com/gopress-cms/gopress/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides the login guard shared by protected routes.
type BaseController struct{}

// checkLogin refuses anonymous sessions before any protected handler
// runs, redirecting to the login page with a warning flash.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		_ = session.AddFlash(c, "danger", "Unauthorized, please login")
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Next()
}
