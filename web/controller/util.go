package controller

import (
	"net/http"

	"github.com/gopress-cms/gopress/logger"
	"github.com/gopress-cms/gopress/web/session"

	"github.com/gin-gonic/gin"
)

// html renders a template with the session state and pending flashes
// merged into the data.
func html(c *gin.Context, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["title"] = title
	if _, ok := data["errors"]; !ok {
		// templates chain through .errors; keep the lookup total
		data["errors"] = map[string]string{}
	}
	data["logged_in"] = session.IsLogin(c)
	data["username"] = session.GetLoginUser(c)
	data["flashes"] = session.Flashes(c)
	c.HTML(http.StatusOK, name, data)
}

// redirect sends the client elsewhere after an effect so a refresh
// never replays the POST.
func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// abortWithStoreError ends the request on an unexpected persistence
// failure. There is no recovery path at this boundary.
func abortWithStoreError(c *gin.Context, err error) {
	logger.Error("store failure:", err)
	c.AbortWithStatus(http.StatusInternalServerError)
}
