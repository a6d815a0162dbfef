package controller

import (
	"net/http"
	"strconv"

	"github.com/gopress-cms/gopress/database"
	"github.com/gopress-cms/gopress/logger"
	"github.com/gopress-cms/gopress/web/service"
	"github.com/gopress-cms/gopress/web/session"

	"github.com/gin-gonic/gin"
)

// DashboardController handles every protected route. The login guard
// wraps the whole group once; no handler here runs for an anonymous
// session.
type DashboardController struct {
	BaseController

	articleService *service.ArticleService
}

func NewDashboardController(g *gin.RouterGroup, articleService *service.ArticleService) *DashboardController {
	a := &DashboardController{articleService: articleService}
	a.initRouter(g)
	return a
}

func (a *DashboardController) initRouter(g *gin.RouterGroup) {
	g = g.Group("")
	g.Use(a.checkLogin)

	g.GET("/dashboard", a.dashboard)
	g.GET("/add_article", a.addArticlePage)
	g.POST("/add_article", a.addArticle)
	g.GET("/edit_article/:id", a.editArticlePage)
	g.POST("/edit_article/:id", a.editArticle)
	g.POST("/delete_article/:id", a.deleteArticle)
	g.GET("/logout", a.logout)
}

func (a *DashboardController) dashboard(c *gin.Context) {
	articles, err := a.articleService.GetAll()
	if err != nil {
		abortWithStoreError(c, err)
		return
	}
	if len(articles) == 0 {
		html(c, "dashboard.html", "Dashboard", gin.H{"msg": "No Articles Found"})
		return
	}
	html(c, "dashboard.html", "Dashboard", gin.H{"articles": articles})
}

func (a *DashboardController) addArticlePage(c *gin.Context) {
	html(c, "add_article.html", "Add Article", gin.H{"form": ArticleForm{}})
}

func (a *DashboardController) addArticle(c *gin.Context) {
	var form ArticleForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "add_article.html", "Add Article", gin.H{
			"errors": fieldErrors(err),
			"form":   form,
		})
		return
	}

	author := session.GetLoginUser(c)
	article, err := a.articleService.Create(form.Title, form.Body, author)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	logger.Infof("article %d created by %s", article.Id, author)
	_ = session.AddFlash(c, "success", "Article created")
	redirect(c, "/dashboard")
}

// editArticlePage prepopulates the edit form from the stored article.
func (a *DashboardController) editArticlePage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	article, err := a.articleService.GetByID(id)
	if database.IsNotFound(err) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	} else if err != nil {
		abortWithStoreError(c, err)
		return
	}
	html(c, "edit_article.html", "Edit Article", gin.H{
		"form": ArticleForm{Title: article.Title, Body: article.Body},
		"id":   article.Id,
	})
}

func (a *DashboardController) editArticle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	var form ArticleForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "edit_article.html", "Edit Article", gin.H{
			"errors": fieldErrors(err),
			"form":   form,
			"id":     id,
		})
		return
	}

	if err := a.articleService.Update(id, form.Title, form.Body); err != nil {
		abortWithStoreError(c, err)
		return
	}

	_ = session.AddFlash(c, "success", "Article Updated")
	redirect(c, "/dashboard")
}

// deleteArticle removes by id unconditionally. A missing id still
// redirects with the flash; the effect is idempotent.
func (a *DashboardController) deleteArticle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err == nil {
		if err := a.articleService.Delete(id); err != nil {
			abortWithStoreError(c, err)
			return
		}
	}

	_ = session.AddFlash(c, "success", "Article Deleted")
	redirect(c, "/dashboard")
}

func (a *DashboardController) logout(c *gin.Context) {
	if username := session.GetLoginUser(c); username != "" {
		logger.Infof("%s logged out", username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	_ = session.AddFlash(c, "success", "You are now logged out")
	redirect(c, "/login")
}
