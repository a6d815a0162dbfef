package controller

import (
	"errors"
	"strconv"

	"github.com/gopress-cms/gopress/database"
	"github.com/gopress-cms/gopress/logger"
	"github.com/gopress-cms/gopress/web/service"
	"github.com/gopress-cms/gopress/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request. Presence is the only rule;
// credential checking happens against the store.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// IndexController handles the public routes: informational pages,
// article reading, registration, and login.
type IndexController struct {
	BaseController

	userService    *service.UserService
	articleService *service.ArticleService

	sessionMaxAge int // minutes
}

func NewIndexController(g *gin.RouterGroup, userService *service.UserService, articleService *service.ArticleService, sessionMaxAge int) *IndexController {
	a := &IndexController{
		userService:    userService,
		articleService: articleService,
		sessionMaxAge:  sessionMaxAge,
	}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.home)
	g.GET("/about", a.about)
	g.GET("/articles", a.articles)
	g.GET("/article/:id", a.article)

	g.GET("/register", a.registerPage)
	g.POST("/register", a.register)
	g.GET("/login", a.loginPage)
	g.POST("/login", a.login)
}

func (a *IndexController) home(c *gin.Context) {
	html(c, "home.html", "Home", nil)
}

func (a *IndexController) about(c *gin.Context) {
	html(c, "about.html", "About", nil)
}

// articles lists every published article. An empty store is a message,
// not an error.
func (a *IndexController) articles(c *gin.Context) {
	articles, err := a.articleService.GetAll()
	if err != nil {
		abortWithStoreError(c, err)
		return
	}
	if len(articles) == 0 {
		html(c, "articles.html", "Articles", gin.H{"msg": "No Articles Found"})
		return
	}
	html(c, "articles.html", "Articles", gin.H{"articles": articles})
}

// article renders one article, or an empty page when the id is absent.
func (a *IndexController) article(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		html(c, "article.html", "Article", nil)
		return
	}
	article, err := a.articleService.GetByID(id)
	if database.IsNotFound(err) {
		html(c, "article.html", "Article", nil)
		return
	} else if err != nil {
		abortWithStoreError(c, err)
		return
	}
	html(c, "article.html", article.Title, gin.H{"article": article})
}

func (a *IndexController) registerPage(c *gin.Context) {
	html(c, "register.html", "Register", gin.H{"form": RegisterForm{}})
}

// register validates the submitted form and creates the user. Nothing
// is persisted unless validation fully passes.
func (a *IndexController) register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "register.html", "Register", gin.H{
			"errors": fieldErrors(err),
			"form":   form,
		})
		return
	}

	_, err := a.userService.Register(form.Name, form.Email, form.Username, form.Password)
	if errors.Is(err, service.ErrUsernameTaken) {
		html(c, "register.html", "Register", gin.H{
			"errors": map[string]string{"username": "Username already taken"},
			"form":   form,
		})
		return
	} else if err != nil {
		abortWithStoreError(c, err)
		return
	}

	logger.Infof("user %s registered", form.Username)
	_ = session.AddFlash(c, "success", "You are now registered and can login")
	redirect(c, "/register")
}

func (a *IndexController) loginPage(c *gin.Context) {
	html(c, "login.html", "Login", nil)
}

// login checks the credentials and establishes the session. The
// unknown-username and wrong-password messages stay distinct, matching
// the behavior this site inherited.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		html(c, "login.html", "Login", gin.H{"error": "Invalid form data"})
		return
	}

	user, err := a.userService.CheckUser(form.Username, form.Password)
	switch {
	case errors.Is(err, service.ErrUnknownUsername):
		html(c, "login.html", "Login", gin.H{"error": "username not found"})
		return
	case errors.Is(err, service.ErrWrongPassword):
		logger.Warningf("failed login for %q", form.Username)
		html(c, "login.html", "Login", gin.H{"error": "Invalid login"})
		return
	case err != nil:
		abortWithStoreError(c, err)
		return
	}

	_ = session.SetMaxAge(c, a.sessionMaxAge*60)
	if err := session.SetLoginUser(c, user.Username); err != nil {
		logger.Warning("unable to save session:", err)
	}
	_ = session.AddFlash(c, "success", "You are now logged in")
	logger.Infof("%s logged in", user.Username)
	redirect(c, "/dashboard")
}
