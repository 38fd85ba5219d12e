package handler

import (
	"net/http"

	"poemhub/internal/webapp/dto"
	"poemhub/internal/webapp/middleware"
	"poemhub/internal/webapp/service"
	"poemhub/internal/webapp/session"

	"github.com/gin-gonic/gin"
)

// loginErrorMessage is deliberately generic: it never reveals whether the
// username existed or the password was wrong.
const loginErrorMessage = "Invalid credentials"

type AuthHandler struct {
	authService service.AuthService
	store       session.Store
}

func NewAuthHandler(authService service.AuthService, store session.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
	}
}

// RegisterRoutes registers login/logout routes
func (h *AuthHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/login", h.LoginForm)
	router.POST("/login", h.Login)
	router.GET("/logout", h.Logout)
}

// LoginForm renders the login page
// GET /login
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Error": nil,
	})
}

// Login authenticates the admin and upgrades the session
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Error": loginErrorMessage,
		})
		return
	}

	admin, err := h.authService.Login(form.Username, form.Password)
	if err != nil {
		// no session mutation on failure
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Error": loginErrorMessage,
		})
		return
	}

	sess := middleware.GetSession(c)
	sess.Authenticate(admin.Username)
	if err := h.store.Save(c.Writer, c.Request, sess); err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Logout clears the entire session, including the anonymous reaction id.
// The visitor's past reactions stay in the ledger under the old id.
// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.store.Clear(c.Writer, c.Request); err != nil {
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}
	c.Redirect(http.StatusFound, "/")
}
