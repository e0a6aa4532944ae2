package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bikestores/bikestore/internal/domain/errors"
	"github.com/bikestores/bikestore/internal/server/http/middleware"
)

const invalidLoginMessage = "Invalid email or password"

// AuthHandler processes login and logout.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// LoginPage handles GET /.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"email": ""})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	token, err := h.facade.Authenticate(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			c.HTML(http.StatusOK, "login.html", gin.H{
				"error": invalidLoginMessage,
				"email": email,
			})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	middleware.SetSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}
