package handlers

import (
	"net/http"

	"github.com/daniilsm/sickday-go/internal/application"
	"github.com/daniilsm/sickday-go/internal/domain/user"
	"github.com/daniilsm/sickday-go/internal/response"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *application.AuthService
}

func NewAuthHandler(service *application.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type authResponse struct {
	User   *user.User            `json:"user"`
	Tokens application.TokenPair `json:"tokens"`
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	u, tokens, err := h.service.Register(input)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusCreated, authResponse{User: u, Tokens: tokens})
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	u, tokens, err := h.service.Login(input.Login, input.Password)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{User: u, Tokens: tokens})
}

// POST /auth/refresh. The token comes from the refreshToken cookie or the
// body, in that order.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var input user.RefreshInput
	_ = c.ShouldBindJSON(&input)

	tokenStr := input.RefreshToken
	if cookie, err := c.Cookie("refreshToken"); err == nil && cookie != "" {
		tokenStr = cookie
	}
	if tokenStr == "" {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "refresh token required"})
		return
	}

	u, tokens, err := h.service.Refresh(tokenStr)
	if err != nil {
		abortWith(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{User: u, Tokens: tokens})
}
