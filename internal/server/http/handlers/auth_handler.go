package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/cars/internal/domain/errors"
	pkgAuth "github.com/polkiloo/cars/internal/pkg/auth"
	"github.com/polkiloo/cars/internal/server/http/dto"
	"github.com/polkiloo/cars/internal/server/http/middleware"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/user/register.
func (h *AuthHandler) Register(c *gin.Context) {
	h.issue(c, h.facade.Register, func(err error) int {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials), errors.Is(err, pkgAuth.ErrPasswordTooLong):
			return http.StatusBadRequest
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			return http.StatusConflict
		}
		return http.StatusInternalServerError
	})
}

// Login handles POST /api/user/login.
func (h *AuthHandler) Login(c *gin.Context) {
	h.issue(c, h.facade.Authenticate, func(err error) int {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			return http.StatusUnauthorized
		}
		return http.StatusInternalServerError
	})
}

type tokenIssuer func(ctx context.Context, login, password string) (string, error)

func (h *AuthHandler) issue(c *gin.Context, issuer tokenIssuer, status func(error) int) {
	var req dto.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := issuer(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		code := status(err)
		if code == http.StatusInternalServerError {
			_ = c.Error(err)
		}
		c.Status(code)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
