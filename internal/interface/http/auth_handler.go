package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-identity/internal/application"
	"github.com/oksasatya/go-ddd-identity/pkg/helpers"
	"github.com/oksasatya/go-ddd-identity/pkg/response"
)

// ScopeUser is requested at sign-in and required by the user routes.
const ScopeUser = "user"

type AuthHandler struct {
	signIn  *application.SignInUseCase
	cookies *helpers.Manager
	logger  *logrus.Logger
}

func NewAuthHandler(signIn *application.SignInUseCase, cookies *helpers.Manager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{signIn: signIn, cookies: cookies, logger: logger}
}

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// SignIn exchanges the credentials at the identity provider and stores the
// access token in the auth cookie. The token itself is not returned.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	scope := ScopeUser
	out, err := h.signIn.Execute(c.Request.Context(), application.SignInInput{
		Username: req.Email,
		Password: req.Password,
		Scope:    &scope,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	h.cookies.SetAccessToken(c, out.AccessToken, out.ExpiresIn)

	resp := response.Success(c, http.StatusOK, messageResponse{Message: "So far so good."}, "")
	c.JSON(resp.Status, resp)
}

// SignOut drops the auth cookie. The provider session is left to expire on
// its own.
func (h *AuthHandler) SignOut(c *gin.Context) {
	h.cookies.Clear(c)
	resp := response.Success(c, http.StatusOK, messageResponse{Message: "Signed out."}, "")
	c.JSON(resp.Status, resp)
}
