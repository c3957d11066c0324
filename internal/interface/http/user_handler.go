package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-identity/internal/application"
	"github.com/oksasatya/go-ddd-identity/pkg/mailer"
	mailtpl "github.com/oksasatya/go-ddd-identity/pkg/mailer/templates"
	"github.com/oksasatya/go-ddd-identity/pkg/response"
)

const publishTimeout = 5 * time.Second

// JobPublisher puts an email job on the queue. *helpers.RabbitQueue satisfies it.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type UserHandler struct {
	create  *application.CreateUserUseCase
	getInfo *application.GetUserInfoUseCase
	logger  *logrus.Logger

	pub     JobPublisher
	welcome mailtpl.EmailData
}

func NewUserHandler(create *application.CreateUserUseCase, getInfo *application.GetUserInfoUseCase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{create: create, getInfo: getInfo, logger: logger}
}

// WithWelcomeEmail enables a welcome email job after each registration.
// base carries the company fields; the user fields are filled per request.
func (h *UserHandler) WithWelcomeEmail(pub JobPublisher, base mailtpl.EmailData) *UserHandler {
	h.pub = pub
	h.welcome = base
	return h
}

// Email and name are left to the domain value objects so clients get the
// same messages whichever adapter they go through.
type createUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type createUserResponse struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

type userInfoResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	out, err := h.create.Execute(c.Request.Context(), application.CreateUserInput{Email: req.Email, Name: req.Name})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	h.enqueueWelcome(c, out.UserID.String(), req)

	resp := response.Success(c, http.StatusOK, createUserResponse{
		UserID:  out.UserID.String(),
		Message: "User created successfully",
	}, "")
	c.JSON(resp.Status, resp)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	out, err := h.getInfo.Execute(c.Request.Context(), application.GetUserInfoInput{UserID: c.Param("userId")})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	resp := response.Success(c, http.StatusOK, userInfoResponse{
		UserID: out.UserID.String(),
		Email:  out.Email,
		Name:   out.Name,
	}, "")
	c.JSON(resp.Status, resp)
}

// enqueueWelcome is best effort: the user already exists, so a queue failure
// is logged and the request still succeeds.
func (h *UserHandler) enqueueWelcome(c *gin.Context, userID string, req createUserRequest) {
	if h.pub == nil {
		return
	}
	data := h.welcome
	data.UserID = userID
	data.Name = req.Name
	data.Email = req.Email
	job := mailer.EmailJob{
		To:       req.Email,
		Template: mailtpl.Welcome,
		Data:     mailtpl.ToMap(data),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), publishTimeout)
	defer cancel()
	if err := h.pub.PublishJSON(ctx, job); err != nil && h.logger != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"user_id":    userID,
		}).WithError(err).Warn("failed to enqueue welcome email")
	}
}
