package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yaskovbs/My-Second-Project/internal/adapters/transport/http/dto"
	"github.com/yaskovbs/My-Second-Project/internal/app/user/service"
	customErrors "github.com/yaskovbs/My-Second-Project/internal/domain/user/errors"
)

type Handler struct {
	svc service.Service
	log *zap.Logger
}

func (h *Handler) Signup(c *gin.Context) {
	var body dto.SignupDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
		return
	}

	user, token, err := h.svc.Register(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		User:  dto.NewUserResponse(user),
		Token: token,
	})
}

func (h *Handler) Signin(c *gin.Context) {
	var body dto.SigninDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
		return
	}

	user, token, err := h.svc.Login(c.Request.Context(), body)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		User:  dto.NewUserResponse(user),
		Token: token,
	})
}

func (h *Handler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	user, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var body dto.UpdateDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
		return
	}

	user, err := h.svc.Update(c.Request.Context(), id, body)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "user deleted"})
}

func (h *Handler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid user id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	if ve, ok := customErrors.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid input", Errors: ve.Details})
		return
	}

	switch {
	case customErrors.IsAlreadyExists(err):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "username or email already in use"})
	case customErrors.IsInvalidArgument(err):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
	case customErrors.IsInvalidCredentials(err):
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "invalid credentials"})
	case customErrors.IsInvalidToken(err):
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "invalid or expired token"})
	case customErrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "user not found"})
	case customErrors.IsRateLimited(err):
		c.JSON(http.StatusTooManyRequests, dto.MessageResponse{Message: "rate limit exceeded"})
	default:
		h.log.Error("unhandled error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "internal server error"})
	}
}
