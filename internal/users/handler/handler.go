package handler

import (
	"net/http"

	"gig_venues_backend/internal/users/service"
	"gig_venues_backend/internal/users/transport"
	"gig_venues_backend/platform/httpkit"
	"gig_venues_backend/platform/logger"
	"gig_venues_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
	log *logger.Logger
}

func New(svc *service.Service, val *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{svc: svc, val: val, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
}

func (h *Handler) Register(c *gin.Context) {
	var req transport.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpkit.ErrorResponse{Error: msgInvalidRequest})
		return
	}
	if err := h.val.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, httpkit.ErrorResponse{Error: msgValidationFailed})
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req.Username, req.Password, req.Email)
	if httpkit.HandleError(c, h.log, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, transport.RegisterResponse{
		User: transport.RegisteredUser{
			ID:       user.ID.String(),
			Username: user.Username,
			Email:    user.Email,
		},
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req transport.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpkit.ErrorResponse{Error: msgInvalidRequest})
		return
	}
	if err := h.val.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, httpkit.ErrorResponse{Error: msgValidationFailed})
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if httpkit.HandleError(c, h.log, err) {
		return
	}

	httpkit.OK(c, transport.LoginResponse{Token: token})
}
