package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/tardigrade-project/user-service/internal/application"
	"github.com/tardigrade-project/user-service/internal/domain/entity"
	"github.com/tardigrade-project/user-service/pkg/response"
	"github.com/tardigrade-project/user-service/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

type updateUserRequest struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *entity.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.CreateUser(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		h.writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toUserResponse(u), "user created", nil)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	u, err := h.Svc.GetUser(c.Request.Context(), id)
	if err != nil {
		h.writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u), "user", nil)
}

func (h *UserHandler) List(c *gin.Context) {
	skip, err := queryInt(c, "skip", 0)
	if err != nil || skip < 0 {
		response.Error[any](c, http.StatusBadRequest, "invalid skip parameter", nil)
		return
	}
	limit, err := queryInt(c, "limit", userapp.DefaultListLimit)
	if err != nil || limit < 1 || limit > 1000 {
		response.Error[any](c, http.StatusBadRequest, "invalid limit parameter", nil)
		return
	}

	users, err := h.Svc.ListUsers(c.Request.Context(), skip, limit)
	if err != nil {
		h.writeDomainError(c, err)
		return
	}
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	response.Success(c, http.StatusOK, out, "users", map[string]any{"skip": skip, "limit": limit, "count": len(out)})
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.UpdateUser(c.Request.Context(), id, userapp.UpdateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u), "user updated", nil)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if _, err := h.Svc.DeleteUser(c.Request.Context(), id); err != nil {
		h.writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusBadRequest, "invalid user id", nil)
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, def int) (int, error) {
	v := c.Query(name)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

// writeDomainError maps a domain failure to the transport status:
// validation → 400, not found → 404, conflict → 409. Anything else is a
// storage or infrastructure failure and surfaces as a generic 500.
func (h *UserHandler) writeDomainError(c *gin.Context, err error) {
	var (
		invalidEmail *entity.InvalidEmailError
		invalidName  *entity.InvalidNameError
		notFound     *entity.UserNotFoundError
		emailExists  *entity.EmailAlreadyExistsError
	)
	switch {
	case errors.As(err, &invalidEmail):
		response.Error[any](c, http.StatusBadRequest, invalidEmail.Error(), nil)
	case errors.As(err, &invalidName):
		response.Error[any](c, http.StatusBadRequest, invalidName.Error(), nil)
	case errors.As(err, &notFound):
		response.Error[any](c, http.StatusNotFound, notFound.Error(), nil)
	case errors.As(err, &emailExists):
		response.Error[any](c, http.StatusConflict, emailExists.Error(), nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}
