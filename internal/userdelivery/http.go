// Package userdelivery manages delivery layer of users.
package userdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yash261/banking-app/internal/domain"
	"github.com/yash261/banking-app/pkg/errorspkg"
	"github.com/yash261/banking-app/pkg/web"
)

// Service provides service layer interface needed by user delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package userdelivery
type Service interface {
	Signup(ctx context.Context, username, password string) (domain.UserWithoutPassword, error)
	Login(ctx context.Context, username, password string) (domain.UserWithoutPassword, error)
	List(ctx context.Context) ([]domain.UserWithoutPassword, error)
}

// Handler facilitates user delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns user handler.
func NewHandler(us Service) *Handler {
	return &Handler{
		service: us,
	}
}

type credentialsRequest struct {
	Username string `json:"username" binding:"required,alphanum"`
	Password string `json:"password" binding:"required,min=4"`
}

type data struct {
	User domain.UserWithoutPassword `json:"user"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

// Signup handles http request to create a user.
func (h *Handler) Signup(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req credentialsRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(err)})

		return
	}

	createdUser, err := h.service.Signup(ctx, req.Username, req.Password)
	if err != nil {
		if err == domain.ErrUsernameAlreadyExists {
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := response{
		Data: data{createdUser},
	}

	gctx.JSON(http.StatusOK, res)
}

// Login handles http login request and returns the user data.
func (h *Handler) Login(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req credentialsRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(err)})

		return
	}

	user, err := h.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			gctx.JSON(http.StatusUnauthorized, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := response{
		Data: data{user},
	}

	gctx.JSON(http.StatusOK, res)
}

type dataUsers struct {
	Users []domain.UserWithoutPassword `json:"users"`
}

type responseUsers struct {
	Data dataUsers `json:"data,omitempty"`
}

// List handles http request to list all users.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	users, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := responseUsers{
		Data: dataUsers{users},
	}

	gctx.JSON(http.StatusOK, res)
}
