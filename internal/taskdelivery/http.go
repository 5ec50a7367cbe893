// Package taskdelivery manages delivery layer of tasks.
package taskdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yash261/banking-app/internal/domain"
	"github.com/yash261/banking-app/pkg/errorspkg"
	"github.com/yash261/banking-app/pkg/web"
)

// Service provides service layer interface needed by task delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package taskdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateTaskParams) (domain.Task, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, id uuid.UUID, arg domain.CreateTaskParams) (domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Handler facilitates task delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns task handler.
func NewHandler(ts Service) *Handler {
	return &Handler{
		service: ts,
	}
}

type taskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type idRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type data struct {
	Task domain.Task `json:"task"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

// Create handles http request to create a task.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req taskRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(err)})

		return
	}

	arg := domain.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}

	task, err := h.service.Create(ctx, arg)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{task}})
}

// Get handles http request to get a task.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	id, ok := bindID(gctx)
	if !ok {
		return
	}

	task, err := h.service.Get(ctx, id)
	if err != nil {
		if err == domain.ErrTaskNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{task}})
}

type dataTasks struct {
	Tasks []domain.Task `json:"tasks"`
}

type responseTasks struct {
	Data dataTasks `json:"data,omitempty"`
}

// List handles http request to list all tasks.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	tasks, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseTasks{Data: dataTasks{tasks}})
}

// Update handles http request to update a task.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	id, ok := bindID(gctx)
	if !ok {
		return
	}

	var req taskRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(err)})

		return
	}

	arg := domain.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}

	task, err := h.service.Update(ctx, id, arg)
	if err != nil {
		if err == domain.ErrTaskNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{task}})
}

// Delete handles http request to delete a task.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	id, ok := bindID(gctx)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		if err == domain.ErrTaskNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{})
}

func bindID(gctx *gin.Context) (uuid.UUID, bool) {
	l := zerolog.Ctx(gctx.Request.Context())

	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(err)})

		return uuid.UUID{}, false
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return uuid.UUID{}, false
	}

	return id, true
}
