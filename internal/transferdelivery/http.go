// Package transferdelivery manages delivery layer of transfers.
package transferdelivery

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

// Service provides service layer interface needed by transfer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transferdelivery
type Service interface {
	Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferTxResult, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Transfer, error)
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transfer handler.
func NewHandler(ts Service) *Handler {
	return &Handler{
		service: ts,
	}
}

type createRequest struct {
	FromUserID uuid.UUID `json:"from_user_id" binding:"required"`
	ToUserID   uuid.UUID `json:"to_user_id" binding:"required"`
	Amount     string    `json:"amount" binding:"required"`
}

type data struct {
	Transfer domain.TransferTxResult `json:"transfer"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

// Create handles http request to transfer money between two users.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(err)})

		return
	}

	arg := domain.CreateTransferParams{
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		Amount:     req.Amount,
	}

	result, err := h.service.Transfer(ctx, arg)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case
			domain.ErrInvalidAmount,
			domain.ErrNegativeAmount,
			domain.ErrSelfTransfer,
			domain.ErrInsufficientBalance,
			domain.ErrUserNotFound:
			gctx.JSON(http.StatusBadRequest, web.Error(err))

			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := response{
		Data: data{result},
	}

	gctx.JSON(http.StatusOK, res)
}

type listRequest struct {
	UserID string `uri:"id" binding:"required,uuid"`
}

type dataTransfers struct {
	Transfers []domain.Transfer `json:"transfers"`
}

type responseTransfers struct {
	Data dataTransfers `json:"data,omitempty"`
}

// List handles http request to list all transfers touching the given user.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req listRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: web.GetErrorMsg(err)})

		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	transfers, err := h.service.ListByUser(ctx, userID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := responseTransfers{
		Data: dataTransfers{transfers},
	}

	gctx.JSON(http.StatusOK, res)
}
