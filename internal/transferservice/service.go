// Package transferservice manages business logic layer of transfers.
package transferservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/yash261/banking-app/internal/domain"
)

// Repo provides data access layer interface needed by transfer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Repo interface {
	Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferTxResult, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Transfer, error)
}

// UserService provides user lookups needed to validate transfer requests.
type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.UserWithoutPassword, error)
}

// Service facilitates transfer service layer logic.
type Service struct {
	repo        Repo
	userService UserService
}

// New returns transfer service struct to manage transfer business logic.
func New(tr Repo, us UserService) *Service {
	return &Service{
		repo:        tr,
		userService: us,
	}
}

func (s *Service) validRequest(ctx context.Context, arg domain.CreateTransferParams) error {
	l := zerolog.Ctx(ctx)

	amountDecimal, err := decimal.NewFromString(arg.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.ErrInvalidAmount
	}

	if amountDecimal.LessThanOrEqual(decimal.Zero) {
		return domain.ErrNegativeAmount
	}

	if arg.FromUserID == arg.ToUserID {
		return domain.ErrSelfTransfer
	}

	fromUser, err := s.userService.GetByID(ctx, arg.FromUserID)
	if err != nil {
		l.Info().Err(err).Send()
		return err
	}

	if _, err := s.userService.GetByID(ctx, arg.ToUserID); err != nil {
		l.Info().Err(err).Send()
		return err
	}

	currentFromBalance, err := decimal.NewFromString(fromUser.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return err
	}

	if currentFromBalance.LessThan(amountDecimal) {
		return domain.ErrInsufficientBalance
	}

	return nil
}

// Transfer checks if the transfer request is valid and then executes it.
// The repo applies the ledger insert and both balance updates atomically,
// so a failure at any step leaves balances and the ledger unchanged.
func (s *Service) Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferTxResult, error) {
	if err := s.validRequest(ctx, arg); err != nil {
		return domain.TransferTxResult{}, err
	}

	result, err := s.repo.Transfer(ctx, arg)
	if err != nil {
		return result, err
	}

	return result, nil
}

// ListByUser returns all transfers where the given user participated.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Transfer, error) {
	transfers, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return transfers, nil
}
