// Package transferrepo manages repository layer of transfers.
package transferrepo

import (
	"bytes"
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/yash261/banking-app/internal/domain"
	"github.com/yash261/banking-app/internal/userrepo"
	"github.com/yash261/banking-app/pkg/dbpkg"
	"github.com/yash261/banking-app/pkg/errorspkg"
)

// RepoPGS facilitates transfer repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns transfer RepoPGS bound to an already open transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns transfer RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const createQuery = `
INSERT INTO
    transfers (from_user_id, to_user_id, amount)
VALUES
    ($1, $2, $3)
RETURNING id, from_user_id, to_user_id, amount, created_at
`

// Create creates the transfer record and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateTransferParams) (domain.Transfer, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.FromUserID, arg.ToUserID, arg.Amount)

	var t domain.Transfer
	err := row.Scan(
		&t.ID,
		&t.FromUserID,
		&t.ToUserID,
		&t.Amount,
		&t.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx context.Context, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "transfers_from_user_id_fkey":
				return t, domain.ErrUserNotFound
			case "transfers_to_user_id_fkey":
				return t, domain.ErrUserNotFound
			case "transfers_amount_check":
				return t, domain.ErrInvalidAmount
			}
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const getQuery = `
SELECT
	id, from_user_id, to_user_id, amount, created_at
FROM transfers
WHERE id = $1
`

// Get returns the transfer with the given id.
func (r *RepoPGS) Get(ctx context.Context, id uuid.UUID) (domain.Transfer, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var t domain.Transfer

	err := row.Scan(
		&t.ID,
		&t.FromUserID,
		&t.ToUserID,
		&t.Amount,
		&t.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return t, domain.ErrTransferNotFound
		}

		l.Error().Err(err).Send()

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const listByUserQuery = `
SELECT
	id, from_user_id, to_user_id, amount, created_at
FROM transfers
WHERE
    from_user_id = $1 OR to_user_id = $1
ORDER BY created_at, id
`

// ListByUser returns all transfers where the given user is sender or receiver.
func (r *RepoPGS) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Transfer, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByUserQuery, userID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Transfer{}

	for rows.Next() {
		var t domain.Transfer
		if err := rows.Scan(
			&t.ID,
			&t.FromUserID,
			&t.ToUserID,
			&t.Amount,
			&t.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

// Transfer moves money between two users.
//
// It creates the ledger record and updates both balances within a single
// database transaction so that either all three writes commit or none do.
func (r *RepoPGS) Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.TransferTxResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	txRepo := NewTxRepoPGS(tx)
	userRepo := userrepo.NewRepoPGS(tx)

	result.Transfer, err = txRepo.Create(ctx, arg)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.TransferTxResult{}, err
	}

	var fromUser, toUser domain.User
	// To avoid deadlocks execute balance updates in consistent id order
	if bytes.Compare(arg.FromUserID[:], arg.ToUserID[:]) < 0 {
		argAddBalance := addBalanceParams{
			user1ID: arg.FromUserID,
			amount1: "-" + arg.Amount,
			user2ID: arg.ToUserID,
			amount2: arg.Amount,
		}

		fromUser, toUser, err = addBalances(ctx, userRepo, argAddBalance)
	} else {
		argAddBalance := addBalanceParams{
			user1ID: arg.ToUserID,
			amount1: arg.Amount,
			user2ID: arg.FromUserID,
			amount2: "-" + arg.Amount,
		}

		toUser, fromUser, err = addBalances(ctx, userRepo, argAddBalance)
	}

	if err != nil {
		l.Error().Err(err).Send()
		return domain.TransferTxResult{}, err
	}

	result.FromUser, result.ToUser = fromUser, toUser

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return domain.TransferTxResult{}, errorspkg.ErrInternal
	}

	return result, nil
}

type addBalanceParams struct {
	user1ID uuid.UUID
	amount1 string
	user2ID uuid.UUID
	amount2 string
}

func addBalances(ctx context.Context, r *userrepo.RepoPGS, arg addBalanceParams) (domain.User, domain.User, error) {
	user1, err := r.AddBalance(ctx, arg.amount1, arg.user1ID)
	if err != nil {
		return domain.User{}, domain.User{}, err
	}

	user2, err := r.AddBalance(ctx, arg.amount2, arg.user2ID)
	if err != nil {
		return domain.User{}, domain.User{}, err
	}

	return user1, user2, nil
}
