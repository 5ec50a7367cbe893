// Package userservice manages business logic layer of users.
package userservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yash261/banking-app/internal/domain"
	"github.com/yash261/banking-app/pkg/errorspkg"
	"github.com/yash261/banking-app/pkg/passpkg"
)

// SignupBalance is the starting balance of every signed up user.
const SignupBalance = "500"

// SeedBalance is the starting balance of the bootstrap user.
const SeedBalance = "1000"

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateUserParams) (domain.User, error)
	Get(ctx context.Context, username string) (domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}

// Service facilitates user service layer logic.
type Service struct {
	repo Repo
}

// New returns user service struct to manage user business logic.
func New(ur Repo) *Service {
	return &Service{
		repo: ur,
	}
}

// NewUserWithoutPassword returns user with removed sensitive data.
func NewUserWithoutPassword(u domain.User) domain.UserWithoutPassword {
	return domain.UserWithoutPassword{
		ID:        u.ID,
		Username:  u.Username,
		Balance:   u.Balance,
		CreatedAt: u.CreatedAt,
	}
}

// Signup creates a user with the starting balance and returns it.
func (s *Service) Signup(ctx context.Context, username, password string) (domain.UserWithoutPassword, error) {
	l := zerolog.Ctx(ctx)

	var result domain.UserWithoutPassword

	hashedPassword, err := passpkg.Hash(password)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	arg := domain.CreateUserParams{
		Username:       username,
		HashedPassword: hashedPassword,
		Balance:        SignupBalance,
	}

	gotUser, err := s.repo.Create(ctx, arg)
	if err != nil {
		return result, err
	}

	result = NewUserWithoutPassword(gotUser)

	return result, nil
}

// Login checks the password for the given username and returns the user.
// Unknown usernames and wrong passwords both return ErrInvalidCredentials
// so that a failed login does not reveal whether the username exists.
func (s *Service) Login(ctx context.Context, username, password string) (domain.UserWithoutPassword, error) {
	l := zerolog.Ctx(ctx)

	var response domain.UserWithoutPassword

	gotUser, err := s.repo.Get(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return response, domain.ErrInvalidCredentials
		}

		return response, err
	}

	if err := passpkg.Check(password, gotUser.HashedPassword); err != nil {
		l.Warn().Err(err).Send()
		return response, domain.ErrInvalidCredentials
	}

	response = NewUserWithoutPassword(gotUser)

	return response, nil
}

// GetByID returns the user with the given id.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domain.UserWithoutPassword, error) {
	gotUser, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.UserWithoutPassword{}, err
	}

	return NewUserWithoutPassword(gotUser), nil
}

// List returns all users without their password data.
func (s *Service) List(ctx context.Context) ([]domain.UserWithoutPassword, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.UserWithoutPassword, len(users))
	for i, u := range users {
		result[i] = NewUserWithoutPassword(u)
	}

	return result, nil
}

// EnsureSeedUser creates the bootstrap user with the seed balance
// when the user store is empty. Called once on startup.
func (s *Service) EnsureSeedUser(ctx context.Context, username, password string) error {
	l := zerolog.Ctx(ctx)

	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	hashedPassword, err := passpkg.Hash(password)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	arg := domain.CreateUserParams{
		Username:       username,
		HashedPassword: hashedPassword,
		Balance:        SeedBalance,
	}

	if _, err := s.repo.Create(ctx, arg); err != nil {
		return err
	}

	l.Info().Str("username", username).Msg("seeded initial user")

	return nil
}
