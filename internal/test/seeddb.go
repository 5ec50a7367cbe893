// Package test provides shared test helpers.
package test

import (
	"context"
	"testing"

	"github.com/yash261/banking-app/internal/domain"
	"github.com/yash261/banking-app/internal/taskrepo"
	"github.com/yash261/banking-app/internal/userrepo"
	"github.com/yash261/banking-app/pkg/dbpkg"
	"github.com/yash261/banking-app/pkg/passpkg"
	"github.com/yash261/banking-app/pkg/randompkg"
)

// SeedUser creates a random user with the given balance inside a test transaction.
func SeedUser(t *testing.T, tx dbpkg.SQLInterface, balance string) domain.User {
	t.Helper()

	hashedPassword, err := passpkg.Hash(randompkg.String(16))
	if err != nil {
		t.Fatalf("passpkg.Hash(randompkg.String(16)) returned error: %v", err)
	}

	arg := domain.CreateUserParams{
		Username:       randompkg.Username(),
		HashedPassword: hashedPassword,
		Balance:        balance,
	}

	userRepo := userrepo.NewRepoPGS(tx)

	user, err := userRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("userRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return user
}

// SeedUserWith1000Balance creates a random user with 1000 on balance inside a test transaction.
func SeedUserWith1000Balance(t *testing.T, tx dbpkg.SQLInterface) domain.User {
	t.Helper()

	return SeedUser(t, tx, "1000")
}

// SeedTask creates a random task inside a test transaction.
func SeedTask(t *testing.T, tx dbpkg.SQLInterface) domain.Task {
	t.Helper()

	arg := domain.CreateTaskParams{
		Title:       randompkg.String(10),
		Description: randompkg.String(20),
		Completed:   false,
	}

	taskRepo := taskrepo.NewRepoPGS(tx)

	task, err := taskRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("taskRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return task
}
