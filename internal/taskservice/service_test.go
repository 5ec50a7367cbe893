package taskservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yash261/banking-app/internal/domain"
	"github.com/yash261/banking-app/pkg/randompkg"
)

func randomTask() domain.Task {
	return domain.Task{
		ID:          uuid.New(),
		Title:       randompkg.String(10),
		Description: randompkg.String(20),
		Completed:   false,
		CreatedAt:   time.Now().Truncate(time.Second).UTC(),
	}
}

func TestCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	service := New(repo)

	testTask := randomTask()
	arg := domain.CreateTaskParams{
		Title:       testTask.Title,
		Description: testTask.Description,
		Completed:   testTask.Completed,
	}

	repo.EXPECT().Create(gomock.Any(), gomock.Eq(arg)).Times(1).Return(testTask, nil)

	got, err := service.Create(context.Background(), arg)
	require.NoError(t, err)
	require.Equal(t, testTask, got)
}

func TestGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	service := New(repo)

	testTask := randomTask()

	repo.EXPECT().Get(gomock.Any(), gomock.Eq(testTask.ID)).Times(1).Return(testTask, nil)

	got, err := service.Get(context.Background(), testTask.ID)
	require.NoError(t, err)
	require.Equal(t, testTask, got)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Times(1).
		Return(domain.Task{}, domain.ErrTaskNotFound)

	_, err = service.Get(context.Background(), uuid.New())
	require.EqualError(t, err, domain.ErrTaskNotFound.Error())
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	service := New(repo)

	testTasks := []domain.Task{randomTask(), randomTask()}

	repo.EXPECT().List(gomock.Any()).Times(1).Return(testTasks, nil)

	got, err := service.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, testTasks, got)
}

func TestUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	service := New(repo)

	testTask := randomTask()
	arg := domain.CreateTaskParams{
		Title:       "updated",
		Description: testTask.Description,
		Completed:   true,
	}

	updated := testTask
	updated.Title = arg.Title
	updated.Completed = arg.Completed

	repo.EXPECT().Update(gomock.Any(), gomock.Eq(testTask.ID), gomock.Eq(arg)).
		Times(1).
		Return(updated, nil)

	got, err := service.Update(context.Background(), testTask.ID, arg)
	require.NoError(t, err)
	require.Equal(t, updated, got)
}

func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	service := New(repo)

	testTask := randomTask()

	repo.EXPECT().Delete(gomock.Any(), gomock.Eq(testTask.ID)).Times(1).Return(nil)
	require.NoError(t, service.Delete(context.Background(), testTask.ID))

	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(1).Return(domain.ErrTaskNotFound)
	require.EqualError(t, service.Delete(context.Background(), uuid.New()), domain.ErrTaskNotFound.Error())
}
