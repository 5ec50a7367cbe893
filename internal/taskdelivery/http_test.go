package taskdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yash261/banking-app/internal/domain"
	"github.com/yash261/banking-app/pkg/errorspkg"
	"github.com/yash261/banking-app/pkg/randompkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(service Service) *gin.Engine {
	handler := NewHandler(service)

	engine := gin.New()
	engine.GET("/api/tasks", handler.List)
	engine.POST("/api/tasks", handler.Create)
	engine.GET("/api/tasks/:id", handler.Get)
	engine.PUT("/api/tasks/:id", handler.Update)
	engine.DELETE("/api/tasks/:id", handler.Delete)

	return engine
}

func randomTask() domain.Task {
	return domain.Task{
		ID:          uuid.New(),
		Title:       randompkg.String(10),
		Description: randompkg.String(20),
		Completed:   false,
		CreatedAt:   time.Now().Truncate(time.Second).UTC(),
	}
}

type taskResponse struct {
	Data struct {
		Task domain.Task `json:"task"`
	} `json:"data"`
	Error string `json:"error"`
}

func TestCreate(t *testing.T) {
	testTask := randomTask()

	testCases := []struct {
		name           string
		requestBody    gin.H
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name: "OK",
			requestBody: gin.H{
				"title":       testTask.Title,
				"description": testTask.Description,
				"completed":   testTask.Completed,
			},
			buildStubs: func(service *MockService) {
				arg := domain.CreateTaskParams{
					Title:       testTask.Title,
					Description: testTask.Description,
					Completed:   testTask.Completed,
				}
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(testTask, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "MissingTitle",
			requestBody: gin.H{"description": "no title"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "InternalError",
			requestBody: gin.H{
				"title": testTask.Title,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Task{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			server := newTestServer(service)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewReader(body))
			recorder := httptest.NewRecorder()

			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.wantStatusCode == http.StatusOK {
				var res taskResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))

				compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(testTask, res.Data.Task, compareCreatedAt); diff != "" {
					t.Errorf("res.Data.Task mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestGet(t *testing.T) {
	testTask := randomTask()

	testCases := []struct {
		name           string
		uri            string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			uri:  "/api/tasks/" + testTask.ID.String(),
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Eq(testTask.ID)).
					Times(1).
					Return(testTask, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "NotFound",
			uri:  "/api/tasks/" + uuid.NewString(),
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Task{}, domain.ErrTaskNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrTaskNotFound.Error(),
		},
		{
			name: "InvalidID",
			uri:  "/api/tasks/42",
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			server := newTestServer(service)

			req := httptest.NewRequest(http.MethodGet, tc.uri, nil)
			recorder := httptest.NewRecorder()

			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			var res taskResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))

			if tc.wantError != "" {
				require.Equal(t, tc.wantError, res.Error)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	testTask := randomTask()
	updated := testTask
	updated.Title = "updated"
	updated.Completed = true

	testCases := []struct {
		name           string
		uri            string
		requestBody    gin.H
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name: "OK",
			uri:  "/api/tasks/" + testTask.ID.String(),
			requestBody: gin.H{
				"title":       updated.Title,
				"description": updated.Description,
				"completed":   updated.Completed,
			},
			buildStubs: func(service *MockService) {
				arg := domain.CreateTaskParams{
					Title:       updated.Title,
					Description: updated.Description,
					Completed:   updated.Completed,
				}
				service.EXPECT().
					Update(gomock.Any(), gomock.Eq(testTask.ID), gomock.Eq(arg)).
					Times(1).
					Return(updated, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "NotFound",
			uri:  "/api/tasks/" + uuid.NewString(),
			requestBody: gin.H{
				"title": updated.Title,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Task{}, domain.ErrTaskNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:        "MissingTitle",
			uri:         "/api/tasks/" + testTask.ID.String(),
			requestBody: gin.H{"completed": true},
			buildStubs: func(service *MockService) {
				service.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			server := newTestServer(service)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPut, tc.uri, bytes.NewReader(body))
			recorder := httptest.NewRecorder()

			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatusCode, recorder.Code)
		})
	}
}

func TestDelete(t *testing.T) {
	testTask := randomTask()

	testCases := []struct {
		name           string
		uri            string
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name: "OK",
			uri:  "/api/tasks/" + testTask.ID.String(),
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Delete(gomock.Any(), gomock.Eq(testTask.ID)).
					Times(1).
					Return(nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "NotFound",
			uri:  "/api/tasks/" + uuid.NewString(),
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.ErrTaskNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			server := newTestServer(service)

			req := httptest.NewRequest(http.MethodDelete, tc.uri, nil)
			recorder := httptest.NewRecorder()

			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatusCode, recorder.Code)
		})
	}
}

func TestListTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	testTasks := []domain.Task{randomTask(), randomTask()}

	service := NewMockService(ctrl)
	service.EXPECT().List(gomock.Any()).Times(1).Return(testTasks, nil)

	server := newTestServer(service)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	recorder := httptest.NewRecorder()

	server.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var res struct {
		Data struct {
			Tasks []domain.Task `json:"tasks"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))

	compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
	if diff := cmp.Diff(testTasks, res.Data.Tasks, compareCreatedAt); diff != "" {
		t.Errorf("res.Data.Tasks mismatch (-want +got):\n%s", diff)
	}
}
