package transferdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yash261/banking-app/internal/domain"
	"github.com/yash261/banking-app/pkg/errorspkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestServer(service Service) *gin.Engine {
	handler := NewHandler(service)

	engine := gin.New()
	engine.POST("/api/transfer", handler.Create)
	engine.GET("/api/transactions/:id", handler.List)

	return engine
}

func TestCreate(t *testing.T) {
	fromUserID := uuid.New()
	toUserID := uuid.New()
	testAmount := "100"

	testTxResult := domain.TransferTxResult{
		Transfer: domain.Transfer{
			ID:         uuid.New(),
			FromUserID: fromUserID,
			ToUserID:   toUserID,
			Amount:     testAmount,
		},
	}

	testCases := []struct {
		name           string
		requestBody    gin.H
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			requestBody: gin.H{
				"from_user_id": fromUserID,
				"to_user_id":   toUserID,
				"amount":       testAmount,
			},
			buildStubs: func(service *MockService) {
				arg := domain.CreateTransferParams{
					FromUserID: fromUserID,
					ToUserID:   toUserID,
					Amount:     testAmount,
				}
				service.EXPECT().
					Transfer(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(testTxResult, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "MissingAmount",
			requestBody: gin.H{
				"from_user_id": fromUserID,
				"to_user_id":   toUserID,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Transfer(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "InsufficientBalance",
			requestBody: gin.H{
				"from_user_id": fromUserID,
				"to_user_id":   toUserID,
				"amount":       "100000",
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Transfer(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TransferTxResult{}, domain.ErrInsufficientBalance)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInsufficientBalance.Error(),
		},
		{
			name: "UnknownUser",
			requestBody: gin.H{
				"from_user_id": fromUserID,
				"to_user_id":   toUserID,
				"amount":       testAmount,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Transfer(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TransferTxResult{}, domain.ErrUserNotFound)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrUserNotFound.Error(),
		},
		{
			name: "SelfTransfer",
			requestBody: gin.H{
				"from_user_id": fromUserID,
				"to_user_id":   fromUserID,
				"amount":       testAmount,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Transfer(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TransferTxResult{}, domain.ErrSelfTransfer)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrSelfTransfer.Error(),
		},
		{
			name: "InternalError",
			requestBody: gin.H{
				"from_user_id": fromUserID,
				"to_user_id":   toUserID,
				"amount":       testAmount,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Transfer(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.TransferTxResult{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
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

			req := httptest.NewRequest(http.MethodPost, "/api/transfer", bytes.NewReader(body))
			recorder := httptest.NewRecorder()

			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			var res struct {
				Data struct {
					Transfer domain.TransferTxResult `json:"transfer"`
				} `json:"data"`
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))

			if tc.wantError != "" {
				require.Equal(t, tc.wantError, res.Error)
			}

			if tc.wantStatusCode == http.StatusOK {
				if diff := cmp.Diff(testTxResult, res.Data.Transfer); diff != "" {
					t.Errorf("res.Data.Transfer mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestList(t *testing.T) {
	userID := uuid.New()

	testTransfers := []domain.Transfer{
		{ID: uuid.New(), FromUserID: userID, ToUserID: uuid.New(), Amount: "100"},
		{ID: uuid.New(), FromUserID: uuid.New(), ToUserID: userID, Amount: "250"},
	}

	testCases := []struct {
		name           string
		uri            string
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name: "OK",
			uri:  "/api/transactions/" + userID.String(),
			buildStubs: func(service *MockService) {
				service.EXPECT().
					ListByUser(gomock.Any(), gomock.Eq(userID)).
					Times(1).
					Return(testTransfers, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "InvalidID",
			uri:  "/api/transactions/not-a-uuid",
			buildStubs: func(service *MockService) {
				service.EXPECT().ListByUser(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "InternalError",
			uri:  "/api/transactions/" + userID.String(),
			buildStubs: func(service *MockService) {
				service.EXPECT().
					ListByUser(gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
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

			req := httptest.NewRequest(http.MethodGet, tc.uri, nil)
			recorder := httptest.NewRecorder()

			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.wantStatusCode == http.StatusOK {
				var res struct {
					Data struct {
						Transfers []domain.Transfer `json:"transfers"`
					} `json:"data"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))

				if diff := cmp.Diff(testTransfers, res.Data.Transfers); diff != "" {
					t.Errorf("res.Data.Transfers mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
