package subscriptions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/tennisclub/internal/domain"
	"github.com/GlebRadaev/tennisclub/internal/dto"
	"github.com/GlebRadaev/tennisclub/pkg/auth"
	"github.com/GlebRadaev/tennisclub/pkg/utils"
)

var startDate = time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*SubscriptionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withMember(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.MemberIDKey, 1))
}

func TestCreateSubscriptionHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"number":"A-100","amount":2000}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, "A-100", 2000.0).Return(&domain.Subscription{
					ID: 10, MemberID: 1, Number: "A-100", InitialAmount: 2000, CurrentBalance: 2000,
					StartDate: startDate, Status: domain.SubscriptionActive,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `[]`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Non positive amount",
			body: `{"number":"A-100","amount":0}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, "A-100", 0.0).Return(nil, domain.ErrInvalidAmount)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: domain.ErrInvalidAmount.Error(),
		},
		{
			name: "Empty number",
			body: `{"number":" ","amount":2000}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, " ", 2000.0).Return(nil, domain.ErrInvalidSubscriptionNumber)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: domain.ErrInvalidSubscriptionNumber.Error(),
		},
		{
			name: "Duplicate number",
			body: `{"number":"A-100","amount":2000}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, "A-100", 2000.0).Return(nil, domain.ErrDuplicateSubscriptionNumber)
			},
			expectedCode:  http.StatusConflict,
			expectedError: domain.ErrDuplicateSubscriptionNumber.Error(),
		},
		{
			name: "Storage failure",
			body: `{"number":"A-100","amount":2000}`,
			prepareMock: func() {
				service.EXPECT().Create(gomock.Any(), 1, "A-100", 2000.0).Return(nil, domain.StorageFailure(errors.New("down")))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withMember(httptest.NewRequest(http.MethodPost, "/api/member/subscriptions", bytes.NewReader([]byte(tt.body))))
			rr := httptest.NewRecorder()
			handler.CreateSubscription(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.SubscriptionResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, dto.SubscriptionResponseDTO{
				ID: 10, Number: "A-100", InitialAmount: 2000, CurrentBalance: 2000,
				StartDate: "2024-05-20", Status: "active",
			}, resp)
		})
	}
}

func TestGetSubscriptionsHandler(t *testing.T) {
	handler, service := NewMock(t)
	endDate := startDate.AddDate(0, 3, 0)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expected     []dto.SubscriptionResponseDTO
	}{
		{
			name: "Subscriptions found",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), 1).Return([]domain.Subscription{
					{ID: 2, Number: "B-1", InitialAmount: 3000, CurrentBalance: 3000, StartDate: startDate, EndDate: &endDate, Status: domain.SubscriptionActive},
					{ID: 1, Number: "A-1", InitialAmount: 1500, CurrentBalance: 0, StartDate: startDate, Status: domain.SubscriptionExhausted},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expected: []dto.SubscriptionResponseDTO{
				{ID: 2, Number: "B-1", InitialAmount: 3000, CurrentBalance: 3000, StartDate: "2024-05-20", EndDate: "2024-08-20", Status: "active"},
				{ID: 1, Number: "A-1", InitialAmount: 1500, CurrentBalance: 0, StartDate: "2024-05-20", Status: "exhausted"},
			},
		},
		{
			name: "No subscriptions",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Service error",
			prepareMock: func() {
				service.EXPECT().List(gomock.Any(), 1).Return(nil, domain.ErrStorageFailure)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withMember(httptest.NewRequest(http.MethodGet, "/api/member/subscriptions", nil))
			rr := httptest.NewRecorder()
			handler.GetSubscriptions(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expected != nil {
				var resp []dto.SubscriptionResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expected, resp)
			}
		})
	}
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expected     *dto.BalanceResponseDTO
	}{
		{
			name: "Active subscription",
			prepareMock: func() {
				service.EXPECT().GetActive(gomock.Any(), 1).Return(&domain.Subscription{ID: 10, Number: "A-100", InitialAmount: 2000, CurrentBalance: 500}, nil)
			},
			expectedCode: http.StatusOK,
			expected:     &dto.BalanceResponseDTO{SubscriptionID: 10, Number: "A-100", Current: 500, Initial: 2000},
		},
		{
			name: "No active subscription",
			prepareMock: func() {
				service.EXPECT().GetActive(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Service error",
			prepareMock: func() {
				service.EXPECT().GetActive(gomock.Any(), 1).Return(nil, domain.ErrStorageFailure)
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withMember(httptest.NewRequest(http.MethodGet, "/api/member/balance", nil))
			rr := httptest.NewRecorder()
			handler.GetBalance(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expected != nil {
				var resp dto.BalanceResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, *tt.expected, resp)
			}
		})
	}
}
