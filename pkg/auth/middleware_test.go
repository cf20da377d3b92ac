package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/tennisclub/internal/domain"
)

func TestMemberMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	resolver := NewMockResolver(ctrl)

	tests := []struct {
		name         string
		header       string
		prepareMock  func()
		expectedCode int
		expectedID   int
	}{
		{
			name:   "Known member",
			header: "123456789",
			prepareMock: func() {
				resolver.EXPECT().GetByExternalID(gomock.Any(), int64(123456789)).Return(&domain.Member{ID: 7, ExternalID: 123456789}, nil)
			},
			expectedCode: http.StatusOK,
			expectedID:   7,
		},
		{
			name:         "Missing header",
			header:       "",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Not a number",
			header:       "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Negative id",
			header:       "-5",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Unknown member",
			header: "42",
			prepareMock: func() {
				resolver.EXPECT().GetByExternalID(gomock.Any(), int64(42)).Return(nil, domain.ErrMemberNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "Storage failure",
			header: "42",
			prepareMock: func() {
				resolver.EXPECT().GetByExternalID(gomock.Any(), int64(42)).Return(nil, domain.StorageFailure(errors.New("down")))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			var gotID int
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID = r.Context().Value(MemberIDKey).(int)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/member/balance", nil)
			if tt.header != "" {
				req.Header.Set(MemberHeader, tt.header)
			}
			rr := httptest.NewRecorder()

			MemberMiddleware(resolver)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedID, gotID)
		})
	}
}
