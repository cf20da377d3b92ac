package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithError(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondWithError(rr, http.StatusPaymentRequired, "insufficient funds")

	assert.Equal(t, http.StatusPaymentRequired, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "insufficient funds", resp.Message)
}

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		payload      interface{}
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Encodes payload",
			payload:      map[string]float64{"balance": 500},
			expectedCode: http.StatusOK,
			expectedBody: `{"balance":500}`,
		},
		{
			name:         "Unencodable payload",
			payload:      make(chan int),
			expectedCode: http.StatusInternalServerError,
			expectedBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			RespondWithJSON(rr, http.StatusOK, tt.payload)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, rr.Body.String())
		})
	}
}
