package dto

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindTeller(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req TellerRequest
	return c.ShouldBindJSON(&req)
}

func TestMoneyValidator(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{"whole dollars", "100", false},
		{"two decimals", "42.50", false},
		{"one decimal", "0.5", false},
		{"zero", "0", true},
		{"negative", "-5.00", true},
		{"sub-cent precision", "1.001", true},
		{"not a number", "ten dollars", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(map[string]string{"amount": tt.amount})
			require.NoError(t, err)

			bindErr := bindTeller(t, string(body))
			if tt.wantErr {
				assert.Error(t, bindErr)
			} else {
				assert.NoError(t, bindErr)
			}
		})
	}
}

func TestParseMoney(t *testing.T) {
	assert.Equal(t, "42.5", ParseMoney("42.50").String())
	assert.True(t, ParseMoney("garbage").IsZero())
}
