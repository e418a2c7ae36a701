package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Amount
	}{
		{name: "string", input: `{"amount":"50"}`, want: "50"},
		{name: "number", input: `{"amount":50}`, want: "50"},
		{name: "decimal number", input: `{"amount":12.34}`, want: "12.34"},
		{name: "null", input: `{"amount":null}`, want: ""},
		{name: "non numeric string passes through", input: `{"amount":"abc"}`, want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				Amount Amount `json:"amount"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.input), &payload))
			assert.Equal(t, tt.want, payload.Amount)
		})
	}
}
