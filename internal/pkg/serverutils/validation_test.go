package serverutils

import (
	"errors"
	"testing"

	"ventures-chat-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestValidateRequestCompletionRateBounds(t *testing.T) {
	cases := []struct {
		name  string
		rate  *float64
		valid bool
	}{
		{"absent", nil, true},
		{"zero", floatPtr(0), true},
		{"fraction", floatPtr(0.65), true},
		{"full", floatPtr(1), true},
		{"percentage scale rejected", floatPtr(40), false},
		{"just over one", floatPtr(1.01), false},
		{"negative", floatPtr(-0.1), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRequest(dto.SyncDataRequest{
				SessionId:      "sess-1",
				CompletionRate: tc.rate,
			})
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ve *ValidationError
			assert.True(t, errors.As(err, &ve))
		})
	}
}

func TestValidateRequestRequiresSessionID(t *testing.T) {
	err := ValidateRequest(dto.SyncDataRequest{})
	require.Error(t, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Error(), "SessionId")
}
