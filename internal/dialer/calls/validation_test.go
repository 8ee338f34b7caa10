package calls

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "clipbook-dialer/internal/common/errors"
)

func TestValidateLogCallPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "full payload",
			payload: `{"phone":"415-555-0100","name":"Jane Doe","duration":125,"disposition":"Connected"}`,
			wantErr: false,
		},
		{
			name:    "phone only",
			payload: `{"phone":"4155550100"}`,
			wantErr: false,
		},
		{
			name:    "unknown fields tolerated",
			payload: `{"phone":"4155550100","campaign":"q3-outbound"}`,
			wantErr: false,
		},
		{
			name:    "missing phone",
			payload: `{"name":"Jane Doe"}`,
			wantErr: true,
		},
		{
			name:    "empty phone",
			payload: `{"phone":""}`,
			wantErr: true,
		},
		{
			name:    "negative duration",
			payload: `{"phone":"4155550100","duration":-5}`,
			wantErr: true,
		},
		{
			name:    "duration not an integer",
			payload: `{"phone":"4155550100","duration":"125"}`,
			wantErr: true,
		},
		{
			name:    "not JSON",
			payload: `phone=4155550100`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogCallPayload([]byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
