package disposition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapStatus(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  Status
	}{
		{name: "connected decision maker", label: "Connected - Decision Maker", want: StatusCompleted},
		{name: "connected gatekeeper", label: "Connected - Gatekeeper", want: StatusCompleted},
		{name: "voicemail", label: "Left Voicemail", want: StatusCompleted},
		{name: "callback", label: "Callback Requested", want: StatusCompleted},
		{name: "no answer", label: "No Answer", want: StatusNoAnswer},
		{name: "unrecognized label", label: "Wrong Number", want: StatusNoAnswer},
		{name: "empty label", label: "", want: StatusNoAnswer},
		{name: "lowercase connected does not match", label: "connected", want: StatusNoAnswer},
		{name: "connected wins over no answer", label: "Connected then No Answer", want: StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapStatus(tt.label))
		})
	}
}
