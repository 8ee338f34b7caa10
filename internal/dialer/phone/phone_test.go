package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantCanonical string
		wantKey       string
	}{
		{
			name:          "formatted US number",
			input:         "(415) 555-0100",
			wantCanonical: "+14155550100",
			wantKey:       "4155550100",
		},
		{
			name:          "bare ten digits",
			input:         "4155550100",
			wantCanonical: "+14155550100",
			wantKey:       "4155550100",
		},
		{
			name:          "eleven digits with leading one",
			input:         "14155550100",
			wantCanonical: "+14155550100",
			wantKey:       "4155550100",
		},
		{
			name:          "already canonical",
			input:         "+1 415 555 0100",
			wantCanonical: "+14155550100",
			wantKey:       "4155550100",
		},
		{
			name:          "dots and dashes",
			input:         "415.555.0100",
			wantCanonical: "+14155550100",
			wantKey:       "4155550100",
		},
		{
			name:          "international number passes through",
			input:         "+44 20 7946 0958",
			wantCanonical: "+442079460958",
			wantKey:       "2079460958",
		},
		{
			name:          "short number passes through",
			input:         "555-0100",
			wantCanonical: "+5550100",
			wantKey:       "5550100",
		},
		{
			name:          "empty input yields degenerate form",
			input:         "",
			wantCanonical: "+",
			wantKey:       "",
		},
		{
			name:          "non-numeric input yields degenerate form",
			input:         "not a phone",
			wantCanonical: "+",
			wantKey:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			assert.Equal(t, tt.wantCanonical, got.Canonical)
			assert.Equal(t, tt.wantKey, got.Key)
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"(415) 555-0100", "14155550100", "+44 20 7946 0958", "555-0100"}

	for _, input := range inputs {
		first := Normalize(input)
		second := Normalize(first.Canonical)
		assert.Equal(t, first.Canonical, second.Canonical, "input %q", input)
		assert.Equal(t, first.Key, second.Key, "input %q", input)
	}
}

func TestNormalizeEquivalentFormsShareKey(t *testing.T) {
	forms := []string{"(415) 555-0100", "4155550100", "1-415-555-0100", "+14155550100"}

	want := Normalize(forms[0]).Key
	for _, form := range forms[1:] {
		assert.Equal(t, want, Normalize(form).Key, "form %q", form)
	}
}
