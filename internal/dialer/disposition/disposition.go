// Package disposition maps free-text call outcome labels to HubSpot call
// status codes.
package disposition

import "strings"

// Status is a HubSpot hs_call_status value.
type Status string

const (
	StatusCompleted Status = "COMPLETED"
	StatusNoAnswer  Status = "NO_ANSWER"
)

// MapStatus maps a dialer disposition label to a call status. Matching is
// case-sensitive substring in a fixed priority order; downstream HubSpot
// filters depend on the exact values produced. Unrecognized or empty
// labels default to NO_ANSWER.
func MapStatus(label string) Status {
	if label == "" {
		return StatusNoAnswer
	}
	switch {
	case strings.Contains(label, "Connected"):
		return StatusCompleted
	case strings.Contains(label, "Voicemail"):
		return StatusCompleted
	case strings.Contains(label, "Callback"):
		return StatusCompleted
	case strings.Contains(label, "No Answer"):
		return StatusNoAnswer
	default:
		return StatusNoAnswer
	}
}
