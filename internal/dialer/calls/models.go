package calls

// CallEvent is the inbound call-completion payload. Transient: built per
// request, discarded after dispatch. Duration is in seconds.
type CallEvent struct {
	Phone       string `json:"phone"`
	Name        string `json:"name,omitempty"`
	Company     string `json:"company,omitempty"`
	Title       string `json:"title,omitempty"`
	Disposition string `json:"disposition,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Duration    int    `json:"duration,omitempty"`
	LinkedIn    string `json:"linkedin,omitempty"`
}

// LogCallResult reports the identifiers produced by a successful log.
// ContactID is empty when no contact could be resolved.
type LogCallResult struct {
	CallID    string `json:"hubspotCallId"`
	ContactID string `json:"contactId,omitempty"`
}

// LastCall is the summary projection of the most recent call for a phone
// number. The body is returned raw, undecoded; Date and DurationMS are the
// remote store's string properties as-is.
type LastCall struct {
	Found      bool   `json:"found"`
	CallID     string `json:"callId,omitempty"`
	Status     string `json:"status,omitempty"`
	Title      string `json:"title,omitempty"`
	Body       string `json:"body,omitempty"`
	Date       string `json:"date,omitempty"`
	DurationMS string `json:"duration,omitempty"`
}

// LogEntry is one decoded row of the call log, shaped for display.
// Duration is whole seconds, rounded from the stored milliseconds.
type LogEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	Title       string `json:"title"`
	LinkedIn    string `json:"linkedin"`
	Disposition string `json:"disp"`
	Notes       string `json:"notes"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}
