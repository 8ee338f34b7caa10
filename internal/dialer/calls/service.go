// Package calls orchestrates the dialer-to-HubSpot flow: logging new call
// records, looking up the most recent call for a number, and listing the
// log this tool has written.
package calls

import (
	"context"
	"strconv"
	"strings"
	"time"

	apperrors "clipbook-dialer/internal/common/errors"
	"clipbook-dialer/internal/common/hubspot"
	"clipbook-dialer/internal/common/logger"
	"clipbook-dialer/internal/common/metrics"
	"clipbook-dialer/internal/dialer/callbody"
	"clipbook-dialer/internal/dialer/contact"
	"clipbook-dialer/internal/dialer/disposition"
	"clipbook-dialer/internal/dialer/phone"
)

const (
	// titleMarker tags every record this tool creates so the call log can
	// be filtered down to dialer-written entries.
	titleMarker = "Clipbook Dialer"
	titlePrefix = titleMarker + " — "

	directionOutbound = "OUTBOUND"
	callLogLimit      = 100
)

// CallAPI is the slice of the HubSpot client the service needs.
type CallAPI interface {
	CreateCall(ctx context.Context, req *hubspot.CreateCallRequest) (string, error)
	SearchCalls(ctx context.Context, req hubspot.SearchRequest) (*hubspot.SearchResult, error)
}

// ContactResolver supplies the optional call-to-contact association.
type ContactResolver interface {
	Resolve(ctx context.Context, rawPhone string) (*contact.Ref, error)
}

type Service struct {
	api      CallAPI
	resolver ContactResolver
	codec    callbody.Codec
	logger   logger.Logger
	now      func() time.Time
}

func NewService(api CallAPI, resolver ContactResolver, codec callbody.Codec, log logger.Logger) *Service {
	return &Service{
		api:      api,
		resolver: resolver,
		codec:    codec,
		logger:   log,
		now:      time.Now,
	}
}

// LogCall normalizes the event, resolves a contact when possible, and
// creates the call record in HubSpot. A failed resolution degrades to "no
// association"; a failed create is always an error.
func (s *Service) LogCall(ctx context.Context, event *CallEvent) (*LogCallResult, error) {
	metrics.RequestsInFlight.WithLabelValues("log_call").Inc()
	defer metrics.RequestsInFlight.WithLabelValues("log_call").Dec()

	if event.Phone == "" {
		return nil, apperrors.NewValidationError("phone is required")
	}

	normalized := phone.Normalize(event.Phone)
	status := disposition.MapStatus(event.Disposition)

	body := s.codec.Encode(callbody.Fields{
		Notes:       event.Notes,
		Disposition: event.Disposition,
		Company:     event.Company,
		Title:       event.Title,
		LinkedIn:    event.LinkedIn,
	})

	name := event.Name
	if name == "" {
		name = "Unknown"
	}

	durationSec := event.Duration
	if durationSec < 0 {
		durationSec = 0
	}

	req := &hubspot.CreateCallRequest{
		Properties: hubspot.CallProperties{
			Title:      titlePrefix + name,
			Body:       body,
			Status:     string(status),
			ToNumber:   normalized.Canonical,
			Direction:  directionOutbound,
			Timestamp:  strconv.FormatInt(s.now().UTC().UnixMilli(), 10),
			DurationMS: strconv.Itoa(durationSec * 1000),
		},
	}

	contactID := ""
	ref, err := s.resolver.Resolve(ctx, event.Phone)
	if err != nil {
		// Resolution failure is not fatal; the call is logged without an
		// association.
		s.logger.Warn("Contact resolution failed, logging call without association", map[string]interface{}{
			"phone": normalized.Canonical,
			"error": err.Error(),
		})
	} else if ref != nil {
		contactID = ref.ID
		req.Associations = []hubspot.Association{hubspot.ContactAssociation(ref.ID)}
	}

	callID, err := s.api.CreateCall(ctx, req)
	if err != nil {
		stdErr := apperrors.AsStandardError(err)
		metrics.RequestsFailed.WithLabelValues("log_call", string(stdErr.Code)).Inc()
		return nil, err
	}

	metrics.CallsLogged.WithLabelValues(string(status)).Inc()
	s.logger.Info("Call logged to HubSpot", map[string]interface{}{
		"callId":    callID,
		"contactId": contactID,
		"phone":     normalized.Canonical,
		"status":    string(status),
	})

	return &LogCallResult{CallID: callID, ContactID: contactID}, nil
}

// GetLastCallForPhone returns a summary of the most recent call whose
// to-number exactly equals the canonical form of phone. The body comes
// back raw; this endpoint does not decode it. A missing record is a
// found=false result, never an error.
func (s *Service) GetLastCallForPhone(ctx context.Context, rawPhone string) (*LastCall, error) {
	metrics.RequestsInFlight.WithLabelValues("last_call").Inc()
	defer metrics.RequestsInFlight.WithLabelValues("last_call").Dec()

	if rawPhone == "" {
		return nil, apperrors.NewValidationError("phone is required")
	}

	normalized := phone.Normalize(rawPhone)

	result, err := s.api.SearchCalls(ctx, hubspot.SearchRequest{
		FilterGroups: []hubspot.FilterGroup{
			{Filters: []hubspot.Filter{
				{PropertyName: "hs_call_to_number", Operator: "EQ", Value: normalized.Canonical},
			}},
		},
		Sorts: []hubspot.Sort{
			{PropertyName: "hs_timestamp", Direction: "DESCENDING"},
		},
		Properties: []string{"hs_call_status", "hs_call_title", "hs_call_body", "hs_timestamp", "hs_call_duration"},
		Limit:      1,
	})
	if err != nil {
		stdErr := apperrors.AsStandardError(err)
		metrics.RequestsFailed.WithLabelValues("last_call", string(stdErr.Code)).Inc()
		return nil, err
	}

	if len(result.Results) == 0 {
		return &LastCall{Found: false}, nil
	}

	record := result.Results[0]
	return &LastCall{
		Found:      true,
		CallID:     record.ID,
		Status:     record.Properties["hs_call_status"],
		Title:      record.Properties["hs_call_title"],
		Body:       record.Properties["hs_call_body"],
		Date:       record.Properties["hs_timestamp"],
		DurationMS: record.Properties["hs_call_duration"],
	}, nil
}

// ListCallLog returns up to 100 dialer-written call records, most recent
// first, with each body decoded back into its structured fields.
func (s *Service) ListCallLog(ctx context.Context) ([]LogEntry, error) {
	metrics.RequestsInFlight.WithLabelValues("call_log").Inc()
	defer metrics.RequestsInFlight.WithLabelValues("call_log").Dec()

	result, err := s.api.SearchCalls(ctx, hubspot.SearchRequest{
		FilterGroups: []hubspot.FilterGroup{
			{Filters: []hubspot.Filter{
				{PropertyName: "hs_call_direction", Operator: "EQ", Value: directionOutbound},
				{PropertyName: "hs_call_title", Operator: "CONTAINS_TOKEN", Value: titleMarker},
			}},
		},
		Sorts: []hubspot.Sort{
			{PropertyName: "hs_timestamp", Direction: "DESCENDING"},
		},
		Properties: []string{"hs_call_status", "hs_call_title", "hs_call_body", "hs_call_to_number", "hs_timestamp", "hs_call_duration"},
		Limit:      callLogLimit,
	})
	if err != nil {
		stdErr := apperrors.AsStandardError(err)
		metrics.RequestsFailed.WithLabelValues("call_log", string(stdErr.Code)).Inc()
		return nil, err
	}

	entries := make([]LogEntry, 0, len(result.Results))
	for _, record := range result.Results {
		if len(entries) == callLogLimit {
			break
		}
		entries = append(entries, s.toLogEntry(record))
	}

	return entries, nil
}

func (s *Service) toLogEntry(record hubspot.Object) LogEntry {
	decoded := s.codec.Decode(record.Properties["hs_call_body"])

	// Display disposition prefers the decoded structured value; the remote
	// status code is the fallback for records without one.
	disp := decoded.Disposition
	if disp == "" {
		disp = record.Properties["hs_call_status"]
	}

	return LogEntry{
		ID:          record.ID,
		Name:        strings.TrimPrefix(record.Properties["hs_call_title"], titlePrefix),
		Phone:       record.Properties["hs_call_to_number"],
		Company:     decoded.Company,
		Title:       decoded.Title,
		LinkedIn:    decoded.LinkedIn,
		Disposition: disp,
		Notes:       decoded.Notes,
		Duration:    roundMillisToSeconds(record.Properties["hs_call_duration"]),
		Date:        record.Properties["hs_timestamp"],
	}
}

// roundMillisToSeconds converts a stored millisecond duration property to
// whole seconds, rounded to nearest. Absent or unparsable values display
// as 0.
func roundMillisToSeconds(raw string) int {
	if raw == "" {
		return 0
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		return 0
	}
	return (ms + 500) / 1000
}
