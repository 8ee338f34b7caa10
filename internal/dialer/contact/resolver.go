// Package contact resolves dialed phone numbers to existing HubSpot
// contacts. Contacts are only ever read, never created or mutated here.
package contact

import (
	"context"

	"clipbook-dialer/internal/common/hubspot"
	"clipbook-dialer/internal/common/logger"
	"clipbook-dialer/internal/dialer/phone"
)

// Searcher is the slice of the HubSpot client the resolver needs.
type Searcher interface {
	SearchContacts(ctx context.Context, req hubspot.SearchRequest) (*hubspot.SearchResult, error)
}

// Ref is a resolved contact: the opaque remote identifier plus whatever
// properties the search returned.
type Ref struct {
	ID         string
	Properties map[string]string
}

// strategy builds one search request for a normalized phone. Strategies
// are tried in order; the first hit wins.
type strategy struct {
	name  string
	build func(n phone.Normalized) hubspot.SearchRequest
}

type Resolver struct {
	searcher   Searcher
	logger     logger.Logger
	strategies []strategy
}

// NewResolver builds the two-stage resolver: exact match on the canonical
// dialable form first, then a token match against the 10-digit comparison
// key to tolerate records stored with different formatting or extensions.
// The ordered list exists so further strategies can be appended without
// restructuring control flow.
func NewResolver(searcher Searcher, log logger.Logger) *Resolver {
	return &Resolver{
		searcher: searcher,
		logger:   log,
		strategies: []strategy{
			{name: "exactMatch", build: exactMatchRequest},
			{name: "tokenMatch", build: tokenMatchRequest},
		},
	}
}

// Resolve returns at most one best-guess contact for the phone string, or
// nil when no strategy matches. Only the first result of each query is
// used; ranking beyond the remote store's default is not attempted. Each
// invocation performs 0-2 remote round trips, uncached.
func (r *Resolver) Resolve(ctx context.Context, rawPhone string) (*Ref, error) {
	normalized := phone.Normalize(rawPhone)

	for _, s := range r.strategies {
		result, err := r.searcher.SearchContacts(ctx, s.build(normalized))
		if err != nil {
			return nil, err
		}
		if len(result.Results) == 0 {
			continue
		}

		match := result.Results[0]
		r.logger.Debug("Resolved contact for phone", map[string]interface{}{
			"strategy":  s.name,
			"phone":     normalized.Canonical,
			"contactId": match.ID,
		})
		return &Ref{ID: match.ID, Properties: match.Properties}, nil
	}

	return nil, nil
}

func exactMatchRequest(n phone.Normalized) hubspot.SearchRequest {
	return hubspot.SearchRequest{
		FilterGroups: []hubspot.FilterGroup{
			{Filters: []hubspot.Filter{
				{PropertyName: "phone", Operator: "EQ", Value: n.Canonical},
			}},
		},
		Properties: []string{"firstname", "lastname", "phone"},
		Limit:      1,
	}
}

func tokenMatchRequest(n phone.Normalized) hubspot.SearchRequest {
	return hubspot.SearchRequest{
		FilterGroups: []hubspot.FilterGroup{
			{Filters: []hubspot.Filter{
				{
					PropertyName: "hs_searchable_calculated_phone_number",
					Operator:     "CONTAINS_TOKEN",
					Value:        n.Key,
				},
			}},
		},
		Properties: []string{"firstname", "lastname", "phone"},
		Limit:      1,
	}
}
