package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "clipbook-dialer/internal/common/errors"
	"clipbook-dialer/internal/common/hubspot"
	"clipbook-dialer/internal/common/logger"
)

type mockSearcher struct {
	mock.Mock
}

func (m *mockSearcher) SearchContacts(ctx context.Context, req hubspot.SearchRequest) (*hubspot.SearchResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hubspot.SearchResult), args.Error(1)
}

func emptyResult() *hubspot.SearchResult {
	return &hubspot.SearchResult{Total: 0, Results: []hubspot.Object{}}
}

func singleResult(id string) *hubspot.SearchResult {
	return &hubspot.SearchResult{
		Total: 1,
		Results: []hubspot.Object{
			{ID: id, Properties: map[string]string{"firstname": "Jane", "phone": "+14155550100"}},
		},
	}
}

func filterOf(req hubspot.SearchRequest) hubspot.Filter {
	return req.FilterGroups[0].Filters[0]
}

func TestResolveExactMatchWins(t *testing.T) {
	searcher := new(mockSearcher)
	resolver := NewResolver(searcher, logger.NewNoOpLogger())

	searcher.On("SearchContacts", mock.Anything, mock.MatchedBy(func(req hubspot.SearchRequest) bool {
		f := filterOf(req)
		return f.PropertyName == "phone" && f.Operator == "EQ" && f.Value == "+14155550100"
	})).Return(singleResult("301"), nil).Once()

	ref, err := resolver.Resolve(context.Background(), "(415) 555-0100")

	require.NoError(t, err)
	require.NotNil(t, ref)
	assert.Equal(t, "301", ref.ID)
	searcher.AssertExpectations(t)
	searcher.AssertNumberOfCalls(t, "SearchContacts", 1)
}

func TestResolveFallsBackToTokenMatch(t *testing.T) {
	searcher := new(mockSearcher)
	resolver := NewResolver(searcher, logger.NewNoOpLogger())

	searcher.On("SearchContacts", mock.Anything, mock.MatchedBy(func(req hubspot.SearchRequest) bool {
		return filterOf(req).PropertyName == "phone"
	})).Return(emptyResult(), nil).Once()

	searcher.On("SearchContacts", mock.Anything, mock.MatchedBy(func(req hubspot.SearchRequest) bool {
		f := filterOf(req)
		return f.PropertyName == "hs_searchable_calculated_phone_number" &&
			f.Operator == "CONTAINS_TOKEN" && f.Value == "4155550100"
	})).Return(singleResult("302"), nil).Once()

	ref, err := resolver.Resolve(context.Background(), "415-555-0100")

	require.NoError(t, err)
	require.NotNil(t, ref)
	assert.Equal(t, "302", ref.ID)
	searcher.AssertExpectations(t)
}

func TestResolveNoMatch(t *testing.T) {
	searcher := new(mockSearcher)
	resolver := NewResolver(searcher, logger.NewNoOpLogger())

	searcher.On("SearchContacts", mock.Anything, mock.Anything).Return(emptyResult(), nil).Twice()

	ref, err := resolver.Resolve(context.Background(), "415-555-0100")

	require.NoError(t, err)
	assert.Nil(t, ref)
	searcher.AssertNumberOfCalls(t, "SearchContacts", 2)
}

func TestResolveSearchError(t *testing.T) {
	searcher := new(mockSearcher)
	resolver := NewResolver(searcher, logger.NewNoOpLogger())

	remoteErr := apperrors.NewRemoteAPIError("contacts.search", 500, "upstream down")
	searcher.On("SearchContacts", mock.Anything, mock.Anything).Return(nil, remoteErr).Once()

	ref, err := resolver.Resolve(context.Background(), "415-555-0100")

	assert.Nil(t, ref)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeRemoteAPI, apperrors.AsStandardError(err).Code)
	searcher.AssertNumberOfCalls(t, "SearchContacts", 1)
}
