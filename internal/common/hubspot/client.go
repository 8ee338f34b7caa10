// Package hubspot is a thin client for the HubSpot CRM v3 objects API.
// The remote store is treated as opaque: three operation shapes (contact
// search, call search, call create), no retries, non-success responses
// surfaced with the remote status code and body.
package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "clipbook-dialer/internal/common/errors"
	"clipbook-dialer/internal/common/httpclient"
	"clipbook-dialer/internal/common/metrics"
)

const (
	contactsSearchPath = "/crm/v3/objects/contacts/search"
	callsSearchPath    = "/crm/v3/objects/calls/search"
	callsPath          = "/crm/v3/objects/calls"

	// HubSpot-defined association type: call to contact.
	AssociationCallToContact = 194
)

type Client struct {
	accessToken string
	baseURL     string
	httpClient  *httpclient.Client
}

func NewClient(accessToken, baseURL string, timeout time.Duration) *Client {
	return &Client{
		accessToken: accessToken,
		baseURL:     baseURL,
		httpClient:  httpclient.New(timeout),
	}
}

// Filter is a single property filter inside a search request.
type Filter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

type FilterGroup struct {
	Filters []Filter `json:"filters"`
}

type Sort struct {
	PropertyName string `json:"propertyName"`
	Direction    string `json:"direction"`
}

type SearchRequest struct {
	FilterGroups []FilterGroup `json:"filterGroups"`
	Sorts        []Sort        `json:"sorts,omitempty"`
	Properties   []string      `json:"properties,omitempty"`
	Limit        int           `json:"limit,omitempty"`
}

// Object is a generic CRM record: an opaque remote identifier plus its
// stored properties.
type Object struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

type SearchResult struct {
	Total   int      `json:"total"`
	Results []Object `json:"results"`
}

// CallProperties are the call-object fields this tool writes. HubSpot
// stores every property as a string, durations in milliseconds and
// timestamps as epoch milliseconds.
type CallProperties struct {
	Title      string `json:"hs_call_title"`
	Body       string `json:"hs_call_body"`
	Status     string `json:"hs_call_status"`
	ToNumber   string `json:"hs_call_to_number"`
	Direction  string `json:"hs_call_direction"`
	Timestamp  string `json:"hs_timestamp"`
	DurationMS string `json:"hs_call_duration"`
}

type AssociationTarget struct {
	ID string `json:"id"`
}

type AssociationType struct {
	AssociationCategory string `json:"associationCategory"`
	AssociationTypeID   int    `json:"associationTypeId"`
}

type Association struct {
	To    AssociationTarget `json:"to"`
	Types []AssociationType `json:"types"`
}

// ContactAssociation builds the standard call-to-contact association.
func ContactAssociation(contactID string) Association {
	return Association{
		To: AssociationTarget{ID: contactID},
		Types: []AssociationType{
			{
				AssociationCategory: "HUBSPOT_DEFINED",
				AssociationTypeID:   AssociationCallToContact,
			},
		},
	}
}

type CreateCallRequest struct {
	Properties   CallProperties `json:"properties"`
	Associations []Association  `json:"associations,omitempty"`
}

type createCallResponse struct {
	ID string `json:"id"`
}

// SearchContacts runs a contact search and returns the raw result page.
func (c *Client) SearchContacts(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	return c.search(ctx, "contacts.search", contactsSearchPath, req)
}

// SearchCalls runs a call-object search and returns the raw result page.
func (c *Client) SearchCalls(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	return c.search(ctx, "calls.search", callsSearchPath, req)
}

// CreateCall creates a call object, optionally associated to a contact,
// and returns the identifier assigned by HubSpot.
func (c *Client) CreateCall(ctx context.Context, req *CreateCallRequest) (string, error) {
	body, status, err := c.post(ctx, "calls.create", callsPath, req)
	if err != nil {
		return "", err
	}

	if status != http.StatusCreated && status != http.StatusOK {
		return "", apperrors.NewRemoteAPIError("calls.create", status, string(body))
	}

	var created createCallResponse
	if err := json.Unmarshal(body, &created); err != nil {
		return "", fmt.Errorf("failed to unmarshal create call response: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("create call response missing id")
	}

	return created.ID, nil
}

func (c *Client) search(ctx context.Context, operation, path string, req SearchRequest) (*SearchResult, error) {
	body, status, err := c.post(ctx, operation, path, req)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, apperrors.NewRemoteAPIError(operation, status, string(body))
	}

	var result SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s response: %w", operation, err)
	}

	return &result, nil
}

func (c *Client) post(ctx context.Context, operation, path string, payload interface{}) ([]byte, int, error) {
	start := time.Now()
	defer func() {
		metrics.RemoteRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal %s payload: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create %s request: %w", operation, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute %s request: %w", operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read %s response body: %w", operation, err)
	}

	return body, resp.StatusCode, nil
}
