package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "clipbook-dialer/internal/common/errors"
	"clipbook-dialer/internal/dialer/calls"
)

// handleLogCall accepts a call-completion event from the dialer, creates
// the call record in HubSpot, and reports the identifiers back.
func (s *Server) handleLogCall(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.respondError(c, apperrors.NewValidationError("failed to read request body"))
		return
	}

	if err := calls.ValidateLogCallPayload(raw); err != nil {
		s.respondError(c, err)
		return
	}

	var event calls.CallEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		s.respondError(c, apperrors.NewValidationError("malformed JSON payload"))
		return
	}

	result, err := s.service.LogCall(c.Request.Context(), &event)
	if err != nil {
		s.respondError(c, err)
		return
	}

	response := gin.H{
		"success":       true,
		"hubspotCallId": result.CallID,
	}
	if result.ContactID != "" {
		response["contactId"] = result.ContactID
	} else {
		response["contactId"] = nil
	}
	c.JSON(http.StatusOK, response)
}

// handleCallStatus returns a summary of the most recent call logged
// against the given phone number.
func (s *Server) handleCallStatus(c *gin.Context) {
	phone := c.Query("phone")
	last, err := s.service.GetLastCallForPhone(c.Request.Context(), phone)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, last)
}

// handleCallLog returns up to 100 dialer-written calls, newest first.
func (s *Server) handleCallLog(c *gin.Context) {
	entries, err := s.service.ListCallLog(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"calls": entries})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":            "ok",
		"hubspotConfigured": s.hubspotConfigured,
	})
}

// respondError maps the error taxonomy to HTTP statuses. Unexpected
// errors keep their details out of the response body.
func (s *Server) respondError(c *gin.Context, err error) {
	stdErr := apperrors.AsStandardError(err)

	if stdErr.Code != apperrors.ErrCodeValidation {
		s.logger.Error("Request failed", map[string]interface{}{
			"requestId": c.GetString(requestIDKey),
			"path":      c.Request.URL.Path,
			"code":      string(stdErr.Code),
			"details":   stdErr.Details,
		})
	}

	c.JSON(apperrors.HTTPStatus(stdErr.Code), gin.H{
		"success": false,
		"error":   stdErr.Message,
		"code":    string(stdErr.Code),
	})
}
