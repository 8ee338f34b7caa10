package calls

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apperrors "clipbook-dialer/internal/common/errors"
)

// logCallSchema is the JSON schema for the inbound log-call payload. Only
// phone is required; everything else is optional metadata the dialer may
// or may not have collected.
const logCallSchema = `{
	"type": "object",
	"required": ["phone"],
	"properties": {
		"phone":       {"type": "string", "minLength": 1},
		"name":        {"type": "string"},
		"company":     {"type": "string"},
		"title":       {"type": "string"},
		"disposition": {"type": "string"},
		"notes":       {"type": "string"},
		"duration":    {"type": "integer", "minimum": 0},
		"linkedin":    {"type": "string"}
	},
	"additionalProperties": true
}`

var logCallSchemaLoader = gojsonschema.NewStringLoader(logCallSchema)

// ValidateLogCallPayload checks a raw JSON payload against the log-call
// schema before it is decoded into a CallEvent.
func ValidateLogCallPayload(raw []byte) error {
	result, err := gojsonschema.Validate(logCallSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return apperrors.NewValidationError(fmt.Sprintf("malformed JSON payload: %s", err))
	}

	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}
		return apperrors.NewValidationError(strings.Join(messages, "; "))
	}

	return nil
}
