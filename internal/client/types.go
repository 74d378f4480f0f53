package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"fsanano/item-catalog/internal/schema"
)

// ErrorResponse is a non-2xx answer from the catalog API.
// Detail holds field errors for 422s; Message holds a plain detail string otherwise.
type ErrorResponse struct {
	StatusCode int
	Detail     []schema.FieldError
	Message    string
}

func (e *ErrorResponse) Error() string {
	if len(e.Detail) == 0 {
		return fmt.Sprintf("catalog api error (%d): %s", e.StatusCode, e.Message)
	}
	parts := make([]string, 0, len(e.Detail))
	for _, d := range e.Detail {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(d.Loc, "."), d.Msg))
	}
	return fmt.Sprintf("catalog api error (%d): %s", e.StatusCode, strings.Join(parts, "; "))
}

// parseErrorBody understands both {"detail": [...]} and {"detail": "..."}.
func parseErrorBody(status int, body []byte) (*ErrorResponse, bool) {
	var raw struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &raw); err != nil || len(raw.Detail) == 0 {
		return nil, false
	}

	apiErr := &ErrorResponse{StatusCode: status}
	if err := json.Unmarshal(raw.Detail, &apiErr.Detail); err == nil {
		return apiErr, true
	}
	if err := json.Unmarshal(raw.Detail, &apiErr.Message); err == nil {
		return apiErr, true
	}
	return nil, false
}
