package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/bornholm/civicadmin/internal/core/port"
)

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("api error %d", e.StatusCode))

	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}

	if len(e.Fields) > 0 {
		fields := make([]string, 0, len(e.Fields))
		for f := range e.Fields {
			fields = append(fields, f)
		}
		sort.Strings(fields)

		sb.WriteString(" (")
		for i, f := range fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f)
			sb.WriteString(": ")
			sb.WriteString(e.Fields[f])
		}
		sb.WriteString(")")
	}

	return sb.String()
}

// FieldErrors returns the per-field messages sent by the backend.
func (e *APIError) FieldErrors() map[string]string {
	return e.Fields
}

func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return target == port.ErrUnauthorized
	case http.StatusForbidden:
		return target == port.ErrForbidden
	case http.StatusNotFound:
		return target == port.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return target == port.ErrInvalid
	default:
		return false
	}
}

type errorBody struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
	Errors  json.RawMessage `json:"errors"`
}

type fieldError struct {
	Field   string `json:"field"`
	Path    string `json:"path"`
	Message string `json:"message"`
	Msg     string `json:"msg"`
}

func parseAPIError(statusCode int, status string, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
	}

	var payload errorBody
	if err := json.Unmarshal(body, &payload); err != nil {
		apiErr.Message = strings.TrimSpace(string(body))
		if apiErr.Message == "" || len(apiErr.Message) > 200 {
			apiErr.Message = status
		}
		return apiErr
	}

	apiErr.Message = payload.Message

	if apiErr.Message == "" && len(payload.Error) > 0 {
		var message string
		if err := json.Unmarshal(payload.Error, &message); err == nil {
			apiErr.Message = message
		} else {
			var nested errorBody
			if err := json.Unmarshal(payload.Error, &nested); err == nil {
				apiErr.Message = nested.Message
			}
		}
	}

	if len(payload.Errors) > 0 {
		apiErr.Fields = parseFieldErrors(payload.Errors)
	}

	if apiErr.Message == "" {
		apiErr.Message = status
	}

	return apiErr
}

func parseFieldErrors(raw json.RawMessage) map[string]string {
	fields := map[string]string{}

	var byName map[string]any
	if err := json.Unmarshal(raw, &byName); err == nil {
		for name, value := range byName {
			switch v := value.(type) {
			case string:
				fields[name] = v
			case []any:
				if len(v) > 0 {
					fields[name] = fmt.Sprint(v[0])
				}
			default:
				fields[name] = fmt.Sprint(v)
			}
		}
		return fields
	}

	var list []fieldError
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, fe := range list {
			name := fe.Field
			if name == "" {
				name = fe.Path
			}
			message := fe.Message
			if message == "" {
				message = fe.Msg
			}
			if name != "" {
				fields[name] = message
			}
		}
		return fields
	}

	var messages []string
	if err := json.Unmarshal(raw, &messages); err == nil {
		for i, m := range messages {
			fields[fmt.Sprintf("%d", i)] = m
		}
	}

	return fields
}
