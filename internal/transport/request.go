package transport

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/agentstation/catchlog/pkg/errors"
	"github.com/agentstation/catchlog/pkg/logging"
)

// errorBody is the shape the catch service uses for failures.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// DecodeResponse decodes a JSON response into target. Any 2xx status is a
// success; target may be nil to discard the body. Other statuses become an
// *errors.APIError.
func DecodeResponse(resp *http.Response, target any) error {
	body, err := readAndClose(resp)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return NewStatusError(resp, body)
	}

	if target == nil || len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "response", err)
	}

	return nil
}

// ReadBody returns the body of a successful response, or the *errors.APIError
// for a failed one.
func ReadBody(resp *http.Response) ([]byte, error) {
	body, err := readAndClose(resp)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewStatusError(resp, body)
	}
	return body, nil
}

// NewStatusError builds the APIError for a non-2xx response, preferring the
// server's "message" (then "error") field over the status text.
func NewStatusError(resp *http.Response, body []byte) *errors.APIError {
	endpoint := ""
	if resp.Request != nil && resp.Request.URL != nil {
		endpoint = resp.Request.URL.Path
	}
	return errors.NewAPIError(endpoint, resp.StatusCode, ErrorMessage(resp.StatusCode, body))
}

// ErrorMessage extracts a human message from a failure body.
func ErrorMessage(status int, body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Message != "" {
			return eb.Message
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return strings.TrimSpace(string(body))
}

func readAndClose(resp *http.Response) ([]byte, error) {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WrapIO("read", "response body", err)
	}
	return body, nil
}
