package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bellavista/internal/contact"
)

const remoteTimeout = 15 * time.Second

// RemoteError is a non-2xx answer from the contact endpoint. Message is
// the server's error text, or GenericFailure when it sent none.
type RemoteError struct {
	StatusCode int
	Message    string
	Fields     contact.FieldErrors
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("contact endpoint returned %d: %s", e.StatusCode, e.Message)
}

// RemoteSubmitter posts the payload to POST /api/contact.
type RemoteSubmitter struct {
	endpoint string
	client   *http.Client
}

func NewRemoteSubmitter(baseURL string, client *http.Client) *RemoteSubmitter {
	if client == nil {
		client = &http.Client{Timeout: remoteTimeout}
	}
	return &RemoteSubmitter{
		endpoint: strings.TrimRight(baseURL, "/") + "/api/contact",
		client:   client,
	}
}

func (r *RemoteSubmitter) Submit(ctx context.Context, in contact.Input) (*contact.Submission, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeRemoteError(resp.StatusCode, raw)
	}

	var sub contact.Submission
	if err := json.Unmarshal(raw, &sub); err != nil {
		return nil, fmt.Errorf("decode contact response: %w", err)
	}
	return &sub, nil
}

func decodeRemoteError(status int, raw []byte) *RemoteError {
	re := &RemoteError{StatusCode: status, Message: GenericFailure}

	var body struct {
		Error  string              `json:"error"`
		Fields contact.FieldErrors `json:"fields"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			re.Message = body.Error
		}
		re.Fields = body.Fields
	}
	return re
}
