package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPSink posts decision events to a trace-ingestion endpoint
// (Opik-compatible span logging). One POST per event; the payload is the
// event's stable field set wrapped in a trace envelope.
type HTTPSink struct {
	endpoint string
	apiKey   string
	project  string
	client   *http.Client
}

// NewHTTPSink creates a sink for the given ingestion endpoint
func NewHTTPSink(endpoint, apiKey, project string, timeout time.Duration) *HTTPSink {
	return &HTTPSink{
		endpoint: endpoint,
		apiKey:   apiKey,
		project:  project,
		client:   &http.Client{Timeout: timeout},
	}
}

type tracePayload struct {
	ProjectName string                 `json:"project_name"`
	TraceID     string                 `json:"trace_id"`
	Name        string                 `json:"name"`
	StartTime   string                 `json:"start_time"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// Send posts one event. Any non-2xx status is an error; the dispatcher is
// responsible for swallowing it.
func (s *HTTPSink) Send(ctx context.Context, ev Event) error {
	payload := tracePayload{
		ProjectName: s.project,
		TraceID:     ev.TraceID,
		Name:        ev.Name,
		StartTime:   time.Now().UTC().Format(time.RFC3339Nano),
		Metadata:    ev.Fields,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telemetry sink returned status %d", resp.StatusCode)
	}
	return nil
}
