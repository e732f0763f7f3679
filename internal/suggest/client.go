// =============================================================================
// Data Formatter - Mapping Suggestion Client
// =============================================================================
//
// The suggestion service is an external best-effort assistant: it receives a
// sample of the parsed data plus the allowed target columns and proposes a
// column mapping. It is strictly advisory, and this client is built around
// that:
//
//   - any failure (network, HTTP status, undecodable body) yields an EMPTY
//     mapping together with an advisory error; the caller treats "no
//     suggestion" as a normal outcome and must not touch its mapping store
//   - individual suggestions that violate the schema (unknown target label)
//     or reference a column not present in the data are dropped, never
//     propagated
//
// The request mirrors the service contract: sampleData is the whole parsed
// dataset re-joined with commas, and the column lists are serialized as
// comma-separated strings.
//
// =============================================================================

package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ginjaninja78/data-formatter/internal/record"
	"github.com/ginjaninja78/data-formatter/internal/schema"
)

// httpDoer lets tests substitute the HTTP transport.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig configures a suggestion Client.
type ClientConfig struct {
	// Endpoint is the full URL of the suggestion service. Required.
	Endpoint string

	// HTTPClient overrides the transport; defaults to a 30s-timeout client.
	HTTPClient httpDoer
}

// Client calls the external mapping suggestion service.
type Client struct {
	endpoint   string
	httpClient httpDoer
}

// NewClient validates the configuration and builds a Client.
func NewClient(cfg ClientConfig) (*Client, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, errors.New("suggestion endpoint is required")
	}

	doer := cfg.HTTPClient
	if doer == nil {
		doer = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{endpoint: endpoint, httpClient: doer}, nil
}

// request is the service's wire format.
type request struct {
	SampleData     string `json:"sampleData"`
	TargetColumns  string `json:"targetColumns"`
	PresentColumns string `json:"presentColumns"`
}

// response is the service's wire format.
type response struct {
	ColumnMappings map[string]string `json:"columnMappings"`
}

// Suggest asks the service for a column mapping for the parsed dataset.
//
// The returned map is never nil. A non-nil error means the service was
// unavailable or unusable; the map is empty in that case and the error is
// advisory only — callers surface it as a notice and carry on.
func (c *Client) Suggest(ctx context.Context, ds *record.Dataset, sch schema.TargetSchema) (map[string]string, error) {
	empty := map[string]string{}

	payload := request{
		SampleData:     SampleData(ds),
		TargetColumns:  strings.Join(sch.Labels(), ", "),
		PresentColumns: strings.Join(PresentColumns(ds), ", "),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return empty, fmt.Errorf("encode suggestion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return empty, fmt.Errorf("build suggestion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return empty, fmt.Errorf("call suggestion service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return empty, fmt.Errorf("suggestion service returned status %d", resp.StatusCode)
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return empty, fmt.Errorf("decode suggestion response: %w", err)
	}

	return filterMappings(decoded.ColumnMappings, ds, sch), nil
}

// filterMappings drops suggestions whose source column is not in the data or
// whose target label is not in the schema. What remains is safe to seed the
// mapping store with.
func filterMappings(raw map[string]string, ds *record.Dataset, sch schema.TargetSchema) map[string]string {
	out := make(map[string]string, len(raw))

	present := make(map[string]struct{}, len(ds.Headers))
	for _, h := range ds.Headers {
		present[h] = struct{}{}
	}

	for source, target := range raw {
		if _, ok := present[source]; !ok {
			continue
		}
		if !sch.Contains(target) {
			continue
		}
		out[source] = target
	}
	return out
}

// SampleData serializes the parsed dataset as comma-joined lines, header
// first, for the service's sampleData field.
func SampleData(ds *record.Dataset) string {
	lines := make([]string, 0, len(ds.Records)+1)
	lines = append(lines, strings.Join(ds.Headers, ","))

	for _, rec := range ds.Records {
		cells := make([]string, len(ds.Headers))
		for i, h := range ds.Headers {
			cells[i] = rec.Value(h).Text()
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n")
}

// PresentColumns lists the source columns that carry at least one non-empty
// value, in header order. Columns that are entirely blank are not worth
// suggesting a mapping for.
func PresentColumns(ds *record.Dataset) []string {
	out := make([]string, 0, len(ds.Headers))
	for _, h := range ds.Headers {
		for _, rec := range ds.Records {
			if strings.TrimSpace(rec.Value(h).Text()) != "" {
				out = append(out, h)
				break
			}
		}
	}
	return out
}
