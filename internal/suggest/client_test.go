package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/data-formatter/internal/record"
	"github.com/ginjaninja78/data-formatter/internal/schema"
)

type fakeDoer struct {
	fn func(req *http.Request) (*http.Response, error)
}

func (f fakeDoer) Do(req *http.Request) (*http.Response, error) {
	return f.fn(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func testDataset(t *testing.T) *record.Dataset {
	t.Helper()

	headers := []string{"Nome", "Telefone", "Vazio"}
	rows := [][]string{
		{"Maria", "(11) 98888-7777", ""},
		{"João", "(21) 97777-6666", " "},
	}

	records := make([]record.Record, 0, len(rows))
	for _, row := range rows {
		rec := record.New(headers)
		for i, h := range headers {
			rec.Set(h, record.String(row[i]))
		}
		records = append(records, rec)
	}
	return &record.Dataset{Headers: headers, Records: records, RowCount: 2, ColumnCount: 3}
}

func customerSchema(t *testing.T) schema.TargetSchema {
	t.Helper()
	sch, err := schema.ForKind(schema.KindCustomer)
	require.NoError(t, err)
	return sch
}

func TestNewClientRequiresEndpoint(t *testing.T) {
	t.Parallel()

	_, err := NewClient(ClientConfig{})
	assert.Error(t, err)

	c, err := NewClient(ClientConfig{Endpoint: "https://suggest.example.com/v1/mappings"})
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestSuggestSendsContractRequest(t *testing.T) {
	t.Parallel()

	var captured request
	doer := fakeDoer{fn: func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodPost {
			t.Fatalf("unexpected method %s", req.Method)
		}
		if ct := req.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(req.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		return jsonResponse(http.StatusOK, `{"columnMappings":{"Telefone":"Telefone 1"}}`), nil
	}}

	c, err := NewClient(ClientConfig{Endpoint: "https://suggest.example.com/v1/mappings", HTTPClient: doer})
	require.NoError(t, err)

	got, err := c.Suggest(context.Background(), testDataset(t), customerSchema(t))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Telefone": "Telefone 1"}, got)

	// Sample data is the whole dataset, header first, comma-joined.
	assert.Equal(t, "Nome,Telefone,Vazio\nMaria,(11) 98888-7777,\nJoão,(21) 97777-6666, ", captured.SampleData)
	assert.Contains(t, captured.TargetColumns, "Telefone 1")
	assert.Contains(t, captured.TargetColumns, schema.Discard)
	// "Vazio" has no non-blank values and must not be offered.
	assert.Equal(t, "Nome, Telefone", captured.PresentColumns)
}

func TestSuggestReturnsEmptyOnFailure(t *testing.T) {
	t.Parallel()

	cases := map[string]fakeDoer{
		"transport error": {fn: func(*http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		}},
		"http error status": {fn: func(*http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusInternalServerError, `boom`), nil
		}},
		"malformed body": {fn: func(*http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"columnMappings":`), nil
		}},
	}

	for name, doer := range cases {
		t.Run(name, func(t *testing.T) {
			c, err := NewClient(ClientConfig{Endpoint: "https://suggest.example.com/v1/mappings", HTTPClient: doer})
			require.NoError(t, err)

			got, err := c.Suggest(context.Background(), testDataset(t), customerSchema(t))
			assert.Error(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestSuggestDropsInvalidEntries(t *testing.T) {
	t.Parallel()

	doer := fakeDoer{fn: func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"columnMappings":{
			"Telefone":"Telefone 1",
			"Nome":"Nonexistent Target",
			"Unknown Column":"Email"
		}}`), nil
	}}

	c, err := NewClient(ClientConfig{Endpoint: "https://suggest.example.com/v1/mappings", HTTPClient: doer})
	require.NoError(t, err)

	got, err := c.Suggest(context.Background(), testDataset(t), customerSchema(t))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Telefone": "Telefone 1"}, got)
}

func TestPresentColumnsKeepsHeaderOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Nome", "Telefone"}, PresentColumns(testDataset(t)))
}
