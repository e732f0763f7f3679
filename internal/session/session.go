// =============================================================================
// Data Formatter - Formatting Session
// =============================================================================
//
// A Session owns all state for one user interaction: the parsed dataset, the
// mapping store, and the latest formatted output. Nothing here outlives the
// session and nothing is persisted. The session is single-owner and
// cooperative: every operation runs to completion before control returns, so
// a Format call always observes the mapping store exactly as it stood at the
// moment of invocation.
//
// OPERATION RULES:
//   - Load replaces the dataset and re-seeds the mapping store (everything
//     to Discard); a failed load leaves the previous dataset untouched.
//   - Format is a pure function of (dataset, store, schema); each call
//     rebuilds the formatted output from scratch.
//   - Export surfaces refuse to run with nothing formatted (ErrNoData).
//   - Suggestions only ever ADD to the store: an empty or failed suggestion
//     mutates nothing, and an in-flight call blocks re-entrant triggering.
//
// =============================================================================

package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/ginjaninja78/data-formatter/internal/exporter"
	"github.com/ginjaninja78/data-formatter/internal/formatter"
	"github.com/ginjaninja78/data-formatter/internal/mapping"
	"github.com/ginjaninja78/data-formatter/internal/parser"
	"github.com/ginjaninja78/data-formatter/internal/record"
	"github.com/ginjaninja78/data-formatter/internal/schema"
	"github.com/ginjaninja78/data-formatter/internal/serializer"
)

// ErrNoDataset is returned by operations that need a parsed file first.
var ErrNoDataset = errors.New("no file loaded")

// ErrSuggestionInProgress is returned when a suggestion call is triggered
// while another one is still running.
var ErrSuggestionInProgress = errors.New("a suggestion request is already in progress")

// Suggester proposes a column mapping for a parsed dataset. Implementations
// must return an empty (never nil) map plus an advisory error on failure.
type Suggester interface {
	Suggest(ctx context.Context, ds *record.Dataset, sch schema.TargetSchema) (map[string]string, error)
}

// Session holds the transient state of one formatting interaction.
type Session struct {
	sch       schema.TargetSchema
	dataset   *record.Dataset
	store     *mapping.Store
	formatted []*record.FormattedRecord
	warnings  []formatter.Warning

	exp        *exporter.Exporter
	suggester  Suggester
	suggesting bool
}

// Option configures a Session.
type Option func(*Session)

// WithExporter injects the exporter (tests use a fake clipboard).
func WithExporter(e *exporter.Exporter) Option {
	return func(s *Session) { s.exp = e }
}

// WithSuggester wires the suggestion adapter. Without one, suggestion calls
// report SuggestionUnavailable behavior (empty mapping, advisory error).
func WithSuggester(sg Suggester) Option {
	return func(s *Session) { s.suggester = sg }
}

// New creates a Session for a record kind.
func New(kind schema.Kind, opts ...Option) (*Session, error) {
	sch, err := schema.ForKind(kind)
	if err != nil {
		return nil, err
	}

	s := &Session{
		sch:   sch,
		store: mapping.NewStore(),
		exp:   exporter.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Schema returns the session's target schema.
func (s *Session) Schema() schema.TargetSchema {
	return s.sch
}

// Store returns the session's mapping store.
func (s *Session) Store() *mapping.Store {
	return s.store
}

// Dataset returns the currently loaded dataset, or nil.
func (s *Session) Dataset() *record.Dataset {
	return s.dataset
}

// =============================================================================
// LOADING
// =============================================================================

// LoadFile parses a file from disk into the session.
func (s *Session) LoadFile(path string) error {
	ds, err := parser.ParseFile(path)
	if err != nil {
		return err
	}
	s.adopt(ds)
	return nil
}

// LoadBytes parses raw file bytes into the session. fileName selects the
// parser by extension.
func (s *Session) LoadBytes(fileName string, data []byte) error {
	ds, err := parser.Parse(fileName, data)
	if err != nil {
		return err
	}
	s.adopt(ds)
	return nil
}

// adopt installs a successfully parsed dataset: the mapping store is
// re-seeded (every column to Discard) and stale formatted output dropped.
func (s *Session) adopt(ds *record.Dataset) {
	s.dataset = ds
	s.store.Reset(ds.Headers)
	s.formatted = nil
	s.warnings = nil
}

// =============================================================================
// FORMATTING
// =============================================================================

// Format runs the transformation engine over the loaded dataset with the
// mapping store as it stands right now. The previous formatted output is
// superseded. Returned warnings are non-fatal.
func (s *Session) Format() ([]formatter.Warning, error) {
	if s.dataset == nil {
		return nil, ErrNoDataset
	}
	s.formatted, s.warnings = formatter.Format(s.dataset, s.store, s.sch)
	return s.warnings, nil
}

// Formatted returns the output of the most recent Format call.
func (s *Session) Formatted() []*record.FormattedRecord {
	return s.formatted
}

// CSV serializes the most recent formatted output. Returns
// exporter.ErrNoData when nothing has been formatted.
func (s *Session) CSV() (string, error) {
	if len(s.formatted) == 0 {
		return "", exporter.ErrNoData
	}
	return serializer.Serialize(s.formatted), nil
}

// =============================================================================
// EXPORT
// =============================================================================

// Download writes the formatted output to path. With no formatted data the
// operation is a no-op returning exporter.ErrNoData.
func (s *Session) Download(path string) error {
	return s.exp.WriteFile(s.formatted, path)
}

// Copy puts the formatted output on the system clipboard. With no formatted
// data the operation is a no-op returning exporter.ErrNoData.
func (s *Session) Copy() error {
	return s.exp.CopyToClipboard(s.formatted)
}

// =============================================================================
// SUGGESTIONS
// =============================================================================

// Suggesting reports whether a suggestion call is currently in flight, so a
// caller can disable re-entrant triggering.
func (s *Session) Suggesting() bool {
	return s.suggesting
}

// SuggestMappings asks the suggestion adapter for a mapping and, when the
// result is non-empty, seeds the store with it. An empty result (including
// every failure mode) leaves the store untouched; the advisory error tells
// the caller why. The applied mapping is returned for display.
func (s *Session) SuggestMappings(ctx context.Context) (map[string]string, error) {
	if s.dataset == nil {
		return map[string]string{}, ErrNoDataset
	}
	if s.suggester == nil {
		return map[string]string{}, errors.New("no suggestion service configured")
	}
	if s.suggesting {
		return map[string]string{}, ErrSuggestionInProgress
	}

	s.suggesting = true
	defer func() { s.suggesting = false }()

	suggested, err := s.suggester.Suggest(ctx, s.dataset, s.sch)
	if err != nil {
		return map[string]string{}, fmt.Errorf("suggestion unavailable: %w", err)
	}
	if len(suggested) == 0 {
		return map[string]string{}, nil
	}

	for source, target := range suggested {
		s.store.SetMapping(source, target)
	}
	return suggested, nil
}
