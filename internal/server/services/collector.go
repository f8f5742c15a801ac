package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/docledger/internal/logging"
	"github.com/dmitrijs2005/docledger/internal/server/models"
	"github.com/dmitrijs2005/docledger/internal/server/storage"
)

// PublishedReader lists published groups.
type PublishedReader interface {
	GetPublished(ctx context.Context, owner string) ([]models.PublishedGroup, error)
}

// Table is one published source flattened into rows, one per recipient copy.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

var fixedColumns = []string{"owner", "source_guid", "copy_guid"}

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// CollectorService exports the recipients' copies of published documents
// as CSV.
type CollectorService struct {
	published PublishedReader
	store     storage.ObjectStore
	log       logging.Logger
	now       func() time.Time
}

func NewCollectorService(p PublishedReader, store storage.ObjectStore, log logging.Logger) *CollectorService {
	return &CollectorService{
		published: p,
		store:     store,
		log:       log.With("module", "collector"),
		now:       time.Now,
	}
}

// CollectAll builds one table per published source.
func (s *CollectorService) CollectAll(ctx context.Context) ([]Table, error) {
	groups, err := s.published.GetPublished(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("error reading published documents: %w", err)
	}

	tables := make([]Table, 0, len(groups))
	for _, g := range groups {
		tables = append(tables, buildTable(g))
	}
	return tables, nil
}

func buildTable(g models.PublishedGroup) Table {
	name := g.Source.GUID
	if obj, ok := g.Source.Content.(map[string]any); ok {
		if n, ok := obj["name"].(string); ok && n != "" {
			name = n
		}
	}

	keySet := map[string]struct{}{}
	for _, p := range g.Published {
		if obj, ok := p.Content.(map[string]any); ok {
			for k := range obj {
				if !strings.HasPrefix(k, "_") {
					keySet[k] = struct{}{}
				}
			}
		}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	t := Table{
		Name:   name,
		Header: append(slices.Clone(fixedColumns), keys...),
		Rows:   make([][]string, 0, len(g.Published)),
	}
	for _, p := range g.Published {
		obj, _ := p.Content.(map[string]any)
		row := []string{p.Owner, g.Source.GUID, p.GUID}
		for _, k := range keys {
			row = append(row, cell(obj[k]))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func cell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// CSV renders t with its header row.
func (t Table) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Export uploads every table and returns the object keys.
func (s *CollectorService) Export(ctx context.Context) ([]string, error) {
	tables, err := s.CollectAll(ctx)
	if err != nil {
		return nil, err
	}

	stamp := s.now().UTC().Format("20060102T150405Z")
	keys := make([]string, 0, len(tables))
	for _, t := range tables {
		body, err := t.CSV()
		if err != nil {
			return keys, fmt.Errorf("error rendering %s: %w", t.Name, err)
		}

		key := fmt.Sprintf("exports/%s/%s.csv", stamp, unsafeKeyChars.ReplaceAllString(t.Name, "_"))
		if err := s.store.PutObject(ctx, key, body, "text/csv"); err != nil {
			return keys, err
		}
		keys = append(keys, key)
	}

	s.log.Info(ctx, "published results exported", "tables", len(keys))
	return keys, nil
}
