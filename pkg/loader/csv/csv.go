package csv

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/OFFIS-RIT/cimgraph/pkg/loader"
	"github.com/OFFIS-RIT/cimgraph/pkg/logger"

	"golang.org/x/sync/singleflight"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrNoHeader is returned for input without a header line.
var ErrNoHeader = errors.New("CSV file is empty or has no header")

// CSVLoader wraps a base loader and strips a leading byte order mark, which
// spreadsheet exports commonly write and which would otherwise end up in the
// first column name.
type CSVLoader struct {
	loader loader.SourceFileLoader

	cache   map[string][]byte
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewCSVLoader creates a new CSVLoader with the given base loader.
func NewCSVLoader(loader loader.SourceFileLoader) *CSVLoader {
	return &CSVLoader{
		loader: loader,
		cache:  make(map[string][]byte),
	}
}

// GetFileContent retrieves the CSV file content without byte order mark.
func (l *CSVLoader) GetFileContent(ctx context.Context, file loader.SourceFile) ([]byte, error) {
	key := loader.CacheKey(file)

	l.cacheMu.RLock()
	if cached, ok := l.cache[key]; ok {
		l.cacheMu.RUnlock()
		return cached, nil
	}
	l.cacheMu.RUnlock()

	result, err, _ := l.group.Do(key, func() (any, error) {
		content, err := l.loader.GetFileContent(ctx, file)
		if err != nil {
			return nil, err
		}
		content = bytes.TrimPrefix(content, utf8BOM)

		l.cacheMu.Lock()
		l.cache[key] = content
		l.cacheMu.Unlock()

		return content, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}

// Row is one data row keyed by header name. Number counts data rows from 1,
// the header excluded.
type Row struct {
	Number int
	Fields map[string]string
}

// Get returns the value of column, or "" when the row has no such column.
func (r Row) Get(column string) string {
	return r.Fields[column]
}

// Options control how rows are read.
type Options struct {
	// Delimiter defaults to ','.
	Delimiter rune
	// Limit stops after that many data rows. Zero reads everything.
	Limit int
}

// EachRow parses content and calls fn for every non-empty data row. Rows that
// cannot be parsed are logged and skipped; an error from fn stops the loop and
// is returned.
func EachRow(content []byte, opts Options, fn func(Row) error) error {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(content, utf8BOM)))
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return ErrNoHeader
	}
	if err != nil {
		return fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	number := 0
	for {
		if opts.Limit > 0 && number >= opts.Limit {
			return nil
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			number++
			logger.Warn("[CSV] Skipping malformed row", "row", number, "err", err)
			continue
		}
		if isEmpty(record) {
			continue
		}

		number++
		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				fields[name] = record[i]
			}
		}
		if err := fn(Row{Number: number, Fields: fields}); err != nil {
			return err
		}
	}
}

// ParseDelimiter turns a flag value into a CSV delimiter. "\t" and "tab" are
// accepted for tab separated input.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return ',', nil
	case `\t`, "tab":
		return '\t', nil
	}
	r := []rune(s)
	if len(r) != 1 || r[0] == '"' || r[0] == '\r' || r[0] == '\n' {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return r[0], nil
}

func isEmpty(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
