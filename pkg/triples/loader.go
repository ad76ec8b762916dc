package triples

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/OFFIS-RIT/cimgraph/pkg/loader"
	"github.com/OFFIS-RIT/cimgraph/pkg/logger"

	"github.com/kaptinlin/jsonrepair"
	"gopkg.in/yaml.v3"
)

const (
	keyID    = "@id"
	keyType  = "@type"
	keyGraph = "@graph"
)

// ErrNoGraph is returned when a document has no @graph array.
var ErrNoGraph = errors.New("document has no @graph array")

// Load reads file through its loader and parses it according to its type.
func Load(ctx context.Context, file loader.SourceFile) (*Store, error) {
	data, err := file.GetContent(ctx)
	if err != nil {
		return nil, err
	}

	switch file.FileType {
	case loader.SourceFileTypeYAML:
		return LoadYAML(data)
	default:
		return LoadJSONLD(data)
	}
}

// LoadJSONLD parses a JSON-LD document. Input that is not valid JSON is run
// through a JSON repair pass before it is rejected.
func LoadJSONLD(data []byte) (*Store, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		repaired, rerr := jsonrepair.JSONRepair(strings.TrimSpace(string(data)))
		if rerr != nil {
			return nil, fmt.Errorf("failed to parse JSON-LD: %w", err)
		}
		if err := json.Unmarshal([]byte(repaired), &doc); err != nil {
			return nil, fmt.Errorf("failed to parse repaired JSON-LD: %w", err)
		}
		logger.Warn("[Triples] Input was not valid JSON and has been repaired")
	}
	return build(doc)
}

// LoadYAML parses the YAML rendition of a JSON-LD document.
func LoadYAML(data []byte) (*Store, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML graph: %w", err)
	}
	return build(doc)
}

func build(doc any) (*Store, error) {
	nodes, err := graphNodes(doc)
	if err != nil {
		return nil, err
	}

	s := newStore()
	for i, n := range nodes {
		id, _ := n[keyID].(string)
		if id == "" {
			logger.Debug("[Triples] Skipping graph node without @id", "index", i)
			continue
		}
		s.addResource(id, declaredType(n[keyType]))
	}

	dropped := 0
	for _, n := range nodes {
		subject, _ := n[keyID].(string)
		if subject == "" {
			continue
		}

		keys := make([]string, 0, len(n))
		for k := range n {
			if !strings.HasPrefix(k, "@") {
				keys = append(keys, k)
			}
		}
		slices.Sort(keys)

		for _, predicate := range keys {
			for _, object := range references(n[predicate]) {
				if !s.Has(object) {
					logger.Debug("[Triples] Dropping reference to unknown resource", "subject", subject, "predicate", predicate, "object", object)
					dropped++
					continue
				}
				s.addTriple(Triple{Subject: subject, Predicate: predicate, Object: object})
			}
		}
	}

	logger.Debug("[Triples] Loaded graph", "resources", s.Resources(), "triples", s.Len(), "dropped", dropped)
	return s, nil
}

func graphNodes(doc any) ([]map[string]any, error) {
	var raw []any
	switch d := doc.(type) {
	case map[string]any:
		g, ok := d[keyGraph].([]any)
		if !ok {
			return nil, ErrNoGraph
		}
		raw = g
	case []any:
		raw = d
	default:
		return nil, ErrNoGraph
	}

	nodes := make([]map[string]any, 0, len(raw))
	for _, r := range raw {
		if n, ok := r.(map[string]any); ok {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

// declaredType accepts a single type or a list, in which case the first
// entry wins.
func declaredType(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		for _, e := range t {
			if s, ok := e.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// references extracts the ids of {"@id": X} values, alone or in a list.
func references(v any) []string {
	switch t := v.(type) {
	case map[string]any:
		if id, ok := t[keyID].(string); ok && id != "" {
			return []string{id}
		}
	case []any:
		var ids []string
		for _, e := range t {
			ids = append(ids, references(e)...)
		}
		return ids
	}
	return nil
}
