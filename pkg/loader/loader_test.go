package loader

import "testing"

func TestDetectGraphFileType(t *testing.T) {
	tests := map[string]SourceFileType{
		"export.jsonld": SourceFileTypeJSONLD,
		"export.json":   SourceFileTypeJSONLD,
		"graph.YAML":    SourceFileTypeYAML,
		"graph.yml":     SourceFileTypeYAML,
		"graph":         SourceFileTypeJSONLD,
	}
	for path, want := range tests {
		if got := DetectGraphFileType(path); got != want {
			t.Fatalf("DetectGraphFileType(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestCacheKey(t *testing.T) {
	got := CacheKey(SourceFile{ID: "assets", FilePath: "/data/assets.csv"})
	if got != "assets:/data/assets.csv" {
		t.Fatalf("CacheKey = %q", got)
	}
}
