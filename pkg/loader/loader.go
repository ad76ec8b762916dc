package loader

import (
	"context"
	"path/filepath"
	"strings"
)

type SourceFileType string

const (
	SourceFileTypeCSV    SourceFileType = "csv"
	SourceFileTypeJSONLD SourceFileType = "jsonld"
	SourceFileTypeYAML   SourceFileType = "yaml"
)

// SourceFile is an input of one pipeline run: a table of records or a typed
// resource graph. The content is retrieved via the associated SourceFileLoader.
type SourceFile struct {
	ID       string
	FilePath string
	FileType SourceFileType
	Loader   SourceFileLoader
}

// NewSourceFileParams defines the input parameters for the SourceFile
// constructors.
type NewSourceFileParams struct {
	ID       string
	FilePath string
	Loader   SourceFileLoader
}

// NewCSVFile creates a new SourceFile of type SourceFileTypeCSV.
func NewCSVFile(params NewSourceFileParams) SourceFile {
	return SourceFile{
		ID:       params.ID,
		FilePath: params.FilePath,
		FileType: SourceFileTypeCSV,
		Loader:   params.Loader,
	}
}

// NewGraphFile creates a SourceFile for a typed resource graph. The type is
// taken from the file extension: .yaml and .yml are YAML, everything else is
// read as JSON-LD.
func NewGraphFile(params NewSourceFileParams) SourceFile {
	return SourceFile{
		ID:       params.ID,
		FilePath: params.FilePath,
		FileType: DetectGraphFileType(params.FilePath),
		Loader:   params.Loader,
	}
}

// DetectGraphFileType maps a file path to the graph encoding it holds.
func DetectGraphFileType(path string) SourceFileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SourceFileTypeYAML
	default:
		return SourceFileTypeJSONLD
	}
}

// GetContent retrieves the raw content of the file using its Loader.
//
// Example:
//
//	data, err := file.GetContent(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
func (f *SourceFile) GetContent(ctx context.Context) ([]byte, error) {
	return f.Loader.GetFileContent(ctx, *f)
}

// SourceFileLoader defines the interface for loading the contents of a
// SourceFile. Implementations may read from disk or wrap another loader to
// normalise its output.
type SourceFileLoader interface {
	GetFileContent(ctx context.Context, file SourceFile) ([]byte, error)
}

// CacheKey identifies a file in loader caches.
func CacheKey(file SourceFile) string {
	return file.ID + ":" + file.FilePath
}
