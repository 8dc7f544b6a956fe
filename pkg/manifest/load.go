package manifest

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mverbeek/depchart/pkg/errors"
)

// Manifest source formats.
const (
	SourceTOML = "toml"
	SourceJSON = "json"
)

// DetectSource maps a file path to its manifest format by extension.
// Returns an UNSUPPORTED error for anything other than .toml and .json.
func DetectSource(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return SourceTOML, nil
	case ".json":
		return SourceJSON, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unsupported manifest extension %q (want .toml or .json)", filepath.Ext(path))
	}
}

// LoadFile reads, decodes, and validates a manifest file. The format is
// detected from the extension. When the document has no name, the file's
// base name (without extension) stands in.
func LoadFile(path string) (*Document, error) {
	source, err := DetectSource(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read manifest %s", path)
	}

	doc, err := Decode(bytes.NewReader(data), source)
	if err != nil {
		return nil, err
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return doc, nil
}

// Decode decodes and validates a manifest document from r in the given
// source format (SourceTOML or SourceJSON).
func Decode(r io.Reader, source string) (*Document, error) {
	var doc Document

	switch source {
	case SourceTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode TOML manifest")
		}
	case SourceJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode JSON manifest")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported manifest source %q", source)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Marshal serializes the document as indented JSON. The output is the
// canonical byte form used for cache keys and for round-tripping through
// the HTTP API.
func Marshal(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode manifest")
	}
	return buf.Bytes(), nil
}

// Write writes the document as JSON to w.
func Write(d *Document, w io.Writer) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
