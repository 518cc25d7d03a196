// Package testdata locates test fixtures shared between packages.
package testdata

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Reader returns a reader for the given fixture file.
func Reader(file string) (io.Reader, error) {
	data, err := os.ReadFile(Path(file))
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}

// String returns the content of the given fixture file.
func String(file string) (string, error) {
	data, err := os.ReadFile(Path(file))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// LoadYAML decodes the given YAML fixture file into v.
func LoadYAML(file string, v interface{}) error {
	r, err := Reader(file)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to decode %v: %w", file, err)
	}
	return nil
}

// Path returns path for the given fixture file.
func Path(file string) string {
	_, pkgfile, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}

	return filepath.Join(filepath.Dir(pkgfile), file)
}
