package persist

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the flat-file Adapter: one YAML document per storage location,
// mapping section name to key/value pairs. Every write rewrites the whole
// file, which keeps the on-disk state self-describing and editable.
type File struct {
	Path string
}

// DefaultFilePath returns the default state file for a location:
// ~/.filemru/<company>/<product>/<version>/state.yaml
func DefaultFilePath(loc Location) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".filemru", filepath.FromSlash(loc.Scope()), "state.yaml"), nil
}

// OpenFile returns a File adapter over the YAML document at path. The file
// is created lazily on first write.
func OpenFile(path string) *File {
	return &File{Path: path}
}

func (f *File) load() map[string]map[string]string {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("persist: read %s: %v", f.Path, err)
		}
		return map[string]map[string]string{}
	}

	doc := map[string]map[string]string{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		log.Printf("persist: parse %s: %v", f.Path, err)
		return map[string]map[string]string{}
	}
	return doc
}

func (f *File) save(doc map[string]map[string]string) error {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := os.WriteFile(f.Path, data, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

// ReadString implements Adapter. A missing file, section, or key yields the
// fallback.
func (f *File) ReadString(section, key, fallback string) string {
	doc := f.load()
	if kv, ok := doc[section]; ok {
		if v, ok := kv[key]; ok {
			return v
		}
	}
	return fallback
}

// WriteString implements Adapter.
func (f *File) WriteString(section, key, value string) error {
	doc := f.load()
	if doc[section] == nil {
		doc[section] = map[string]string{}
	}
	doc[section][key] = value
	return f.save(doc)
}

// EraseSection implements Adapter. Erasing a section absent from the file
// is a no-op.
func (f *File) EraseSection(section string) error {
	doc := f.load()
	if _, ok := doc[section]; !ok {
		return nil
	}
	delete(doc, section)
	return f.save(doc)
}

// Close implements Adapter.
func (f *File) Close() error {
	return nil
}
