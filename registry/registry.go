// Package registry is the pluggable format directory every codec package
// registers itself into from its own init(), rather than the registry
// importing every codec directly. A CLI driver blank-imports the codec
// packages it wants available and resolves a concrete format by name or
// by file extension at runtime.
package registry

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/particlezoo/phsp/errs"
	"github.com/particlezoo/phsp/phsp"
)

// Options is a multi-valued option bag a CLI driver passes through to a
// codec's OpenReader/CreateWriter: a command name maps to a list of
// string values rather than a per-format typed struct, so the registry
// itself never needs to know what options a given format accepts.
type Options map[string][]string

// Get returns the first value set for key, if any.
func (o Options) Get(key string) (string, bool) {
	v, ok := o[key]
	if !ok || len(v) == 0 {
		return "", false
	}

	return v[0], true
}

// Bool reports whether key is set to the literal string "true".
func (o Options) Bool(key string) bool {
	v, ok := o.Get(key)

	return ok && v == "true"
}

// All returns every value set for key.
func (o Options) All(key string) []string { return o[key] }

// OpenReaderFunc opens an existing phase-space file at path for reading.
type OpenReaderFunc func(path string, opts Options) (*phsp.Reader, error)

// CreateWriterFunc creates a new phase-space file at path for writing.
type CreateWriterFunc func(path string, opts Options) (*phsp.Writer, error)

// Format is one codec's registration: its canonical name, the file
// extensions it claims, and the constructors the registry dispatches to.
type Format struct {
	Name         string
	Extensions   []string
	OpenReader   OpenReaderFunc
	CreateWriter CreateWriterFunc
}

var (
	mu          sync.RWMutex
	byName      = make(map[string]Format)
	byExtension = make(map[string][]string)
)

// RegisterFormat adds a format to the registry. It is meant to be called
// from a codec package's init(); a duplicate name is a programming error
// and panics rather than being silently overwritten or surfaced as a
// runtime error a caller could mistake for a data problem.
func RegisterFormat(f Format) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := byName[f.Name]; exists {
		panic(fmt.Sprintf("registry: duplicate format registration for %q: %v", f.Name, errs.ErrDuplicateFormat))
	}
	byName[f.Name] = f

	for _, ext := range f.Extensions {
		ext = strings.ToLower(ext)
		byExtension[ext] = append(byExtension[ext], f.Name)
	}
}

// Lookup returns the format registered under name.
func Lookup(name string) (Format, bool) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := byName[name]

	return f, ok
}

// FormatsForExtension returns every format name claiming ext. If no format
// claims ext exactly, trailing digits are stripped and the lookup retried
// once--this is what lets ".egsphsp1", ".egsphsp2", and so on (EGS's
// numbered-chunk convention) all resolve to the single "EGS" format
// registered under plain ".egsphsp".
func FormatsForExtension(ext string) []string {
	mu.RLock()
	defer mu.RUnlock()

	ext = strings.ToLower(ext)
	if names, ok := byExtension[ext]; ok {
		return append([]string(nil), names...)
	}

	trimmed := strings.TrimRight(ext, "0123456789")
	if trimmed != ext {
		if names, ok := byExtension[trimmed]; ok {
			return append([]string(nil), names...)
		}
	}

	return nil
}

// RegisteredFormats returns every registered format name, sorted.
func RegisteredFormats() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// resolve picks the Format for path, preferring an explicit formatName when
// given, and otherwise resolving by extension--erroring with
// ErrAmbiguousFormat if more than one codec claims it, or ErrUnknownFormat
// if none does.
func resolve(path, formatName string) (Format, error) {
	if formatName != "" {
		f, ok := Lookup(formatName)
		if !ok {
			return Format{}, fmt.Errorf("%w: %q", errs.ErrUnknownFormat, formatName)
		}

		return f, nil
	}

	ext := filepath.Ext(path)
	names := FormatsForExtension(ext)
	switch len(names) {
	case 0:
		return Format{}, fmt.Errorf("%w: no format registered for extension %q", errs.ErrUnknownFormat, ext)
	case 1:
		f, _ := Lookup(names[0])

		return f, nil
	default:
		return Format{}, fmt.Errorf("%w: extension %q matches formats %s", errs.ErrAmbiguousFormat, ext, strings.Join(names, ", "))
	}
}

// OpenReader resolves a format by explicit name (if formatName is
// non-empty) or by the extension of path, then opens path for reading.
func OpenReader(path, formatName string, opts Options) (*phsp.Reader, error) {
	f, err := resolve(path, formatName)
	if err != nil {
		return nil, err
	}

	return f.OpenReader(path, opts)
}

// CreateWriter resolves a format by explicit name (if formatName is
// non-empty) or by the extension of path, then creates path for writing.
func CreateWriter(path, formatName string, opts Options) (*phsp.Writer, error) {
	f, err := resolve(path, formatName)
	if err != nil {
		return nil, err
	}

	return f.CreateWriter(path, opts)
}
