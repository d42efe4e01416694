package paths

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// RootEnv names the environment variable that overrides [Root].
const RootEnv = "TYTHON_ROOT"

// DefaultPerm is the permission used for written files unless [WithPerm]
// says otherwise. Parent directories are created with the execute bits
// added.
const DefaultPerm fs.FileMode = 0o644

// Path is a file path with convenience readers and writers. Paths are
// values: Join and Prefix return new paths.
type Path struct {
	path string
	perm fs.FileMode
}

type options struct {
	root string
	perm fs.FileMode
}

// Option configures a Path at construction.
type Option func(*options)

// WithRoot resolves the path against dir.
func WithRoot(dir string) Option {
	return func(o *options) { o.root = dir }
}

// WithPerm sets the permission bits for files the Path writes.
func WithPerm(perm fs.FileMode) Option {
	return func(o *options) { o.perm = perm }
}

// Root returns the directory internal paths are resolved against: the
// value of TYTHON_ROOT when set, the working directory otherwise.
func Root() string {
	if root := os.Getenv(RootEnv); root != "" {
		return root
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// New returns a Path for path, used as given unless [WithRoot] is passed.
func New(path string, opts ...Option) Path {
	o := options{perm: DefaultPerm}
	for _, opt := range opts {
		opt(&o)
	}
	if o.root != "" {
		path = filepath.Join(o.root, strings.TrimPrefix(path, "/"))
	}
	return Path{path: path, perm: o.perm}
}

// Internal returns a Path relative to the project [Root]. A leading "/" in
// path is ignored.
func Internal(path string, opts ...Option) Path {
	return New(path, append([]Option{WithRoot(Root())}, opts...)...)
}

// String returns the path as a string.
func (p Path) String() string { return p.path }

// Base returns the last element of the path.
func (p Path) Base() string { return filepath.Base(p.path) }

// Ext returns the file extension, including the dot.
func (p Path) Ext() string { return filepath.Ext(p.path) }

// Stem returns the base name without its extension.
func (p Path) Stem() string { return strings.TrimSuffix(p.Base(), p.Ext()) }

// Dir returns the parent directory.
func (p Path) Dir() Path { return Path{path: filepath.Dir(p.path), perm: p.perm} }

// Join appends parts to the path. A leading "/" on a part is dropped so it
// cannot reset the path to the filesystem root.
func (p Path) Join(parts ...string) Path {
	elems := make([]string, 0, len(parts)+1)
	elems = append(elems, p.path)
	for _, part := range parts {
		elems = append(elems, strings.TrimPrefix(part, "/"))
	}
	return Path{path: filepath.Join(elems...), perm: p.perm}
}

// Prefix returns the path placed under dir.
func (p Path) Prefix(dir string) Path {
	return Path{path: filepath.Join(dir, p.path), perm: p.perm}
}

// Exists reports whether anything exists at the path.
func (p Path) Exists() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

// Delete removes the file. Deleting a missing file is an error.
func (p Path) Delete() error {
	if err := os.Remove(p.path); err != nil {
		return errors.Wrapf(err, "paths: delete %s", p.path)
	}
	logger().Debug("deleted", zap.String("path", p.path))
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Reading
//
// Readers return (value, ok, err). A missing file is not an error: ok is
// false and err is nil. Any other failure is returned as err.
// ─────────────────────────────────────────────────────────────────────────────

func (p Path) read() ([]byte, bool, error) {
	b, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger().Debug("absent", zap.String("path", p.path))
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "paths: read %s", p.path)
	}
	return b, true, nil
}

// ReadText returns the file contents.
func (p Path) ReadText() (string, bool, error) {
	b, ok, err := p.read()
	return string(b), ok, err
}

// ReadLines returns the file's lines without their line endings.
func (p Path) ReadLines() ([]string, bool, error) {
	text, ok, err := p.ReadText()
	if !ok || err != nil {
		return nil, ok, err
	}
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return []string{}, true, nil
	}
	return strings.Split(text, "\n"), true, nil
}

// ReadJSON decodes the file as JSON into generic values (objects become
// map[string]any, numbers float64).
func (p Path) ReadJSON() (any, bool, error) { return ReadJSONAs[any](p) }

// ReadYAML decodes the file as YAML into generic values.
func (p Path) ReadYAML() (any, bool, error) { return ReadYAMLAs[any](p) }

// ReadJSONAs decodes the file at p as JSON into a T.
func ReadJSONAs[T any](p Path) (T, bool, error) {
	var v T
	b, ok, err := p.read()
	if !ok || err != nil {
		return v, ok, err
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, true, errors.Wrapf(err, "paths: decode json %s", p.path)
	}
	return v, true, nil
}

// ReadYAMLAs decodes the file at p as YAML into a T.
func ReadYAMLAs[T any](p Path) (T, bool, error) {
	var v T
	b, ok, err := p.read()
	if !ok || err != nil {
		return v, ok, err
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return v, true, errors.Wrapf(err, "paths: decode yaml %s", p.path)
	}
	return v, true, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Writing
// ─────────────────────────────────────────────────────────────────────────────

func (p Path) write(b []byte) error {
	if err := os.MkdirAll(filepath.Dir(p.path), p.perm|0o111); err != nil {
		return errors.Wrapf(err, "paths: create parent of %s", p.path)
	}
	if err := os.WriteFile(p.path, b, p.perm); err != nil {
		return errors.Wrapf(err, "paths: write %s", p.path)
	}
	logger().Debug("wrote", zap.String("path", p.path), zap.Int("bytes", len(b)))
	return nil
}

// WriteText replaces the file contents with text, creating parent
// directories as needed.
func (p Path) WriteText(text string) error { return p.write([]byte(text)) }

// WriteJSON writes v as JSON indented by four spaces, with object keys
// sorted.
func (p Path) WriteJSON(v any) error {
	b, err := json.Marshal(v, jsontext.WithIndent("    "), json.Deterministic(true))
	if err != nil {
		return errors.Wrapf(err, "paths: encode json %s", p.path)
	}
	return p.write(append(b, '\n'))
}

// WriteYAML writes v as YAML.
func (p Path) WriteYAML(v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "paths: encode yaml %s", p.path)
	}
	return p.write(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Documents
// ─────────────────────────────────────────────────────────────────────────────

type docFormat int

const (
	formatJSON docFormat = iota + 1
	formatYAML
)

func (p Path) docFormat() (docFormat, error) {
	switch strings.ToLower(p.Ext()) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedFormat, "paths: %s", p.path)
}

// ReadDocument decodes a JSON or YAML file, chosen by extension.
func (p Path) ReadDocument() (any, bool, error) {
	f, err := p.docFormat()
	if err != nil {
		return nil, false, err
	}
	if f == formatJSON {
		return p.ReadJSON()
	}
	return p.ReadYAML()
}

// WriteDocument encodes v as JSON or YAML, chosen by extension.
func (p Path) WriteDocument(v any) error {
	f, err := p.docFormat()
	if err != nil {
		return err
	}
	if f == formatJSON {
		return p.WriteJSON(v)
	}
	return p.WriteYAML(v)
}

// Lookup reads the document and returns the value at the dot-notation key
// (see [Dig]). A missing file or key gives ok == false and no error.
func (p Path) Lookup(key string) (any, bool, error) {
	doc, ok, err := p.ReadDocument()
	if !ok || err != nil {
		return nil, ok, err
	}
	v, found := Dig(doc, key)
	return v, found, nil
}

// Update sets the dot-notation key in the document to value and writes it
// back, creating the file if needed. A nil value removes the key.
func (p Path) Update(key string, value any) error {
	doc, ok, err := p.ReadDocument()
	if err != nil {
		return err
	}
	tree := map[string]any{}
	if ok && doc != nil {
		m, isMap := doc.(map[string]any)
		if !isMap {
			return errors.Wrapf(ErrNotADocument, "paths: %s", p.path)
		}
		tree = m
	}
	if value == nil {
		Forget(tree, key)
	} else if err := Put(tree, key, value); err != nil {
		return errors.Wrapf(err, "paths: %s", p.path)
	}
	return p.WriteDocument(tree)
}
