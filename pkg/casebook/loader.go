// Package casebook loads regression cases, puzzle inputs paired with the
// answers they must produce, from YAML files.
package casebook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/advent-go/advent/pkg/types"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCase is returned for a case missing required fields.
var ErrInvalidCase = errors.New("invalid case")

// readFunc resolves an input_file reference.
type readFunc func(name string) ([]byte, error)

// Loader handles loading casebooks.
type Loader struct {
	fs fs.FS // embedded filesystem for builtin cases
}

// NewLoader creates a loader with the builtin cases.
func NewLoader() *Loader {
	return &Loader{
		fs: builtinCasesFS,
	}
}

// NewLoaderWithFS creates a loader whose builtin cases live in fsys under
// a "cases" directory.
func NewLoaderWithFS(fsys fs.FS) *Loader {
	return &Loader{
		fs: fsys,
	}
}

// Load parses casebook YAML. Relative input_file references resolve
// against dir on the local filesystem.
func (l *Loader) Load(data []byte, dir string) ([]types.Case, error) {
	return parse(data, func(name string) ([]byte, error) {
		if !filepath.IsAbs(name) {
			name = filepath.Join(dir, name)
		}
		return os.ReadFile(name)
	})
}

// LoadFile loads a casebook from a YAML file path.
func (l *Loader) LoadFile(p string) ([]types.Case, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", p, err)
	}
	cases, err := l.Load(data, filepath.Dir(p))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return cases, nil
}

// LoadPath loads a single casebook file, or every .yml/.yaml file under a
// directory in lexical order.
func (l *Loader) LoadPath(p string) ([]types.Case, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("casebook not found: %w", err)
	}
	if !info.IsDir() {
		return l.LoadFile(p)
	}

	var cases []types.Case
	err = filepath.WalkDir(p, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAML(file) {
			return nil
		}
		loaded, err := l.LoadFile(file)
		if err != nil {
			return err
		}
		cases = append(cases, loaded...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cases, nil
}

// LoadBuiltin loads every builtin casebook.
func (l *Loader) LoadBuiltin() ([]types.Case, error) {
	var cases []types.Case

	err := fs.WalkDir(l.fs, "cases", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAML(p) {
			return nil
		}

		data, err := fs.ReadFile(l.fs, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}
		dir := path.Dir(p)
		loaded, err := parse(data, func(name string) ([]byte, error) {
			return fs.ReadFile(l.fs, path.Join(dir, name))
		})
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", p, err)
		}
		cases = append(cases, loaded...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cases, nil
}

func parse(data []byte, read readFunc) ([]types.Case, error) {
	var book yamlCasebook
	if err := yaml.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(book.Cases) == 0 {
		return nil, fmt.Errorf("no cases found in YAML")
	}

	cases := make([]types.Case, 0, len(book.Cases))
	for i, yc := range book.Cases {
		c, err := convertYAMLCase(yc, read)
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", i+1, err)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// convertYAMLCase validates yc and loads its input.
func convertYAMLCase(yc yamlCase, read readFunc) (types.Case, error) {
	if yc.Day < 1 {
		return types.Case{}, fmt.Errorf("%w: day %d", ErrInvalidCase, yc.Day)
	}
	part := types.Part(yc.Part)
	if err := part.Validate(); err != nil {
		return types.Case{}, fmt.Errorf("%w: %w", ErrInvalidCase, err)
	}
	if yc.Want == nil {
		return types.Case{}, fmt.Errorf("%w: missing want", ErrInvalidCase)
	}
	if (yc.Input == "") == (yc.InputFile == "") {
		return types.Case{}, fmt.Errorf("%w: exactly one of input and input_file is required", ErrInvalidCase)
	}

	c := types.Case{
		Name:  yc.Name,
		Day:   types.Day(yc.Day),
		Part:  part,
		Input: yc.Input,
		Want:  *yc.Want,
	}
	if c.Name == "" {
		c.Name = fmt.Sprintf("%s part %d", c.Day, int(c.Part))
	}
	if yc.InputFile != "" {
		data, err := read(yc.InputFile)
		if err != nil {
			return types.Case{}, fmt.Errorf("input_file %s: %w", yc.InputFile, err)
		}
		c.Input = string(data)
	}
	return c, nil
}

func isYAML(p string) bool {
	ext := filepath.Ext(p)
	return ext == ".yml" || ext == ".yaml"
}
