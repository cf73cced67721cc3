// Package bundle persists named sets of F1 source paths on disk.
package bundle

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/pitwall-cli/internal/f1"
	"github.com/KaramelBytes/pitwall-cli/internal/utils"
)

const fileName = "bundle.json"

var (
	ErrNotFound = errors.New("bundle not found")
	ErrExists   = errors.New("bundle already exists")
)

// Bundle is a saved selection of driver, result and race files.
type Bundle struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Drivers     string    `json:"drivers" yaml:"drivers"`
	Results     string    `json:"results" yaml:"results"`
	Races       string    `json:"races" yaml:"races"`
	ImagesDir   string    `json:"images_dir,omitempty" yaml:"images_dir,omitempty"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`

	rootDir string
}

// New builds an in-memory bundle rooted at dir. Relative paths are made
// absolute against the current working directory. Call Save to persist.
func New(name, description, dir string, src f1.Sources, imagesDir string) (*Bundle, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	b := &Bundle{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		rootDir:     dir,
	}
	var err error
	for _, p := range []struct {
		dst *string
		src string
	}{
		{&b.Drivers, src.Drivers},
		{&b.Results, src.Results},
		{&b.Races, src.Races},
		{&b.ImagesDir, imagesDir},
	} {
		if p.src == "" {
			continue
		}
		if *p.dst, err = absPath(p.src); err != nil {
			return nil, err
		}
	}
	if b.Drivers == "" || b.Results == "" || b.Races == "" {
		return nil, errors.New("bundle needs drivers, results and races paths")
	}
	return b, nil
}

// ValidateName rejects names that cannot be used as a directory.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("bundle name is required")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid bundle name %q", name)
	}
	return nil
}

func absPath(p string) (string, error) {
	p, err := utils.ExpandHome(p)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", p, err)
	}
	return abs, nil
}

// Load reads bundle.json from dir.
func Load(dir string) (*Bundle, error) {
	path := filepath.Join(dir, fileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("read bundle: %w", err)
	}
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse bundle: %w", err)
	}
	b.rootDir = dir
	return &b, nil
}

// RootDir returns the directory holding bundle.json.
func (b *Bundle) RootDir() string { return b.rootDir }

// Exists reports whether dir already holds a bundle.
func Exists(dir string) bool {
	return utils.FileExists(filepath.Join(dir, fileName))
}

// Create saves b unless its directory already holds a bundle.
func (b *Bundle) Create() error {
	if Exists(b.rootDir) {
		return fmt.Errorf("%w at %s", ErrExists, b.rootDir)
	}
	return b.Save()
}

// Save writes bundle.json atomically.
func (b *Bundle) Save() error {
	if b.rootDir == "" {
		return errors.New("bundle root directory not set")
	}
	if err := utils.EnsureDir(b.rootDir); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	b.UpdatedAt = time.Now()
	data, err := utils.PrettyJSON(b)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(b.rootDir, fileName), data)
}

// Sources returns the bundle's paths in loader form.
func (b *Bundle) Sources() f1.Sources {
	return f1.Sources{Drivers: b.Drivers, Results: b.Results, Races: b.Races}
}

// YAML renders the bundle for display.
func (b *Bundle) YAML() (string, error) {
	out, err := yaml.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("marshal bundle: %w", err)
	}
	return string(out), nil
}

// List returns the names of bundles under root, sorted. A missing root
// yields no bundles.
func List(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read bundles dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() && Exists(filepath.Join(root, e.Name())) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
