package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// TuningFiles are the file names LoadTuning tries, in order
var TuningFiles = []string{"tuning.yaml", "tuning.yml", "tuning.json"}

// LevelsDir is the directory level files are read from
const LevelsDir = "levels"

var levelExts = []string{".json", ".yaml", ".yml", ".tmx"}

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadTuning loads the first tuning file found on top of DefaultTuning.
// Missing files are not an error; the defaults are returned.
func (l *Loader) LoadTuning() (*TuningConfig, error) {
	cfg := DefaultTuning()

	for _, name := range TuningFiles {
		data, err := fs.ReadFile(l.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if err := decode(name, data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		break
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadLevel loads levels/<name> with the first matching extension
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	for _, ext := range levelExts {
		p := path.Join(LevelsDir, name+ext)
		if ext == ".tmx" {
			if _, err := fs.Stat(l.fsys, p); err != nil {
				continue
			}
			return LoadTMXLevel(l.fsys, p)
		}

		data, err := fs.ReadFile(l.fsys, p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read level %s: %w", name, err)
		}

		var cfg LevelConfig
		if err := decode(p, data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
		}
		if cfg.Name == "" {
			cfg.Name = name
		}
		return &cfg, nil
	}

	return nil, fmt.Errorf("level %s: %w", name, fs.ErrNotExist)
}

// LevelNames returns the sorted stem names of every level file
func (l *Loader) LevelNames() ([]string, error) {
	matches, err := fs.Glob(l.fsys, LevelsDir+"/*")
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", LevelsDir, err)
	}

	seen := make(map[string]bool)
	var names []string
	for _, m := range matches {
		ext := path.Ext(m)
		if !slices.Contains(levelExts, ext) {
			continue
		}
		stem := strings.TrimSuffix(path.Base(m), ext)
		if seen[stem] {
			continue
		}
		seen[stem] = true
		names = append(names, stem)
	}

	sort.Strings(names)
	return names, nil
}

func decode(name string, data []byte, v any) error {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	default:
		return json.Unmarshal(data, v)
	}
}
