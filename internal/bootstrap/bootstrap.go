// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package bootstrap

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kraklabs/proteinscan/internal/errors"
	"github.com/kraklabs/proteinscan/pkg/catalog"
	"github.com/kraklabs/proteinscan/pkg/corpus"
)

// Workspace layout.
const (
	DirName     = ".proteinscan"
	ConfigFile  = "config.yaml"
	CatalogFile = "catalog.yaml"
	CorpusFile  = "protein_test_cases.json"
)

// ConfigVersion is written to new config files.
const ConfigVersion = "1"

// Config is the content of .proteinscan/config.yaml.
type Config struct {
	Version string `yaml:"version"`

	// Catalog and Corpus are file paths; relative paths are resolved
	// against the directory holding config.yaml.
	Catalog string `yaml:"catalog"`
	Corpus  string `yaml:"corpus"`

	// Workers bounds batch classification and evaluation; 0 means one
	// per CPU.
	Workers int `yaml:"workers,omitempty"`

	// SectionExtraction defaults to true when omitted.
	SectionExtraction *bool `yaml:"section_extraction,omitempty"`
}

// DefaultConfig returns the configuration written by InitWorkspace.
func DefaultConfig() Config {
	on := true
	return Config{
		Version:           ConfigVersion,
		Catalog:           CatalogFile,
		Corpus:            CorpusFile,
		SectionExtraction: &on,
	}
}

// ExtractSection reports whether ingredient-section extraction is enabled.
func (c Config) ExtractSection() bool {
	return c.SectionExtraction == nil || *c.SectionExtraction
}

// Workspace describes an initialized .proteinscan directory.
type Workspace struct {
	Dir         string
	ConfigPath  string
	CatalogPath string
	CorpusPath  string

	// Written lists the files created or overwritten by InitWorkspace.
	Written []string
	// Skipped lists existing files InitWorkspace left untouched.
	Skipped []string
}

func newWorkspace(root string) *Workspace {
	dir := filepath.Join(root, DirName)
	return &Workspace{
		Dir:         dir,
		ConfigPath:  filepath.Join(dir, ConfigFile),
		CatalogPath: filepath.Join(dir, CatalogFile),
		CorpusPath:  filepath.Join(dir, CorpusFile),
	}
}

// InitWorkspace creates root/.proteinscan with a default config, the
// built-in catalog and the seed corpus. Existing files are kept unless
// force is true.
func InitWorkspace(root string, force bool, logger *slog.Logger) (*Workspace, error) {
	if logger == nil {
		logger = slog.Default()
	}
	ws := newWorkspace(root)

	logger.Info("bootstrap.workspace.init.start", "dir", ws.Dir, "force", force)

	if err := os.MkdirAll(ws.Dir, 0o755); err != nil {
		return nil, fsError("Cannot create workspace directory", ws.Dir, err)
	}

	files := []struct {
		path  string
		write func(io.Writer) error
	}{
		{ws.ConfigPath, writeConfig},
		{ws.CatalogPath, writeCatalog},
		{ws.CorpusPath, func(w io.Writer) error { return corpus.Save(w, corpus.Seed()) }},
	}
	for _, f := range files {
		if !force && exists(f.path) {
			logger.Info("bootstrap.file.skip", "path", f.path)
			ws.Skipped = append(ws.Skipped, f.path)
			continue
		}
		var buf bytes.Buffer
		if err := f.write(&buf); err != nil {
			return nil, errors.NewInternalError("Cannot render workspace file", f.path, "This is a bug; please report it", err)
		}
		if err := os.WriteFile(f.path, buf.Bytes(), 0o644); err != nil {
			return nil, fsError("Cannot write workspace file", f.path, err)
		}
		logger.Debug("bootstrap.file.written", "path", f.path, "bytes", buf.Len())
		ws.Written = append(ws.Written, f.path)
	}

	logger.Info("bootstrap.workspace.init.success",
		"dir", ws.Dir,
		"written", len(ws.Written),
		"skipped", len(ws.Skipped),
	)
	return ws, nil
}

func writeConfig(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(DefaultConfig()); err != nil {
		return err
	}
	return enc.Close()
}

func writeCatalog(w io.Writer) error {
	data, err := catalog.Marshal(catalog.Default())
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// FindWorkspace returns the nearest directory at or above start that
// contains a .proteinscan directory.
func FindWorkspace(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	for {
		if info, err := os.Stat(filepath.Join(dir, DirName)); err == nil && info.IsDir() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// ConfigPath returns the config.yaml path of the workspace rooted at root.
func ConfigPath(root string) string {
	return newWorkspace(root).ConfigPath
}

// LoadConfig reads a config file and resolves its relative paths.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewNotFoundError(
				"Config file not found",
				path,
				"Run 'proteinscan init' or pass --config",
			)
		}
		return nil, fsError("Cannot read config file", path, err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.NewConfigError(
			"Invalid config file",
			fmt.Sprintf("%s: %v", path, err),
			"Fix the YAML or regenerate it with 'proteinscan init --force'",
			err,
		)
	}
	if cfg.Workers < 0 {
		return nil, errors.NewConfigError(
			"Invalid config file",
			fmt.Sprintf("%s: workers must not be negative, got %d", path, cfg.Workers),
			"Set workers to 0 (one per CPU) or a positive number",
			nil,
		)
	}

	base := filepath.Dir(path)
	cfg.Catalog = resolve(base, cfg.Catalog)
	cfg.Corpus = resolve(base, cfg.Corpus)
	return &cfg, nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func fsError(msg, path string, err error) error {
	if stderrors.Is(err, fs.ErrPermission) {
		return errors.NewPermissionError(msg, path, "Check the directory permissions", err)
	}
	return errors.NewIOError(msg, fmt.Sprintf("%s: %v", path, err), "Check that the path is writable", err)
}
