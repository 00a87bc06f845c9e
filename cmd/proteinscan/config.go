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

package main

import (
	"log/slog"
	"os"

	"github.com/kraklabs/proteinscan/internal/bootstrap"
	"github.com/kraklabs/proteinscan/internal/errors"
	"github.com/kraklabs/proteinscan/pkg/catalog"
	"github.com/kraklabs/proteinscan/pkg/classifier"
)

// Environment overrides, applied on top of config.yaml and below flags.
const (
	envCatalog = "PROTEINSCAN_CATALOG"
	envCorpus  = "PROTEINSCAN_CORPUS"
)

// Settings is the effective configuration of one command run.
type Settings struct {
	// ConfigPath is the config file used, empty when none was found.
	ConfigPath string
	// CatalogPath is empty for the built-in catalog.
	CatalogPath    string
	CorpusPath     string
	Workers        int
	ExtractSection bool
}

// LoadSettings merges, in increasing precedence: built-in defaults, the
// config file (--config, or the nearest .proteinscan workspace), and the
// PROTEINSCAN_* environment variables. Command flags are applied by the
// caller.
func LoadSettings(configPath string) (*Settings, error) {
	s := &Settings{ExtractSection: true}

	if configPath == "" {
		if root, ok := bootstrap.FindWorkspace("."); ok {
			configPath = bootstrap.ConfigPath(root)
		}
	}
	if configPath != "" {
		cfg, err := bootstrap.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		s.ConfigPath = configPath
		s.CatalogPath = cfg.Catalog
		s.CorpusPath = cfg.Corpus
		s.Workers = cfg.Workers
		s.ExtractSection = cfg.ExtractSection()
	}

	if v := os.Getenv(envCatalog); v != "" {
		s.CatalogPath = v
	}
	if v := os.Getenv(envCorpus); v != "" {
		s.CorpusPath = v
	}

	slog.Debug("config.loaded",
		"config", s.ConfigPath,
		"catalog", s.CatalogPath,
		"corpus", s.CorpusPath,
		"workers", s.Workers,
	)
	return s, nil
}

// override replaces *dst with v when v is set.
func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// loadCatalog returns the catalog at path, or the built-in one for "".
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	slog.Info("catalog.loaded", "path", path, "labels", cat.Len())
	return cat, nil
}

// newClassifier builds a classifier from the effective settings.
func (s *Settings) newClassifier() (*classifier.Classifier, error) {
	cat, err := loadCatalog(s.CatalogPath)
	if err != nil {
		return nil, err
	}
	return classifier.New(cat,
		classifier.WithLogger(slog.Default()),
		classifier.WithSectionExtraction(s.ExtractSection),
		classifier.WithWorkers(s.Workers),
	), nil
}

// requireCorpus fails when no corpus path is configured.
func (s *Settings) requireCorpus() error {
	if s.CorpusPath != "" {
		return nil
	}
	return errors.NewInputError(
		"No test corpus configured",
		"Neither --corpus, PROTEINSCAN_CORPUS nor a .proteinscan workspace names one",
		"Run 'proteinscan init' or pass --corpus <file>",
	)
}
