// Package config provides the configuration loader for reqlock.
package config

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"

	"go.trai.ch/reqlock/internal/core/domain"
	"go.trai.ch/reqlock/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     ports.FileSystem
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger and filesystem.
func NewLoader(logger ports.Logger, fsys ports.FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load finds the nearest config file at or above cwd and merges it over the defaults.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, found := l.findConfiguration(cwd)
	if !found {
		l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
		return domain.DefaultConfig(), nil
	}

	l.Logger.Debug("using config " + configPath)

	var file Configfile
	if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	cfg := toDomain(&file)
	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) readAndUnmarshalYAML(path string, out *Configfile) error {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "cannot read "+domain.ConfigFileName), "path", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, err), "cannot parse "+domain.ConfigFileName), "path", path)
	}
	return nil
}

// toDomain overlays the sections present in the file onto the default configuration.
// A missing version is treated as the current one.
func toDomain(file *Configfile) *domain.Config {
	cfg := domain.DefaultConfig()

	if file.Version != "" {
		cfg.Version = file.Version
	}

	if r := file.Resolver; r != nil {
		if r.Command != nil {
			cfg.Resolver.Command = r.Command
		}
		cfg.Resolver.Args = r.Args
		cfg.Resolver.Env = r.Env
	}

	if c := file.Check; c != nil && c.SortDirectories != nil {
		cfg.Check.SortDirectories = *c.SortDirectories
	}

	if t := file.TestRunner; t != nil && t.Command != nil {
		cfg.TestRunner.Command = t.Command
	}

	return cfg
}
