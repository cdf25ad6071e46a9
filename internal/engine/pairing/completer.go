package pairing

import (
	"fmt"
	"path/filepath"

	"go.trai.ch/reqlock/internal/core/domain"
	"go.trai.ch/reqlock/internal/core/ports"
)

// Completer fills the missing half of a pair from files already on disk.
type Completer struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewCompleter creates a Completer probing the given filesystem.
func NewCompleter(fsys ports.FileSystem, logger ports.Logger) *Completer {
	return &Completer{fs: fsys, logger: logger}
}

// Complete looks up the conventional names of each pair's missing role in preference
// order and records the first regular file found. Pairs without a match are left
// incomplete for Validate to reject.
func (c *Completer) Complete(set *domain.PairSet) {
	for _, pair := range set.Pairs() {
		missing, ok := pair.Missing()
		if !ok {
			continue
		}
		if path, found := c.lookup(pair.Dir, missing); found {
			c.logger.Debug(fmt.Sprintf("%s: using %s from disk", pair.Dir, path))
			set.Fill(pair.Dir, missing, path)
		}
	}
}

func (c *Completer) lookup(dir string, role domain.Role) (string, bool) {
	for _, name := range domain.Candidates(role) {
		path := filepath.Join(dir, name)
		info, err := c.fs.Stat(path)
		if err != nil {
			continue
		}
		if info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}
