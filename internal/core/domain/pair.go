package domain

import (
	"path/filepath"
	"slices"

	"go.trai.ch/zerr"
)

// Pair associates one directory's declaration and lock files.
type Pair struct {
	Dir   string
	paths [2]string
	// declared is set when the declaration was part of the changed-file input
	// rather than discovered on disk.
	declared bool
}

// NewPair creates an empty pair for the given directory.
func NewPair(dir string) *Pair {
	return &Pair{Dir: dir}
}

// Get returns the path recorded for the role, or "" when the role is absent.
func (p *Pair) Get(r Role) string {
	if int(r) >= len(p.paths) {
		return ""
	}
	return p.paths[r]
}

// Has reports whether a path is recorded for the role.
func (p *Pair) Has(r Role) bool {
	return p.Get(r) != ""
}

// Set records a path for the role, replacing any earlier one.
func (p *Pair) Set(r Role, path string) {
	p.paths[r] = path
}

// Complete reports whether both roles are populated.
func (p *Pair) Complete() bool {
	return p.Has(RoleDeclaration) && p.Has(RoleLock)
}

// Missing returns the absent role of a half-populated pair.
// It reports false when the pair is complete or empty.
func (p *Pair) Missing() (Role, bool) {
	for _, role := range []Role{RoleDeclaration, RoleLock} {
		if p.Has(role) && !p.Has(role.Other()) {
			return role.Other(), true
		}
	}
	return 0, false
}

// Declared reports whether the declaration came from the changed-file input.
func (p *Pair) Declared() bool {
	return p.declared
}

// Declaration returns the declaration file path.
func (p *Pair) Declaration() string {
	return p.Get(RoleDeclaration)
}

// Lock returns the lock file path.
func (p *Pair) Lock() string {
	return p.Get(RoleLock)
}

// PairSet maps directories to pairs and keeps the order in which directories were
// first seen. It is built once per run and only mutated during completion.
type PairSet struct {
	order []string
	pairs map[string]*Pair
}

// NewPairSet creates an empty PairSet.
func NewPairSet() *PairSet {
	return &PairSet{pairs: make(map[string]*Pair)}
}

// Add classifies a changed path and records it under its directory.
// Later paths for the same directory and role replace earlier ones.
func (s *PairSet) Add(path string) error {
	role, ok := Classify(path)
	if !ok {
		return zerr.With(zerr.Wrap(ErrUnknownInput, "cannot pair "+filepath.Base(path)), "path", path)
	}

	pair := s.pair(DirectoryKey(path))
	pair.Set(role, path)
	if role == RoleDeclaration {
		pair.declared = true
	}
	return nil
}

// Fill records a path discovered on disk for the role of an existing directory.
func (s *PairSet) Fill(dir string, r Role, path string) {
	s.pair(dir).Set(r, path)
}

func (s *PairSet) pair(dir string) *Pair {
	p, ok := s.pairs[dir]
	if !ok {
		p = NewPair(dir)
		s.pairs[dir] = p
		s.order = append(s.order, dir)
	}
	return p
}

// Get returns the pair for a directory.
func (s *PairSet) Get(dir string) (*Pair, bool) {
	p, ok := s.pairs[dir]
	return p, ok
}

// Len returns the number of directories in the set.
func (s *PairSet) Len() int {
	return len(s.order)
}

// Dirs returns the directories in insertion order.
func (s *PairSet) Dirs() []string {
	return slices.Clone(s.order)
}

// Pairs returns the pairs in insertion order.
func (s *PairSet) Pairs() []*Pair {
	out := make([]*Pair, 0, len(s.order))
	for _, dir := range s.order {
		out = append(out, s.pairs[dir])
	}
	return out
}

// Sorted returns a copy of the set whose directories iterate in lexical order.
func (s *PairSet) Sorted() *PairSet {
	out := &PairSet{
		order: slices.Clone(s.order),
		pairs: make(map[string]*Pair, len(s.pairs)),
	}
	slices.Sort(out.order)
	for dir, p := range s.pairs {
		out.pairs[dir] = p
	}
	return out
}
