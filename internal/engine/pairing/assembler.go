// Package pairing builds complete requirement pairs from the files a hook reports as changed.
package pairing

import "go.trai.ch/reqlock/internal/core/domain"

// Assemble groups the recognized paths by directory. Paths outside the requirement
// file scheme are ignored. It does not touch the filesystem.
func Assemble(paths []string) (*domain.PairSet, error) {
	set := domain.NewPairSet()
	for _, path := range paths {
		if _, ok := domain.Classify(path); !ok {
			continue
		}
		if err := set.Add(path); err != nil {
			return nil, err
		}
	}
	return set, nil
}
