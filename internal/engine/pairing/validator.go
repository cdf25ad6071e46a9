package pairing

import (
	"fmt"
	"strings"

	"go.trai.ch/reqlock/internal/core/domain"
	"go.trai.ch/zerr"
)

// Validate fails on the first pair, in set order, that still lacks a role.
func Validate(set *domain.PairSet) error {
	for _, pair := range set.Pairs() {
		if pair.Complete() {
			continue
		}
		missing, ok := pair.Missing()
		if !ok {
			// An empty pair cannot come out of Assemble.
			return zerr.With(zerr.Wrap(domain.ErrIncompletePair, "directory has no requirement files"), "dir", pair.Dir)
		}

		msg := fmt.Sprintf("directory %q has no %s file", pair.Dir, missing)
		err := zerr.Wrap(domain.ErrIncompletePair, msg)
		err = zerr.With(err, "dir", pair.Dir)
		err = zerr.With(err, "role", missing.String())
		return zerr.With(err, "expected", strings.Join(domain.Candidates(missing), " or "))
	}
	return nil
}
