package domain

import "path/filepath"

// Role is the part a file plays in a requirement pair.
type Role uint8

const (
	// RoleDeclaration is the human-edited dependency declaration.
	RoleDeclaration Role = iota
	// RoleLock is the machine-generated, fully pinned lock file.
	RoleLock
)

// Conventional requirement file names.
const (
	RequirementsInFile   = "requirements.in"
	RequirementsTxtFile  = "requirements.txt"
	RequirementsLockFile = "requirements-lock.txt"
)

var (
	declarationCandidates = []string{RequirementsInFile, RequirementsTxtFile}
	lockCandidates        = []string{RequirementsLockFile}
)

// String returns the role name used in diagnostics.
func (r Role) String() string {
	switch r {
	case RoleDeclaration:
		return "Declaration"
	case RoleLock:
		return "Lock"
	default:
		return "Unknown"
	}
}

// Other returns the complementary role.
func (r Role) Other() Role {
	if r == RoleDeclaration {
		return RoleLock
	}
	return RoleDeclaration
}

// Candidates returns the conventional file names for a role in preference order.
// The returned slice must not be modified.
func Candidates(r Role) []string {
	if r == RoleLock {
		return lockCandidates
	}
	return declarationCandidates
}

// Classify maps a path to its role by exact match on the base name.
// It reports false for files outside the requirement pair scheme.
func Classify(path string) (Role, bool) {
	switch filepath.Base(path) {
	case RequirementsInFile, RequirementsTxtFile:
		return RoleDeclaration, true
	case RequirementsLockFile:
		return RoleLock, true
	default:
		return 0, false
	}
}

// DirectoryKey returns the directory a requirement file belongs to.
func DirectoryKey(path string) string {
	return filepath.Dir(path)
}
