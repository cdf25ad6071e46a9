package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/reqlock/internal/core/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantRole domain.Role
		wantOK   bool
	}{
		{name: "requirements.in", path: "pkgA/requirements.in", wantRole: domain.RoleDeclaration, wantOK: true},
		{name: "requirements.txt", path: "pkgA/requirements.txt", wantRole: domain.RoleDeclaration, wantOK: true},
		{name: "lock file", path: "pkgA/requirements-lock.txt", wantRole: domain.RoleLock, wantOK: true},
		{name: "bare name", path: "requirements.in", wantRole: domain.RoleDeclaration, wantOK: true},
		{name: "nested directory", path: "a/b/c/requirements-lock.txt", wantRole: domain.RoleLock, wantOK: true},
		{name: "unrelated file", path: "pkgA/setup.py", wantOK: false},
		{name: "prefix only", path: "pkgA/requirements.in.bak", wantOK: false},
		{name: "directory named like a declaration", path: "requirements.in/README.md", wantOK: false},
		{name: "case sensitive", path: "pkgA/Requirements.in", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, ok := domain.Classify(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantRole, role)
			}
		})
	}
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "Declaration", domain.RoleDeclaration.String())
	assert.Equal(t, "Lock", domain.RoleLock.String())
	assert.Equal(t, "Unknown", domain.Role(7).String())
}

func TestRole_Other(t *testing.T) {
	assert.Equal(t, domain.RoleLock, domain.RoleDeclaration.Other())
	assert.Equal(t, domain.RoleDeclaration, domain.RoleLock.Other())
}

func TestCandidates(t *testing.T) {
	assert.Equal(t, []string{"requirements.in", "requirements.txt"}, domain.Candidates(domain.RoleDeclaration))
	assert.Equal(t, []string{"requirements-lock.txt"}, domain.Candidates(domain.RoleLock))
}

func TestDirectoryKey(t *testing.T) {
	assert.Equal(t, "pkgA", domain.DirectoryKey("pkgA/requirements.in"))
	assert.Equal(t, ".", domain.DirectoryKey("requirements.in"))
	assert.Equal(t, "a/b", domain.DirectoryKey("a/b/requirements-lock.txt"))
}
