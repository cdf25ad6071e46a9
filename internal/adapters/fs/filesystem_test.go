package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reqlock/internal/adapters/fs"
	"go.trai.ch/reqlock/internal/core/domain"
)

func TestOSFS(t *testing.T) {
	dir := t.TempDir()
	lock := filepath.Join(dir, "requirements-lock.txt")
	require.NoError(t, os.WriteFile(lock, []byte("click==8.1.7\n"), domain.PrivateFilePerm))

	fsys := fs.NewOSFS()

	info, err := fsys.Stat(lock)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	data, err := fsys.ReadFile(lock)
	require.NoError(t, err)
	assert.Equal(t, "click==8.1.7\n", string(data))

	_, err = fsys.Stat(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMapFSAdapter(t *testing.T) {
	mapFS := fstest.MapFS{
		"pkgA/requirements.in":       {Data: []byte("click\n")},
		"pkgA/requirements-lock.txt": {Data: []byte("click==8.1.7\n")},
	}

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "relative path", path: "pkgA/requirements.in", want: "click\n"},
		{name: "dot prefix", path: "./pkgA/requirements-lock.txt", want: "click==8.1.7\n"},
		{name: "absolute path under root", path: "/repo/pkgA/requirements.in", want: "click\n"},
		{name: "absolute path outside root", path: "/elsewhere/pkgA/requirements.in", wantErr: true},
		{name: "missing file", path: "pkgB/requirements.in", wantErr: true},
	}

	fsys := fs.NewMapFSAdapter("/repo", mapFS)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := fsys.ReadFile(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}

	info, err := fsys.Stat("pkgA")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
