package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaacfidler/cratedig/pkg/config"
	"github.com/isaacfidler/cratedig/pkg/errors"
	"github.com/isaacfidler/cratedig/pkg/types"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvSourceDir, "")
	t.Setenv(EnvOrganizedDir, "")
}

func TestResolveOrder(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		env      map[string]string
		cfg      config.Paths
		wantSrc  string
		wantDest string
	}{
		{
			name:     "explicit flags win",
			opts:     Options{SourceRoot: "/flag/src", OrganizedRoot: "/flag/dest"},
			env:      map[string]string{EnvSourceDir: "/env/src"},
			cfg:      config.Paths{SourceRoot: "/cfg/src"},
			wantSrc:  "/flag/src",
			wantDest: "/flag/dest",
		},
		{
			name:     "environment beats config",
			env:      map[string]string{EnvSourceDir: "/env/src", EnvOrganizedDir: "/env/dest"},
			cfg:      config.Paths{SourceRoot: "/cfg/src", OrganizedRoot: "/cfg/dest"},
			wantSrc:  "/env/src",
			wantDest: "/env/dest",
		},
		{
			name:     "config file value",
			cfg:      config.Paths{SourceRoot: "/cfg/src", OrganizedRoot: "/cfg/dest"},
			wantSrc:  "/cfg/src",
			wantDest: "/cfg/dest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			p, err := Resolve(&config.Config{Paths: tt.cfg}, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSrc, p.SourceRoot())
			assert.Equal(t, tt.wantDest, p.OrganizedRoot())
		})
	}
}

func TestResolveDefaultsToHome(t *testing.T) {
	clearEnv(t)

	p, err := Resolve(&config.Config{}, Options{})
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(p.SourceRoot()))
	assert.Contains(t, filepath.ToSlash(p.SourceRoot()), DefaultSourceRel)
	assert.Contains(t, p.OrganizedRoot(), DefaultOrganizedRel)
}

func TestNewRequiresSourceRoot(t *testing.T) {
	clearEnv(t)

	_, err := New(&config.Config{}, Options{
		SourceRoot:    "/definitely/not/a/real/path",
		OrganizedRoot: t.TempDir(),
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrNotFound, errors.GetErrorCode(err))

	src := t.TempDir()
	p, err := New(&config.Config{}, Options{SourceRoot: src, OrganizedRoot: "/anywhere"})
	require.NoError(t, err)
	assert.Equal(t, src, p.SourceRoot())
}

func TestStateFilePath(t *testing.T) {
	p := NewUnchecked("/library", "/organized")
	assert.Equal(t, filepath.Join("/organized", StateFileName), p.StateFilePath())
}

func TestCategoryDir(t *testing.T) {
	p := NewUnchecked("/library", "/organized")
	assert.Equal(t,
		filepath.Join("/organized", "Genres", "Electronic", "Dubstep"),
		p.CategoryDir(types.CategoryPath("Genres/Electronic/Dubstep")))
	assert.Equal(t, filepath.Join("/organized", "All"), p.CategoryDir(types.CategoryAll))
}
