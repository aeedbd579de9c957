package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvProject, "")
	t.Setenv(EnvRepository, "")
	t.Setenv(EnvConfigDir, "")
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestNew(t *testing.T) {
	tmp := t.TempDir()

	tests := []struct {
		name       string
		projectDir string
		envSetup   map[string]string
		validate   func(t *testing.T, p Paths)
	}{
		{
			name:       "explicit project dir",
			projectDir: tmp,
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, tmp, p.ProjectDir())
				assert.False(t, p.UsedFallback())
			},
		},
		{
			name:     "from NXJ_PROJECT",
			envSetup: map[string]string{EnvProject: tmp},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, tmp, p.ProjectDir())
				assert.False(t, p.UsedFallback())
			},
		},
		{
			name:       "build layout",
			projectDir: tmp,
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, filepath.Join(tmp, "target"), p.BuildDir())
				assert.Equal(t, filepath.Join(tmp, "target", "classes"), p.ClassesDir())
				assert.Equal(t, filepath.Join(tmp, "pom.xml"), p.PomPath())
			},
		},
		{
			name:       "custom config dir",
			projectDir: tmp,
			envSetup:   map[string]string{EnvConfigDir: "/custom/config"},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/custom/config", p.ConfigDir())
				assert.Equal(t, filepath.Join("/custom/config", "config.toml"), p.UserConfigPath())
			},
		},
		{
			name:       "state dir follows XDG_STATE_HOME",
			projectDir: tmp,
			envSetup:   map[string]string{"XDG_STATE_HOME": "/custom/state"},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, filepath.Join("/custom/state", "nxj"), p.StateDir())
				assert.Equal(t, filepath.Join("/custom/state", "nxj", "nxj.log"), p.LogFilePath())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}

			p, err := New(tt.projectDir)
			require.NoError(t, err)
			tt.validate(t, p)
		})
	}
}

func TestNew_DiscoversProjectFromWorkingDir(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	touch(t, filepath.Join(root, "pom.xml"))
	nested := filepath.Join(root, "src", "main", "java")
	require.NoError(t, os.MkdirAll(nested, 0755))
	chdir(t, nested)

	p, err := New("")
	require.NoError(t, err)

	// macOS temp dirs sit behind a symlink
	want, _ := filepath.EvalSymlinks(root)
	got, _ := filepath.EvalSymlinks(p.ProjectDir())
	assert.Equal(t, want, got)
	assert.False(t, p.UsedFallback())
}

func TestNew_FallsBackToWorkingDir(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	p, err := New("")
	require.NoError(t, err)

	if _, ok := FindProjectRoot(dir); !ok {
		assert.True(t, p.UsedFallback())
	}
	assert.True(t, filepath.IsAbs(p.ProjectDir()))
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "nxj.toml"))
	deep := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(deep, 0755))

	got, ok := FindProjectRoot(deep)
	assert.True(t, ok)
	assert.Equal(t, root, got)

	// a directory named like a marker does not count
	other := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(other, "pom.xml"), 0755))
	got, ok = FindProjectRoot(other)
	if ok {
		assert.NotEqual(t, other, got)
	}
}

func TestProjectConfigPath(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	p, err := New(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "nxj.toml"), p.ProjectConfigPath(), "defaults to toml")

	touch(t, filepath.Join(dir, "nxj.yaml"))
	assert.Equal(t, filepath.Join(dir, "nxj.yaml"), p.ProjectConfigPath())

	touch(t, filepath.Join(dir, "nxj.toml"))
	assert.Equal(t, filepath.Join(dir, "nxj.toml"), p.ProjectConfigPath(), "toml wins over yaml")
}

func TestDefaultRepositoryRoot(t *testing.T) {
	clearEnv(t)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".m2", "repository"), DefaultRepositoryRoot())

	t.Setenv(EnvRepository, "/opt/repo")
	assert.Equal(t, "/opt/repo", DefaultRepositoryRoot())

	t.Setenv(EnvRepository, "~/repo")
	assert.Equal(t, filepath.Join(home, "repo"), DefaultRepositoryRoot())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/x/y", filepath.Join(home, "x/y")},
		{"~other/x", "~other/x"},
		{"/abs/path", "/abs/path"},
		{"rel/path", "rel/path"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}

func TestResolve(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	p, err := New(dir)
	require.NoError(t, err)

	assert.Equal(t, "", p.Resolve(""))
	assert.Equal(t, filepath.Join(dir, "target", "classes"), p.Resolve("target/classes"))
	assert.Equal(t, "/opt/lejos/lib/classes.jar", p.Resolve("/opt/lejos/lib/../lib/classes.jar"))
}
