package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/m1cr0man/bgrot/pkg/config"
	"github.com/m1cr0man/bgrot/pkg/images"
	"github.com/m1cr0man/bgrot/pkg/logger"
	"github.com/m1cr0man/bgrot/pkg/rotate"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApplier struct {
	applied []string
	err     error
}

func (f *fakeApplier) SetBackground(filePath string) error {
	f.applied = append(f.applied, filePath)
	return f.err
}

type testEnv struct {
	*env
	applier *fakeApplier
	log     *logger.MockLogger
	out     *bytes.Buffer
	slept   []time.Duration
}

type stopRun struct{}

// newTestEnv stops rotation by panicking on the maxSleeps'th wait
func newTestEnv(t *testing.T, maxSleeps int) *testEnv {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/walls/sub", 0755))
	for _, name := range []string{"a.png", "b.jpg", "c.bmp", "notes.txt"} {
		require.NoError(t, afero.WriteFile(fs, filepath.Join("/walls", name), []byte("img"), 0644))
	}

	te := &testEnv{
		applier: &fakeApplier{},
		log:     &logger.MockLogger{},
		out:     &bytes.Buffer{},
	}
	te.env = &env{
		applier:    te.applier,
		log:        te.log,
		fs:         fs,
		configPath: filepath.Join(t.TempDir(), config.FileName),
		current:    func() (string, error) { return "/walls/b.jpg", nil },
		open:       func(string) error { return nil },
		stdout:     te.out,
		stderr:     &bytes.Buffer{},
	}
	te.env.sleep = func(d time.Duration) {
		te.slept = append(te.slept, d)
		if len(te.slept) == maxSleeps {
			panic(stopRun{})
		}
	}
	return te
}

func (te *testEnv) run(t *testing.T, args ...string) error {
	t.Helper()
	return newApp(te.env).Run(append([]string{"bgrot"}, args...))
}

func (te *testEnv) runUntilStopped(t *testing.T, args ...string) {
	t.Helper()
	defer func() {
		_, ok := recover().(stopRun)
		require.True(t, ok, "rotation returned instead of looping")
	}()
	_ = te.run(t, args...)
}

func TestOneShot(t *testing.T) {
	te := newTestEnv(t, 1)
	require.NoError(t, te.run(t, "/walls/a.png"))
	assert.Equal(t, []string{"/walls/a.png"}, te.applier.applied)
	assert.Equal(t, []string{"Wallpaper set to: /walls/a.png"}, te.log.InfoCalls)
	assert.Empty(t, te.slept)
}

func TestOneShotFailure(t *testing.T) {
	te := newTestEnv(t, 1)
	te.applier.err = errors.New("rejected")
	err := te.run(t, "/walls/a.png")
	assert.EqualError(t, err, "rejected")
	assert.Len(t, te.applier.applied, 1)
	assert.Empty(t, te.log.InfoCalls)
}

func TestOneShotRejectsDirectory(t *testing.T) {
	te := newTestEnv(t, 1)
	assert.Error(t, te.run(t, "/walls"))
	assert.Empty(t, te.applier.applied)
}

func TestRotateOnlyFlags(t *testing.T) {
	te := newTestEnv(t, 1)
	assert.Equal(t, errRequiresRotate, te.run(t, "--interval", "5", "/walls/a.png"))
	assert.Equal(t, errRequiresRotate, te.run(t, "-m", "random", "/walls/a.png"))
	assert.Empty(t, te.applier.applied)
}

func TestArgs(t *testing.T) {
	te := newTestEnv(t, 1)
	assert.Equal(t, errMissingPath, te.run(t))
	assert.Equal(t, errTooManyArgs, te.run(t, "/walls/a.png", "/walls/b.jpg"))
}

func TestRotateSequential(t *testing.T) {
	te := newTestEnv(t, 4)
	te.runUntilStopped(t, "-r", "-i", "1", "/walls")

	assert.Equal(t, []string{"/walls/a.png", "/walls/b.jpg", "/walls/c.bmp", "/walls/a.png"}, te.applier.applied)
	assert.Equal(t, []time.Duration{time.Minute, time.Minute, time.Minute, time.Minute}, te.slept)
}

func TestRotateUsesConfigDefaults(t *testing.T) {
	te := newTestEnv(t, 3)
	require.NoError(t, config.Save(te.configPath, config.Config{Interval: 5, Mode: rotate.Random}))
	te.runUntilStopped(t, "--rotate", "/walls")

	assert.Equal(t, []time.Duration{5 * time.Minute, 5 * time.Minute, 5 * time.Minute}, te.slept)
	for _, applied := range te.applier.applied {
		assert.Contains(t, []string{"/walls/a.png", "/walls/b.jpg", "/walls/c.bmp"}, applied)
	}
}

func TestRotateFlagsOverrideConfig(t *testing.T) {
	te := newTestEnv(t, 2)
	require.NoError(t, config.Save(te.configPath, config.Config{Interval: 5, Mode: rotate.Random}))
	te.runUntilStopped(t, "-r", "-i", "2", "-m", "sequential", "/walls")

	assert.Equal(t, []string{"/walls/a.png", "/walls/b.jpg"}, te.applier.applied)
	assert.Equal(t, []time.Duration{2 * time.Minute, 2 * time.Minute}, te.slept)
}

func TestRotateContinuesAfterFailure(t *testing.T) {
	te := newTestEnv(t, 3)
	te.applier.err = errors.New("gone")
	te.runUntilStopped(t, "-r", "/walls")

	assert.Len(t, te.applier.applied, 3)
	assert.Len(t, te.log.ErrorCalls, 3)
	assert.Equal(t, []time.Duration{15 * time.Minute, 15 * time.Minute, 15 * time.Minute}, te.slept)
}

func TestRotateInitErrors(t *testing.T) {
	te := newTestEnv(t, 1)
	assert.ErrorIs(t, te.run(t, "-r", "/nowhere"), images.ErrPathDoesNotExist)
	assert.ErrorIs(t, te.run(t, "-r", "/walls/a.png"), images.ErrNotADirectory)
	assert.ErrorIs(t, te.run(t, "-r", "/walls/sub"), images.ErrNoImagesFound)
	assert.ErrorIs(t, te.run(t, "-r", "-i", "0", "/walls"), rotate.ErrInvalidInterval)
	assert.Error(t, te.run(t, "-r", "-m", "backwards", "/walls"))
	assert.Empty(t, te.applier.applied)
	assert.Empty(t, te.slept)
}

func TestList(t *testing.T) {
	te := newTestEnv(t, 1)
	require.NoError(t, te.run(t, "list", "/walls"))
	assert.Equal(t, "/walls/a.png\n/walls/b.jpg\n/walls/c.bmp\n", te.out.String())
}

func TestListJSON(t *testing.T) {
	te := newTestEnv(t, 1)
	require.NoError(t, te.run(t, "list", "--json", "/walls"))
	assert.JSONEq(t, `["/walls/a.png","/walls/b.jpg","/walls/c.bmp"]`, te.out.String())
}

func TestCurrent(t *testing.T) {
	te := newTestEnv(t, 1)
	var opened string
	te.open = func(path string) error {
		opened = path
		return nil
	}

	require.NoError(t, te.run(t, "current"))
	assert.Equal(t, "/walls/b.jpg\n", te.out.String())
	assert.Empty(t, opened)

	require.NoError(t, te.run(t, "current", "--open"))
	assert.Equal(t, "/walls/b.jpg", opened)
}

func TestConfigInit(t *testing.T) {
	te := newTestEnv(t, 1)
	require.NoError(t, te.run(t, "config", "--init"))
	assert.Contains(t, te.out.String(), "Created "+te.configPath)
	assert.Contains(t, te.out.String(), "Interval: 15 minutes")
	assert.Contains(t, te.out.String(), "Mode: sequential")

	conf, err := config.Load(te.configPath)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), conf)
}
