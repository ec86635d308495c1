package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xcpack/xcpack/cmd/xcpack/commands"
	"github.com/xcpack/xcpack/internal/app"
)

// fakeApp records the options each command forwards.
type fakeApp struct {
	runRoot   string
	runOpts   app.RunOptions
	runErr    error
	cleanRoot string
	cleanOpts app.CleanOptions
}

func (f *fakeApp) Run(_ context.Context, root string, opts app.RunOptions) error {
	f.runRoot = root
	f.runOpts = opts
	return f.runErr
}

func (f *fakeApp) Clean(_ context.Context, root string, opts app.CleanOptions) error {
	f.cleanRoot = root
	f.cleanOpts = opts
	return nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCreate_Defaults(t *testing.T) {
	a := &fakeApp{}
	_, err := execute(t, a, "create")
	require.NoError(t, err)

	assert.Equal(t, ".", a.runRoot)
	assert.Equal(t, app.RunOptions{}, a.runOpts)
}

func TestCreate_AllFlags(t *testing.T) {
	a := &fakeApp{}
	_, err := execute(t, a, "create", "/pkg",
		"-p", "ios", "-p", "macos",
		"-c", "debug",
		"-o", "build/out",
		"--staging", ".deps",
		"--parallel", "3",
		"--zip",
		"--url-base", "https://dl.example.com",
		"--tag", "2.0.0",
		"-t", "Core",
	)
	require.NoError(t, err)

	assert.Equal(t, "/pkg", a.runRoot)
	assert.Equal(t, app.RunOptions{
		Platforms:     []string{"ios", "macos"},
		Configuration: "debug",
		Output:        "build/out",
		Staging:       ".deps",
		Parallelism:   3,
		Zip:           true,
		URLBase:       "https://dl.example.com",
		Tag:           "2.0.0",
		Targets:       []string{"Core"},
	}, a.runOpts)
}

func TestCreate_PropagatesError(t *testing.T) {
	wantErr := errors.New("build failed")
	a := &fakeApp{runErr: wantErr}
	_, err := execute(t, a, "create")
	assert.ErrorIs(t, err, wantErr)
}

func TestCreate_TooManyArgs(t *testing.T) {
	a := &fakeApp{}
	_, err := execute(t, a, "create", "one", "two")
	require.Error(t, err)
}

func TestClean_DefaultCleansOutput(t *testing.T) {
	a := &fakeApp{}
	_, err := execute(t, a, "clean", "/pkg")
	require.NoError(t, err)

	assert.Equal(t, "/pkg", a.cleanRoot)
	assert.Equal(t, app.CleanOptions{Output: true}, a.cleanOpts)
}

func TestClean_Staging(t *testing.T) {
	a := &fakeApp{}
	_, err := execute(t, a, "clean", "-s")
	require.NoError(t, err)
	assert.Equal(t, app.CleanOptions{Staging: true}, a.cleanOpts)
}

func TestClean_All(t *testing.T) {
	a := &fakeApp{}
	_, err := execute(t, a, "clean", "-a")
	require.NoError(t, err)
	assert.Equal(t, app.CleanOptions{Output: true, Staging: true}, a.cleanOpts)
}

func TestVersion(t *testing.T) {
	a := &fakeApp{}
	out, err := execute(t, a, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "xcpack version")
}

func TestUnknownCommand(t *testing.T) {
	a := &fakeApp{}
	_, err := execute(t, a, "explode")
	require.Error(t, err)
}
