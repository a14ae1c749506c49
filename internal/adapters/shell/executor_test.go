package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jarlock/internal/adapters/shell"
	"go.trai.ch/jarlock/internal/core/domain"
	"go.trai.ch/jarlock/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newExecutor(t *testing.T) (*shell.Executor, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	var stdout, stderr bytes.Buffer
	e := shell.NewExecutor(log)
	e.SetOutput(&stdout, &stderr)
	return e, &stdout, &stderr
}

func TestExecutor_PassesEnvironment(t *testing.T) {
	t.Setenv(shell.ClasspathVar, "")
	e, stdout, _ := newExecutor(t)

	err := e.Execute(context.Background(),
		[]string{"sh", "-c", `echo "$CLASSPATH"`},
		[]string{"CLASSPATH=/tmp/classes:/repo/junit-4.10.jar"},
	)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/classes:/repo/junit-4.10.jar\n", stdout.String())
}

func TestExecutor_PrependsExistingClasspath(t *testing.T) {
	t.Setenv(shell.ClasspathVar, "/existing.jar")
	e, stdout, _ := newExecutor(t)

	err := e.Execute(context.Background(), []string{"sh", "-c", `echo "$CLASSPATH"`}, []string{"CLASSPATH=/a.jar"})
	require.NoError(t, err)
	assert.Equal(t, "/a.jar"+string(os.PathListSeparator)+"/existing.jar\n", stdout.String())
}

func TestExecutor_Failure(t *testing.T) {
	e, _, stderr := newExecutor(t)

	err := e.Execute(context.Background(), []string{"sh", "-c", "echo boom >&2; exit 3"}, nil)
	require.ErrorIs(t, err, domain.ErrCommandFailed)
	assert.Equal(t, "boom\n", stderr.String())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	meta := zErr.Metadata()
	assert.Equal(t, 3, meta["exit_code"])
	assert.Equal(t, "boom", meta["stderr"])
}

func TestExecutor_NoCommand(t *testing.T) {
	e, _, _ := newExecutor(t)

	err := e.Execute(context.Background(), nil, nil)
	require.ErrorIs(t, err, domain.ErrNoCommandSpecified)
}

func TestResolveEnvironment(t *testing.T) {
	t.Parallel()

	got := shell.ResolveEnvironmentForTest(
		[]string{"PATH=/usr/bin", "CLASSPATH=/sys.jar", "HOME=/home/u"},
		[]string{"CLASSPATH=/lock.jar", "JAVA_OPTS=-Xmx1g", "malformed"},
	)
	assert.Equal(t, []string{
		"CLASSPATH=/lock.jar" + string(os.PathListSeparator) + "/sys.jar",
		"HOME=/home/u",
		"JAVA_OPTS=-Xmx1g",
		"PATH=/usr/bin",
	}, got)
}

func TestLookPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bin := filepath.Join(dir, "java")
	//nolint:gosec // executable fixture
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notexec"), []byte(""), domain.FilePerm))

	got, err := shell.LookPathForTest("java", []string{"PATH=/nonexistent" + string(os.PathListSeparator) + dir})
	require.NoError(t, err)
	assert.Equal(t, bin, got)

	_, err = shell.LookPathForTest("notexec", []string{"PATH=" + dir})
	require.Error(t, err)

	_, err = shell.LookPathForTest("java", nil)
	require.Error(t, err)
}
