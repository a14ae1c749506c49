package coursier_test

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jarlock/internal/adapters/coursier"
	"go.trai.ch/jarlock/internal/core/domain"
	"go.trai.ch/jarlock/internal/core/ports"
	"go.trai.ch/jarlock/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const junitOutput = `junit:junit:4.10:default
org.hamcrest:hamcrest-core:1.1:default
`

// fakeCoursier writes a shell script that records its arguments and prints stdout.
func fakeCoursier(t *testing.T, stdout, stderr string, exitCode int) (binary, argsFile string) {
	t.Helper()
	dir := t.TempDir()
	argsFile = filepath.Join(dir, "args")
	outFile := filepath.Join(dir, "stdout")
	errFile := filepath.Join(dir, "stderr")
	require.NoError(t, os.WriteFile(outFile, []byte(stdout), domain.FilePerm))
	require.NoError(t, os.WriteFile(errFile, []byte(stderr), domain.FilePerm))

	script := "#!/bin/sh\n" +
		"echo \"$@\" >> '" + argsFile + "'\n" +
		"cat '" + outFile + "'\n" +
		"cat '" + errFile + "' >&2\n" +
		"exit " + strconv.Itoa(exitCode) + "\n"
	binary = filepath.Join(dir, "cs")
	//nolint:gosec // test script must be executable
	require.NoError(t, os.WriteFile(binary, []byte(script), 0o755))
	return binary, argsFile
}

func invocations(t *testing.T, argsFile string) []string {
	t.Helper()
	data, err := os.ReadFile(argsFile)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func quietLogger(t *testing.T) ports.Logger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func junitRequest() ports.ResolveRequest {
	return ports.ResolveRequest{
		Scope:        "compile",
		Dependencies: []domain.Coordinate{domain.MustParseCoordinate("junit:junit:4.10")},
		Repositories: []string{domain.MavenCentral},
	}
}

func TestBuildArgs(t *testing.T) {
	t.Parallel()

	req := ports.ResolveRequest{
		Dependencies: []domain.Coordinate{
			domain.MustParseCoordinate("junit:junit:4.10"),
			domain.MustParseCoordinate("org.example:lib:test-jar:1.0:tests"),
		},
		Excludes:     []domain.Exclusion{{Group: "commons-logging", Name: "*"}, {Group: "logkit", Name: "logkit"}},
		Repositories: []string{"https://a.example.com", "https://b.example.com"},
		Offline:      true,
	}

	assert.Equal(t, []string{
		"resolve", "--no-default",
		"-r", "https://a.example.com",
		"-r", "https://b.example.com",
		"--exclude", "commons-logging:*",
		"--exclude", "logkit:logkit",
		"--mode", "offline",
		"junit:junit:4.10",
		"org.example:lib:1.0,type=test-jar,classifier=tests",
	}, coursier.BuildArgsForTest(req))
}

func TestParseOutput(t *testing.T) {
	t.Parallel()

	got, err := coursier.ParseOutputForTest([]byte("\n" + junitOutput + "Resolution done in 2s\n"))
	require.NoError(t, err)
	assert.Equal(t, []domain.Coordinate{
		{Group: "junit", Name: "junit", Type: "jar", Version: "4.10"},
		{Group: "org.hamcrest", Name: "hamcrest-core", Type: "jar", Version: "1.1"},
	}, got)
}

func TestClassifyFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stderr string
		want   error
	}{
		{stderr: "Error: junit:junit:9.9 not found: https://repo1.maven.org/...", want: domain.ErrUnresolvableDependency},
		{stderr: "java.net.UnknownHostException: repo.invalid", want: domain.ErrNetwork},
		{stderr: "java.net.ConnectException: Connection refused", want: domain.ErrNetwork},
		{stderr: "Exception in thread main", want: domain.ErrResolverFailed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, coursier.ClassifyFailureForTest(tt.stderr), tt.stderr)
	}
}

func TestResolve_RunsCoursierAndCaches(t *testing.T) {
	binary, argsFile := fakeCoursier(t, junitOutput, "", 0)
	r := coursier.NewResolverForTest(quietLogger(t), t.TempDir(), binary)

	first, err := r.Resolve(context.Background(), junitRequest())
	require.NoError(t, err)
	assert.Equal(t, []domain.Coordinate{
		domain.MustParseCoordinate("junit:junit:jar:4.10"),
		domain.MustParseCoordinate("org.hamcrest:hamcrest-core:jar:1.1"),
	}, first)

	second, err := r.Resolve(context.Background(), junitRequest())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	calls := invocations(t, argsFile)
	require.Len(t, calls, 1, "second resolution must come from the cache")
	assert.Equal(t, "resolve --no-default -r https://repo1.maven.org/maven2 junit:junit:4.10", calls[0])
}

func TestResolve_NoCacheBypassesCache(t *testing.T) {
	binary, argsFile := fakeCoursier(t, junitOutput, "", 0)
	cacheDir := t.TempDir()
	r := coursier.NewResolverForTest(quietLogger(t), cacheDir, binary)

	req := junitRequest()
	req.NoCache = true
	for range 2 {
		_, err := r.Resolve(context.Background(), req)
		require.NoError(t, err)
	}

	assert.Len(t, invocations(t, argsFile), 2)
	entries, err := os.ReadDir(cacheDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestResolve_CarriesDeclaredClassifier(t *testing.T) {
	binary, _ := fakeCoursier(t, "org.example:lib:1.0:default\n", "", 0)
	r := coursier.NewResolverForTest(quietLogger(t), t.TempDir(), binary)

	got, err := r.Resolve(context.Background(), ports.ResolveRequest{
		Scope:        "test",
		Dependencies: []domain.Coordinate{domain.MustParseCoordinate("org.example:lib:test-jar:1.0:tests")},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "org.example:lib:test-jar:1.0:tests", got[0].Notation())
}

func TestResolve_Failures(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
		want   error
	}{
		{name: "not found", stderr: "Error: junit:junit:9.9 not found\n", want: domain.ErrUnresolvableDependency},
		{name: "network", stderr: "java.net.UnknownHostException: repo.invalid\n", want: domain.ErrNetwork},
		{name: "other", stderr: "boom\n", want: domain.ErrResolverFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			binary, _ := fakeCoursier(t, "", tt.stderr, 1)
			cacheDir := t.TempDir()
			r := coursier.NewResolverForTest(quietLogger(t), cacheDir, binary)

			_, err := r.Resolve(context.Background(), junitRequest())
			require.ErrorIs(t, err, tt.want)

			entries, readErr := os.ReadDir(cacheDir)
			require.NoError(t, readErr)
			assert.Empty(t, entries, "failures must not be cached")
		})
	}
}

func TestResolve_MissingBinary(t *testing.T) {
	r := coursier.NewResolverForTest(quietLogger(t), t.TempDir(), filepath.Join(t.TempDir(), "cs"))

	_, err := r.Resolve(context.Background(), junitRequest())
	require.ErrorIs(t, err, domain.ErrResolverNotInstalled)
}

func TestResolve_EmptyRequestSkipsCoursier(t *testing.T) {
	r := coursier.NewResolverForTest(quietLogger(t), t.TempDir(), filepath.Join(t.TempDir(), "missing"))

	got, err := r.Resolve(context.Background(), ports.ResolveRequest{Scope: "compile"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolve_BinaryFromEnvironment(t *testing.T) {
	binary, argsFile := fakeCoursier(t, junitOutput, "", 0)
	t.Setenv(coursier.BinaryEnv, binary)
	r := coursier.NewResolverForTest(quietLogger(t), t.TempDir(), "")

	_, err := r.Resolve(context.Background(), junitRequest())
	require.NoError(t, err)
	assert.Len(t, invocations(t, argsFile), 1)
}
