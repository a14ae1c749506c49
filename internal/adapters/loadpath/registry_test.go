package loadpath_test

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jarlock/internal/adapters/loadpath"
)

func TestRegistry_OrderedAndUnique(t *testing.T) {
	t.Parallel()

	r := loadpath.NewRegistry()
	require.NoError(t, r.LoadPaths([]string{"/classes", "/repo/a.jar"}))
	require.NoError(t, r.LoadPaths([]string{"/repo/a.jar", "/repo/b.jar", "/classes"}))

	assert.Equal(t, []string{"/classes", "/repo/a.jar", "/repo/b.jar"}, r.Classpath())
	sep := string(os.PathListSeparator)
	assert.Equal(t, []string{"CLASSPATH=/classes" + sep + "/repo/a.jar" + sep + "/repo/b.jar"}, r.Environ())
}

func TestRegistry_MakesPathsAbsolute(t *testing.T) {
	t.Parallel()

	r := loadpath.NewRegistry()
	require.NoError(t, r.LoadPaths([]string{"tmp"}))

	want, err := filepath.Abs("tmp")
	require.NoError(t, err)
	assert.Equal(t, []string{want}, r.Classpath())
}

func TestRegistry_ClasspathIsACopy(t *testing.T) {
	t.Parallel()

	r := loadpath.NewRegistry()
	require.NoError(t, r.LoadPaths([]string{"/a.jar"}))
	cp := r.Classpath()
	cp[0] = "mutated"
	assert.Equal(t, []string{"/a.jar"}, r.Classpath())
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	r := loadpath.NewRegistry()
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.LoadPaths([]string{"/shared.jar", "/own-" + strconv.Itoa(i) + ".jar"})
		}()
	}
	wg.Wait()

	assert.Len(t, r.Classpath(), 17)
}
