package watch

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerBatchesFiles(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var mu sync.Mutex
	var got [][]string
	d.SetCallback(func(files []string) {
		mu.Lock()
		got = append(got, files)
		mu.Unlock()
	})

	d.Add("a.go")
	d.Add("b.go")
	d.Add("a.go")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{"a.go", "b.go"}, got[0])
}

func TestDebouncerResetsTimerOnAdd(t *testing.T) {
	d := NewDebouncer(80 * time.Millisecond)

	var mu sync.Mutex
	fired := 0
	d.SetCallback(func([]string) {
		mu.Lock()
		fired++
		mu.Unlock()
	})

	// Keep adding inside the window; the callback must not fire early.
	for i := 0; i < 4; i++ {
		d.Add("a.go")
		time.Sleep(30 * time.Millisecond)
	}
	mu.Lock()
	assert.Equal(t, 0, fired)
	mu.Unlock()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return fired == 1
	}, time.Second, 10*time.Millisecond)
}

func TestRelevantFiltersPaths(t *testing.T) {
	w := &Watcher{suffix: "_sha1gen"}

	tests := []struct {
		path     string
		expected bool
	}{
		{"app.go", true},
		{"sub/app.go", true},
		{"app_sha1gen.go", false},
		{"sub/app_sha1gen.go", false},
		{"notes.txt", false},
		{"style.css", false},
		{".hidden.go", false},
		{"vendor/dep/dep.go", false},
		{"testdata/fixture.go", false},
		{"_ignored/x.go", false},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.expected, w.relevant(tt.path), "relevant(%q)", tt.path)
	}
}

func TestWatcherTriggersOnGoFileWrite(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var changed []string
	w, err := New([]string{dir}, "_sha1gen", nil, func(files []string) error {
		mu.Lock()
		changed = append(changed, files...)
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	path := filepath.Join(dir, "app.go")
	require.NoError(t, os.WriteFile(path, []byte("package app\n"), 0o644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(changed) > 0
	}, 3*time.Second, 20*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, changed, path)
}

func TestWatcherIgnoresGeneratedFileWrites(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	fired := false
	w, err := New([]string{dir}, "_sha1gen", nil, func([]string) error {
		mu.Lock()
		fired = true
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)
	w.Start()
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "app_sha1gen.go"), []byte("package app\n"), 0o644))

	time.Sleep(500 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.False(t, fired, "generated file writes must not retrigger generation")
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, err := New([]string{dir}, "_sha1gen", nil, func([]string) error { return nil })
	require.NoError(t, err)
	w.Start()

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
