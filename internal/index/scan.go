package index

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/atomicstack/tmux-popup-launcher/internal/logging/events"
	"golang.org/x/sync/errgroup"
)

// Dirs splits a search-path value into directories, dropping empty and
// repeated entries while keeping the original order.
func Dirs(pathList string) []string {
	parts := filepath.SplitList(pathList)
	seen := make(map[string]struct{}, len(parts))
	dirs := make([]string, 0, len(parts))
	for _, dir := range parts {
		if dir == "" {
			continue
		}
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	return dirs
}

// FromEnv scans the directories named by $PATH.
func FromEnv(ctx context.Context) *Index {
	return Scan(ctx, Dirs(os.Getenv("PATH")))
}

// Scan lists every directory and records the regular files carrying at least
// one execute bit. Directories that cannot be read are skipped.
func Scan(ctx context.Context, dirs []string) *Index {
	start := time.Now()
	idx := New()
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(scanWorkers())
	for _, dir := range dirs {
		dir := dir
		g.Go(func() error {
			names := scanDir(gctx, dir)
			if len(names) == 0 {
				return nil
			}
			mu.Lock()
			for _, name := range names {
				idx.names[name] = struct{}{}
			}
			mu.Unlock()
			return nil
		})
	}
	// workers never fail; unreadable directories are only traced
	_ = g.Wait()

	events.Index.Scanned(len(dirs), idx.Len(), time.Since(start))
	return idx
}

func scanDir(ctx context.Context, dir string) []string {
	if ctx.Err() != nil {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		events.Index.Skip(dir, err)
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if ctx.Err() != nil {
			return names
		}
		if isExecutable(filepath.Join(dir, entry.Name())) {
			names = append(names, entry.Name())
		}
	}
	return names
}

// isExecutable follows symlinks, so a link to an executable counts while a
// dangling link does not.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}

func scanWorkers() int {
	n := runtime.GOMAXPROCS(0)
	if n < 2 {
		return 2
	}
	if n > 8 {
		return 8
	}
	return n
}
