package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"wgslkit/internal/diag"
	"wgslkit/internal/source"
	"wgslkit/internal/syntax"
)

// ParseDirResult is the outcome for one file of a directory parse.
type ParseDirResult struct {
	Path    string
	FileSet *source.FileSet
	Tree    *syntax.Tree
	Bag     *diag.Bag
	Err     error // I/O failure; Tree and Bag are nil when set
}

// listShaderFiles returns every *.wgsl file under dir, sorted for
// deterministic output order.
func listShaderFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".wgsl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ParseDir parses every *.wgsl file under dir, up to jobs files at a
// time (GOMAXPROCS when jobs <= 0). Each file gets its own FileSet and
// Bag so workers share nothing; results come back in path order.
func ParseDir(ctx context.Context, dir string, maxDiagnostics, jobs int) ([]ParseDirResult, error) {
	files, err := listShaderFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := Parse(path, maxDiagnostics)
			if err != nil {
				// An unreadable file is that file's result, not a
				// reason to stop the batch.
				results[i] = ParseDirResult{Path: path, Err: err}
				return nil
			}
			results[i] = ParseDirResult{Path: path, FileSet: res.FileSet, Tree: res.Tree, Bag: res.Bag}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
