package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"wgslkit/internal/diag"
	"wgslkit/internal/source"
)

// Digest is a SHA-256 content hash, the cache key.
type Digest = [32]byte

// Bump when DiskPayload changes shape; old entries then read as misses.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores parse outcomes keyed by content hash, so repeated
// runs over unchanged files skip the reparse. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiagRecord is one diagnostic in cacheable form.
type DiagRecord struct {
	Severity uint8
	Code     uint16
	Start    uint32
	End      uint32
	Message  string
}

// DiskPayload is the cached outcome of parsing one buffer.
type DiskPayload struct {
	Schema      uint16
	Path        string
	ContentHash Digest

	TokenCount int
	NodeCount  int
	ErrorNodes int
	Diags      []DiagRecord
}

// OpenDiskCache initializes a cache under the user cache directory.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes a cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "parses", hex.EncodeToString(key[:])+".mp")
}

// Put serializes a payload under its key, written via a temp file and
// rename so readers never see a partial entry.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, p)
}

// Get reads a payload by key. A miss, a schema mismatch, or a corrupt
// entry all return ok=false without error.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, nil
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll removes every cache entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "parses"))
}

// ParseCached parses the file unless an up-to-date cache entry exists
// for its current content. The boolean reports a cache hit. A nil cache
// always parses.
func ParseCached(cache *DiskCache, path string, maxDiagnostics int) (*DiskPayload, bool, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, false, err
	}
	file := fs.Get(fileID)

	var payload DiskPayload
	if hit, err := cache.Get(file.Hash, &payload); err != nil {
		return nil, false, err
	} else if hit {
		return &payload, true, nil
	}

	res, err := parseFile(fs, fileID, maxDiagnostics)
	if err != nil {
		return nil, false, err
	}
	payload = *buildPayload(path, file.Hash, res)
	if err := cache.Put(file.Hash, &payload); err != nil {
		return nil, false, err
	}
	return &payload, false, nil
}

func buildPayload(path string, hash Digest, res *ParseResult) *DiskPayload {
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        path,
		ContentHash: hash,
		TokenCount:  len(res.Tree.Tokens()),
		NodeCount:   len(res.Tree.KindSequence()),
		ErrorNodes:  len(res.Tree.ErrorNodes()),
	}
	for _, d := range res.Bag.Items() {
		payload.Diags = append(payload.Diags, DiagRecord{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		})
	}
	return payload
}

// Diagnostics rebuilds a Bag from the cached records so formatting code
// can treat cached and fresh results alike.
func (p *DiskPayload) Diagnostics(fileID source.FileID) *diag.Bag {
	bag := diag.NewBag(0)
	for _, r := range p.Diags {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(r.Severity),
			Code:     diag.Code(r.Code),
			Message:  r.Message,
			Primary:  source.Span{File: fileID, Start: r.Start, End: r.End},
		})
	}
	return bag
}
