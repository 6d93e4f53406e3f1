// Package instancedb indexes a folder or ZIP file of CG:SHOP instance
// documents by name, so a verifier run can resolve a solution's claimed
// instance name to the polygon domain it covers.
package instancedb

import (
	"archive/zip"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cgshop2023/verifier/ioformat"
)

// entry is one candidate instance file: its full path (filesystem path
// or ZIP entry name) and its base file name.
type entry struct {
	path string
	base string
}

// source abstracts over a folder and a ZIP archive of instance files.
type source interface {
	list() ([]entry, error)
	open(e entry) (io.ReadCloser, error)
	close() error
}

// Database resolves instance names to parsed [ioformat.Instance] values,
// backed by either a directory tree or a ZIP archive of files named
// NAME.instance.json.
type Database struct {
	root         string
	src          source
	cacheEnabled bool

	mu    sync.Mutex
	cache map[string]ioformat.Instance
}

// Option configures a [Database] at [Open] time.
type Option func(*Database)

// WithCache enables caching of every parsed instance for the lifetime of
// the Database, trading memory for avoiding repeat parses of the same
// instance.
func WithCache() Option {
	return func(d *Database) { d.cacheEnabled = true }
}

// Open builds a Database over path, which must be either a directory
// (searched recursively for NAME.instance.json files) or a ZIP archive
// of such files.
func Open(path string, opts ...Option) (*Database, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var src source
	if info.IsDir() {
		src = &folderSource{root: path}
	} else if r, zerr := zip.OpenReader(path); zerr == nil {
		src = &zipSource{reader: r}
	} else {
		return nil, &InvalidPathError{Path: path}
	}

	db := &Database{
		root:  path,
		src:   src,
		cache: make(map[string]ioformat.Instance),
	}
	for _, opt := range opts {
		opt(db)
	}
	return db, nil
}

// Close releases any resources held by the Database's backing ZIP
// archive. It is a no-op for a folder-backed Database.
func (d *Database) Close() error {
	return d.src.close()
}

// Get returns the instance named name, after normalizing name: any
// directory prefix is dropped, and a trailing ".instance" suffix is
// stripped.
func (d *Database) Get(name string) (ioformat.Instance, error) {
	name = normalizeLookupName(name)

	if d.cacheEnabled {
		d.mu.Lock()
		inst, ok := d.cache[name]
		d.mu.Unlock()
		if ok {
			return inst, nil
		}
	}

	entries, err := d.src.list()
	if err != nil {
		return ioformat.Instance{}, err
	}
	for _, e := range entries {
		if !fitsConvention(e.base) {
			continue
		}
		if baseInstanceName(e.base) != name {
			continue
		}
		inst, err := d.readEntry(e)
		if err != nil {
			return ioformat.Instance{}, err
		}
		d.store(name, inst)
		return inst, nil
	}
	return ioformat.Instance{}, &NotFoundError{Name: name, Path: d.root}
}

// All iterates every instance file in the database, in the order the
// backing folder or ZIP archive lists them.
func (d *Database) All() iter.Seq2[ioformat.Instance, error] {
	return func(yield func(ioformat.Instance, error) bool) {
		entries, err := d.src.list()
		if err != nil {
			yield(ioformat.Instance{}, err)
			return
		}
		for _, e := range entries {
			if !fitsConvention(e.base) {
				continue
			}
			name := baseInstanceName(e.base)

			if d.cacheEnabled {
				d.mu.Lock()
				inst, ok := d.cache[name]
				d.mu.Unlock()
				if ok {
					if !yield(inst, nil) {
						return
					}
					continue
				}
			}

			inst, err := d.readEntry(e)
			if err == nil {
				d.store(name, inst)
			}
			if !yield(inst, err) {
				return
			}
		}
	}
}

func (d *Database) readEntry(e entry) (ioformat.Instance, error) {
	rc, err := d.src.open(e)
	if err != nil {
		return ioformat.Instance{}, err
	}
	defer rc.Close()
	return ioformat.ReadInstance(rc)
}

func (d *Database) store(name string, inst ioformat.Instance) {
	if !d.cacheEnabled {
		return
	}
	d.mu.Lock()
	d.cache[name] = inst
	d.mu.Unlock()
}

// normalizeLookupName mirrors the database's name resolution rule: a
// lookup name may carry a directory prefix and/or a trailing
// ".instance" suffix, both of which are stripped before matching against
// an entry's base file name.
func normalizeLookupName(name string) string {
	if idx := strings.LastIndexByte(name, '/'); idx != -1 {
		name = name[idx+1:]
	}
	name = strings.TrimSuffix(name, ".instance")
	return name
}

// fitsConvention reports whether base is named NAME.instance.json.
func fitsConvention(base string) bool {
	parts := strings.Split(base, ".")
	return len(parts) == 3 && parts[1] == "instance" && parts[2] == "json"
}

// baseInstanceName extracts NAME from a base file name already known to
// satisfy [fitsConvention].
func baseInstanceName(base string) string {
	return strings.SplitN(base, ".", 2)[0]
}

// isHiddenSegment reports whether a single path segment is a dotfile (but
// not "." or ".." alone) or a macOS resource-fork directory.
func isHiddenSegment(seg string) bool {
	if strings.Trim(seg, ".") != "" && strings.HasPrefix(seg, ".") {
		return true
	}
	return strings.HasPrefix(seg, "__")
}

func isHiddenPath(path string) bool {
	for _, seg := range strings.Split(path, "/") {
		if isHiddenSegment(seg) {
			return true
		}
	}
	return false
}

// folderSource walks a directory tree for instance files.
type folderSource struct {
	root string
}

func (s *folderSource) list() ([]entry, error) {
	var out []entry
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != s.root && isHiddenSegment(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		out = append(out, entry{path: p, base: d.Name()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *folderSource) open(e entry) (io.ReadCloser, error) {
	return os.Open(e.path)
}

func (s *folderSource) close() error { return nil }

// zipSource reads instance files out of a ZIP archive's central
// directory without extracting it to disk.
type zipSource struct {
	reader *zip.ReadCloser
}

func (s *zipSource) list() ([]entry, error) {
	out := make([]entry, 0, len(s.reader.File))
	for _, f := range s.reader.File {
		if isHiddenPath(f.Name) {
			continue
		}
		out = append(out, entry{path: f.Name, base: filepath.Base(f.Name)})
	}
	return out, nil
}

func (s *zipSource) open(e entry) (io.ReadCloser, error) {
	f, err := s.reader.Open(e.path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *zipSource) close() error { return s.reader.Close() }
