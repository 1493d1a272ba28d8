package assets

import (
	"io/fs"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/otml-format/go-otml/debug"
	"github.com/otml-format/go-otml/ir"
)

// Session memoizes base discovery for one document directory.
// The cached result is dropped when anything under docDir changes,
// observed via fsnotify watches added for every directory the
// discovery walk touched. Correctness never depends on the cache: if
// the watcher cannot be set up, Base degrades to calling DiscoverBase
// every time.
type Session struct {
	fsys   FS
	docDir string

	mu      sync.Mutex
	valid   bool
	base    string
	ok      bool
	watcher *fsnotify.Watcher
	closed  bool
}

func NewSession(fsys FS, docDir string) *Session {
	return &Session{fsys: fsys, docDir: docDir}
}

// Base returns the discovered images base for the session's document
// directory, running discovery only when no valid cached result
// exists.
func (s *Session) Base(root *ir.Node) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.valid {
		return s.base, s.ok
	}
	s.base, s.ok = DiscoverBase(s.fsys, s.docDir, root)
	s.valid = s.watch() == nil
	return s.base, s.ok
}

// Invalidate drops the cached result; the next Base call rediscovers.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.valid = false
}

func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.valid = false
	if s.watcher == nil {
		return nil
	}
	w := s.watcher
	s.watcher = nil
	return w.Close()
}

// watch (re)arms watches on docDir and every directory below it.
// Caller holds s.mu.
func (s *Session) watch() error {
	if s.closed {
		return fs.ErrClosed
	}
	if s.watcher == nil {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		s.watcher = w
		go s.loop(w)
	}
	var addErr error
	walkDirs(s.fsys, s.docDir, func(dir string, _ []fs.DirEntry) bool {
		if err := s.watcher.Add(dir); err != nil {
			addErr = err
			return false
		}
		return true
	})
	return addErr
}

func (s *Session) loop(w *fsnotify.Watcher) {
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if debug.Watch() {
				debug.Logf("session: %s, invalidating discovery cache\n", ev)
			}
			s.Invalidate()
		case _, ok := <-w.Errors:
			if !ok {
				return
			}
			s.Invalidate()
		}
	}
}
