package config

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-reads the config file whenever it changes and applies the
// runtime-tunable subset to a Runtime. Hardware, IPC and logging
// settings still need a restart.
type Watcher struct {
	watcher *fsnotify.Watcher
	cfile   string
	realHW  bool
	runtime *Runtime
}

func NewWatcher(cfile string, realhw bool, runtime *Runtime) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: editors and atomic writers
	// replace the file and would silently drop a file watch.
	if err := w.Add(filepath.Dir(cfile)); err != nil {
		w.Close()
		return nil, err
	}
	return &Watcher{
		watcher: w,
		cfile:   cfile,
		realHW:  realhw,
		runtime: runtime,
	}, nil
}

// Run processes file events until Close is called. An invalid config
// file is logged and skipped; the previous settings stay active.
func (s *Watcher) Run() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(s.cfile) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			conf, err := ReadConfig(s.cfile, s.realHW)
			if err != nil {
				slog.Error("Ignoring config change", "error", err)
				continue
			}
			s.runtime.Apply(conf)
			slog.Info("Applied runtime config change", "file", s.cfile)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Config watcher error", "error", err)
		}
	}
}

func (s *Watcher) Close() error {
	return s.watcher.Close()
}
