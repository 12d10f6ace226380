// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
)

const (
	watcherLoggerPrefix = "watcher"

	// editors often write a file several times when saving
	debounceInterval = 500 * time.Millisecond
)

type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	recent   *cache.Cache
	change   chan struct{}
}

// watch the directory of a file so that replacement by rename is
// also detected
func newFileWatcher(targetFile string, log *logger.L) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}
	if !util.EnsureFileExists(filePath) {
		return nil, fault.ErrConfigurationFileNotFound
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(filePath)); nil != err {
		watcher.Close()
		return nil, err
	}

	w := &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		recent:   cache.New(debounceInterval, 2*debounceInterval),
		change:   make(chan struct{}, 1),
	}
	go w.loop()

	return w, nil
}

// Changed - receives once for each burst of changes
func (w *fileWatcher) Changed() <-chan struct{} {
	return w.change
}

// Close - stop watching, the event loop exits when fsnotify closes
// its channels
func (w *fileWatcher) Close() error {
	return w.watcher.Close()
}

func (w *fileWatcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watch: %q  error: %s", w.filePath, err)
		}
	}
}

// returns true if a change notification was queued
func (w *fileWatcher) handle(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != filepath.Base(w.filePath) {
		return false
	}
	w.log.Debugf("file event: %v", event)

	if !watcherEventFileChange(event) {
		return false
	}

	// Add fails while an unexpired entry exists
	if err := w.recent.Add(w.filePath, event.Op, cache.DefaultExpiration); nil != err {
		w.log.Debugf("repeated event: %v discarded", event)
		return false
	}

	select {
	case w.change <- struct{}{}:
		w.log.Info("configuration change detected")
	default:
		w.log.Debug("change already pending, discard event")
	}
	return true
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
