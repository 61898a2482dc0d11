// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package walk lists the regular files below a directory on an afero filesystem.
package walk

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// IncludeHidden is a type that indicates whether to include hidden files and directories.
type IncludeHidden bool

var (
	// HiddenInclude includes hidden files and directories.
	HiddenInclude = IncludeHidden(true)
	// HiddenExclude skips hidden files and directories.
	HiddenExclude = IncludeHidden(false)
)

// ErrInvalidPattern is returned when the name pattern is malformed.
var ErrInvalidPattern = errors.New("invalid file pattern")

// Entry is a regular file found by Files.
type Entry struct {
	// Path is relative to the walk root and uses forward slashes.
	Path    string
	Size    int64
	ModTime time.Time
}

type options struct {
	maxDepth int
	hidden   IncludeHidden
	pattern  string
}

// Option configures Files.
type Option func(*options)

// WithMaxDepth limits how deep Files descends. Depth 1 lists only the files directly
// in the root. Zero or less means no limit.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithHidden sets whether names starting with a dot are walked. They are skipped by default.
func WithHidden(h IncludeHidden) Option {
	return func(o *options) {
		o.hidden = h
	}
}

// WithPattern keeps only files whose base name matches the filepath.Match pattern.
func WithPattern(pattern string) Option {
	return func(o *options) {
		o.pattern = pattern
	}
}

// Files walks root on fs and returns its regular files in lexical order.
func Files(ctx context.Context, fs afero.Fs, root string, opts ...Option) ([]Entry, error) {
	o := options{hidden: HiddenExclude}
	for _, opt := range opts {
		opt(&o)
	}

	if o.pattern != "" {
		if _, err := filepath.Match(o.pattern, ""); err != nil {
			return nil, errors.Join(ErrInvalidPattern, fmt.Errorf("%q: %w", o.pattern, err))
		}
	}

	root = filepath.Clean(root)

	var entries []Entry

	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return err
		}

		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}

		depth := strings.Count(rel, string(filepath.Separator)) + 1

		if !bool(o.hidden) && strings.HasPrefix(info.Name(), ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if info.IsDir() {
			if o.maxDepth > 0 && depth >= o.maxDepth {
				return filepath.SkipDir
			}

			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		if o.pattern != "" {
			if ok, _ := filepath.Match(o.pattern, info.Name()); !ok {
				return nil
			}
		}

		entries = append(entries, Entry{
			Path:    filepath.ToSlash(rel),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return entries, nil
}
