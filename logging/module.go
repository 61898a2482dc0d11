// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package logging

import (
	"context"
	"log/slog"
	"sort"
	"strings"
)

// ModuleKey is the attribute key that names the module a record belongs to.
const ModuleKey = "module"

type moduleRule struct {
	prefix string
	level  slog.Level
}

// ModuleHandler filters records by severity, using a per-module threshold when the
// record's module matches one of the configured overrides and the default threshold
// otherwise. Records that pass are forwarded to the next handler.
type ModuleHandler struct {
	next   slog.Handler
	level  slog.Leveler
	rules  []moduleRule
	module string
	known  bool
	groups int
}

var _ slog.Handler = (*ModuleHandler)(nil)

// NewModuleHandler returns a handler that forwards to next. A nil level means INFO.
func NewModuleHandler(next slog.Handler, level slog.Leveler, modules map[string]slog.Level) *ModuleHandler {
	if level == nil {
		level = slog.LevelInfo
	}

	rules := make([]moduleRule, 0, len(modules))
	for prefix, l := range modules {
		rules = append(rules, moduleRule{prefix: strings.TrimSuffix(prefix, "/"), level: l})
	}

	// Longest prefix first, so the most specific override wins.
	sort.Slice(rules, func(i, j int) bool {
		if len(rules[i].prefix) != len(rules[j].prefix) {
			return len(rules[i].prefix) > len(rules[j].prefix)
		}

		return rules[i].prefix < rules[j].prefix
	})

	return &ModuleHandler{next: next, level: level, rules: rules}
}

// Threshold returns the minimum level logged for the given module.
func (h *ModuleHandler) Threshold(module string) slog.Level {
	for _, r := range h.rules {
		if matchModule(r.prefix, module) {
			return r.level
		}
	}

	return h.level.Level()
}

func matchModule(prefix, module string) bool {
	if prefix == "" || !strings.HasPrefix(module, prefix) {
		return false
	}

	return len(module) == len(prefix) || module[len(prefix)] == '/'
}

// floor is the lowest threshold of any module, used when the module of a record is
// not known until Handle.
func (h *ModuleHandler) floor() slog.Level {
	l := h.level.Level()
	for _, r := range h.rules {
		l = min(l, r.level)
	}

	return l
}

// Enabled implements slog.Handler.
func (h *ModuleHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.known {
		if level < h.Threshold(h.module) {
			return false
		}
	} else if level < h.floor() {
		return false
	}

	return h.next.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *ModuleHandler) Handle(ctx context.Context, r slog.Record) error {
	module := h.module

	if !h.known && h.groups == 0 {
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == ModuleKey {
				module = a.Value.String()

				return false
			}

			return true
		})
	}

	if r.Level < h.Threshold(module) {
		return nil
	}

	return h.next.Handle(ctx, r) //nolint:wrapcheck
}

// WithAttrs implements slog.Handler. A top-level ModuleKey attribute fixes the module
// of every record logged through the returned handler.
func (h *ModuleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.next = h.next.WithAttrs(attrs)

	if h.groups == 0 {
		for _, a := range attrs {
			if a.Key == ModuleKey {
				c.module = a.Value.String()
				c.known = true
			}
		}
	}

	return &c
}

// WithGroup implements slog.Handler.
func (h *ModuleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.next = h.next.WithGroup(name)
	c.groups++

	return &c
}
