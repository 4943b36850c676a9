package logging

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Entry is a flattened log record delivered to hooks.
// Attribute keys are qualified by their enclosing groups ("group.key").
type Entry struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   []slog.Attr
}

// Attr returns the value of the attribute with the given qualified key.
func (e Entry) Attr(key string) (slog.Value, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return slog.Value{}, false
}

// Hook receives every record routed through a hook handler.
type Hook func(Entry)

type hookEntry struct {
	id int
	fn Hook
}

// HookSet is an ordered registry of hooks. The zero value is ready to use.
type HookSet struct {
	mu     sync.RWMutex
	nextID int
	hooks  []hookEntry
}

// Add registers h and returns a function that unregisters it.
// The returned function may be called any number of times.
func (s *HookSet) Add(h Hook) (remove func()) {
	if h == nil {
		return func() {}
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.hooks = append(s.hooks, hookEntry{id: id, fn: h})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *HookSet) remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, h := range s.hooks {
		if h.id == id {
			s.hooks = append(s.hooks[:i:i], s.hooks[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered hooks.
func (s *HookSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.hooks)
}

// Emit calls every hook in registration order.
func (s *HookSet) Emit(e Entry) {
	s.mu.RLock()
	hooks := s.hooks
	s.mu.RUnlock()

	for _, h := range hooks {
		h.fn(e)
	}
}

// HookHandler forwards records to an inner handler and fans them out to a HookSet.
// Hooks see every record, even those below the inner handler's level.
type HookHandler struct {
	inner  slog.Handler
	hooks  *HookSet
	prefix string
	attrs  []slog.Attr
}

// NewHookHandler wraps inner. A nil inner discards.
func NewHookHandler(inner slog.Handler, hooks *HookSet) *HookHandler {
	if inner == nil {
		inner = slog.DiscardHandler
	}
	return &HookHandler{inner: inner, hooks: hooks}
}

// Enabled implements slog.Handler.
func (h *HookHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.hooks.Len() > 0 || h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *HookHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error
	if h.inner.Enabled(ctx, r.Level) {
		err = h.inner.Handle(ctx, r)
	}

	if h.hooks.Len() == 0 {
		return err
	}

	e := Entry{
		Time:    r.Time,
		Level:   r.Level,
		Message: r.Message,
		Attrs:   make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs()),
	}
	e.Attrs = append(e.Attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		e.Attrs = flatten(e.Attrs, h.prefix, a)
		return true
	})
	h.hooks.Emit(e)

	return err
}

// WithAttrs implements slog.Handler.
func (h *HookHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := h.clone()
	next.inner = h.inner.WithAttrs(attrs)
	for _, a := range attrs {
		next.attrs = flatten(next.attrs, h.prefix, a)
	}
	return next
}

// WithGroup implements slog.Handler.
func (h *HookHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.inner = h.inner.WithGroup(name)
	next.prefix = h.prefix + name + "."
	return next
}

func (h *HookHandler) clone() *HookHandler {
	return &HookHandler{
		inner:  h.inner,
		hooks:  h.hooks,
		prefix: h.prefix,
		attrs:  append([]slog.Attr(nil), h.attrs...),
	}
}

// flatten appends a to dst, expanding groups into qualified keys.
func flatten(dst []slog.Attr, prefix string, a slog.Attr) []slog.Attr {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}

	if a.Value.Kind() != slog.KindGroup {
		return append(dst, slog.Attr{Key: prefix + a.Key, Value: a.Value})
	}

	// Inline groups (empty key) splice their members into the current prefix.
	groupPrefix := prefix
	if a.Key != "" {
		groupPrefix = prefix + a.Key + "."
	}
	for _, ga := range a.Value.Group() {
		dst = flatten(dst, groupPrefix, ga)
	}
	return dst
}
