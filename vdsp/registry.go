// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vdsp

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/samber/lo"
)

// PortableName is the name of the always-present pure Go backend.
const PortableName = "portable"

var (
	// ErrUnknownBackend is returned by Use for a name nobody registered.
	ErrUnknownBackend = errors.New("vdsp: unknown backend")

	// ErrBackendUnavailable is returned by Use for a backend whose
	// Available func reports false on this machine.
	ErrBackendUnavailable = errors.New("vdsp: backend unavailable")

	// ErrDuplicateBackend is returned by Register for a name already taken.
	ErrDuplicateBackend = errors.New("vdsp: backend already registered")

	// ErrInvalidBackend is returned by Register for an entry without a name.
	ErrInvalidBackend = errors.New("vdsp: invalid backend")
)

// link is one step of a dispatch chain.
type link[I any] struct {
	name string
	impl I
}

// chain is the resolved, priority-ordered dispatch list for one precision.
// The portable backend is always last, so every walk terminates.
type chain[T Floats] struct {
	elementwise []link[ElementwiseBackend[T]]
	reduce      []link[ReduceBackend[T]]
	sort        []link[SortBackend[T]]
	matrix      []link[MatrixBackend[T]]
	signal      []link[SignalBackend[T]]
}

type snapshot struct {
	f32 *chain[float32]
	f64 *chain[float64]
}

var (
	mu           sync.Mutex
	registry     = map[string]*Backend{}
	pinned       string
	portableOnly bool

	current atomic.Pointer[snapshot]
	logger  atomic.Pointer[slog.Logger]
)

func init() {
	logger.Store(slog.New(slog.DiscardHandler))
	loadEnv()

	mu.Lock()
	defer mu.Unlock()
	registry[PortableName] = portableBackend()
	rebuildLocked()
}

// loadEnv reads the environment configuration. VDSP_BACKEND may name a
// backend that registers later; until it does, priority order applies.
func loadEnv() {
	pinned = os.Getenv("VDSP_BACKEND")
	portableOnly = envBool("VDSP_PORTABLE")
}

// SetLogger sets the logger used for backend registration and selection
// records. A nil logger discards them.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Register adds a backend. Backends usually call MustRegister from init.
func Register(b Backend) error {
	if b.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidBackend)
	}

	mu.Lock()
	defer mu.Unlock()
	if _, ok := registry[b.Name]; ok {
		return fmt.Errorf("register %q: %w", b.Name, ErrDuplicateBackend)
	}
	registry[b.Name] = &b
	logger.Load().Debug("vdsp: backend registered",
		"name", b.Name, "priority", b.Priority, "available", b.available())
	rebuildLocked()
	return nil
}

// MustRegister is Register that panics on error.
func MustRegister(b Backend) {
	if err := Register(b); err != nil {
		panic(err)
	}
}

// Unregister removes a backend. The portable backend cannot be removed.
func Unregister(name string) {
	if name == PortableName {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	delete(registry, name)
	rebuildLocked()
}

// Use pins dispatch to the named backend (with the portable backend still
// covering anything it does not handle). An empty name restores priority
// order.
func Use(name string) error {
	mu.Lock()
	defer mu.Unlock()

	if name != "" {
		b, ok := registry[name]
		if !ok {
			return fmt.Errorf("use %q: %w", name, ErrUnknownBackend)
		}
		if !b.available() {
			return fmt.Errorf("use %q: %w", name, ErrBackendUnavailable)
		}
	}
	pinned = name
	portableOnly = false
	rebuildLocked()
	return nil
}

// Reset drops any Use pin and re-reads VDSP_BACKEND and VDSP_PORTABLE.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	loadEnv()
	rebuildLocked()
}

// BackendInfo describes a registered backend.
type BackendInfo struct {
	Name      string
	Priority  int
	Available bool
	Float32   []Family
	Float64   []Family
}

// Backends lists registered backends, highest priority first.
func Backends() []BackendInfo {
	mu.Lock()
	defer mu.Unlock()
	return lo.Map(sortedLocked(), func(b *Backend, _ int) BackendInfo {
		return BackendInfo{
			Name:      b.Name,
			Priority:  b.Priority,
			Available: b.available(),
			Float32:   b.Float32.Families(),
			Float64:   b.Float64.Families(),
		}
	})
}

// ActiveBackend returns the name of the backend tried first for family f
// at precision T.
func ActiveBackend[T Floats](f Family) string {
	c := chainFor[T]()
	switch f {
	case FamilyElementwise:
		return c.elementwise[0].name
	case FamilyReduce:
		return c.reduce[0].name
	case FamilySort:
		return c.sort[0].name
	case FamilyMatrix:
		return c.matrix[0].name
	case FamilySignal:
		return c.signal[0].name
	}
	return ""
}

func sortedLocked() []*Backend {
	all := lo.Values(registry)
	slices.SortFunc(all, func(a, b *Backend) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return all
}

// rebuildLocked recomputes the dispatch snapshot. mu must be held.
func rebuildLocked() {
	candidates := lo.Filter(sortedLocked(), func(b *Backend, _ int) bool {
		if b.Name == PortableName || portableOnly || !b.available() {
			return false
		}
		return pinned == "" || b.Name == pinned
	})
	// A pin naming a backend that has not registered yet falls back to
	// priority order rather than to portable only.
	if pinned != "" && len(candidates) == 0 && registry[pinned] == nil {
		candidates = lo.Filter(sortedLocked(), func(b *Backend, _ int) bool {
			return b.Name != PortableName && !portableOnly && b.available()
		})
	}
	candidates = append(candidates, registry[PortableName])

	s := &snapshot{
		f32: buildChain(candidates, func(b *Backend) Kernels[float32] { return b.Float32 }),
		f64: buildChain(candidates, func(b *Backend) Kernels[float64] { return b.Float64 }),
	}
	current.Store(s)

	logger.Load().Debug("vdsp: dispatch rebuilt",
		"pinned", pinned,
		"portableOnly", portableOnly,
		"order", lo.Map(candidates, func(b *Backend, _ int) string { return b.Name }))
}

func buildChain[T Floats](backends []*Backend, kernels func(*Backend) Kernels[T]) *chain[T] {
	c := &chain[T]{}
	for _, b := range backends {
		k := kernels(b)
		if k.Elementwise != nil {
			c.elementwise = append(c.elementwise, link[ElementwiseBackend[T]]{b.Name, k.Elementwise})
		}
		if k.Reduce != nil {
			c.reduce = append(c.reduce, link[ReduceBackend[T]]{b.Name, k.Reduce})
		}
		if k.Sort != nil {
			c.sort = append(c.sort, link[SortBackend[T]]{b.Name, k.Sort})
		}
		if k.Matrix != nil {
			c.matrix = append(c.matrix, link[MatrixBackend[T]]{b.Name, k.Matrix})
		}
		if k.Signal != nil {
			c.signal = append(c.signal, link[SignalBackend[T]]{b.Name, k.Signal})
		}
	}
	return c
}

// chainFor returns the current dispatch chain for T. The type switch is
// resolved per instantiation, not per element.
func chainFor[T Floats]() *chain[T] {
	s := current.Load()
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(s.f32).(*chain[T])
	case float64:
		return any(s.f64).(*chain[T])
	}
	panic("vdsp: unsupported scalar type")
}
