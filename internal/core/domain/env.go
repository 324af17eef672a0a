package domain

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Construction variable names used by the toolchain and platform layers. The
// names follow the conventions of the external build orchestrator so the
// emitted plan can be consumed without translation.
const (
	AR          = "AR"
	ARCOM       = "ARCOM"
	ARFLAGS     = "ARFLAGS"
	AS          = "AS"
	ASFLAGS     = "ASFLAGS"
	CC          = "CC"
	CCFLAGS     = "CCFLAGS"
	CPPDEFINES  = "CPPDEFINES"
	CPPPATH     = "CPPPATH"
	CXX         = "CXX"
	CXXFLAGS    = "CXXFLAGS"
	FRAMEWORKS  = "FRAMEWORKS"
	GCH         = "GCH"
	LIBPATH     = "LIBPATH"
	LIBS        = "LIBS"
	LINK        = "LINK"
	LINKCOM     = "LINKCOM"
	LINKFLAGS   = "LINKFLAGS"
	PCH         = "PCH"
	PCHSTOP     = "PCHSTOP"
	RANLIB      = "RANLIB"
	RANLIBCOM   = "RANLIBCOM"
	SHCCFLAGS   = "SHCCFLAGS"
	SHLINKCOM   = "SHLINKCOM"
	SHLINKFLAGS = "SHLINKFLAGS"
)

// Env is the mutable build environment bag passed between configuration
// layers. Scalar variables hold single values such as compiler executables and
// command templates; list variables hold ordered flag, define and path lists.
//
// Lists accumulate across layers: a layer appends or removes specific entries,
// and removal of an entry that was never added is an error. Clone is the sole
// isolation mechanism for callers that need an independently mutated variant.
type Env struct {
	scalars map[string]string
	lists   map[string][]string

	// proc holds process environment variables (PATH, TERM) passed through to
	// toolchain invocations.
	proc map[string]string
}

// NewEnv creates an empty build environment.
func NewEnv() *Env {
	return &Env{
		scalars: make(map[string]string),
		lists:   make(map[string][]string),
		proc:    make(map[string]string),
	}
}

// Set assigns a scalar variable.
func (e *Env) Set(key, value string) {
	e.scalars[key] = value
}

// Get returns the value of a scalar variable, or an empty string when unset.
func (e *Env) Get(key string) string {
	return e.scalars[key]
}

// Append adds values to the end of a list variable, creating it when needed.
func (e *Env) Append(key string, values ...string) {
	e.lists[key] = append(e.lists[key], values...)
}

// Prepend inserts values at the front of a list variable.
func (e *Env) Prepend(key string, values ...string) {
	e.lists[key] = append(slices.Clone(values), e.lists[key]...)
}

// Replace overwrites a list variable wholesale. Layers use this only when the
// inherited value is intentionally discarded, such as pointing CPPPATH at an
// NDK sysroot.
func (e *Env) Replace(key string, values ...string) {
	e.lists[key] = slices.Clone(values)
}

// Remove deletes the first occurrence of value from a list variable. Removing
// an entry that is not present indicates a mismatch between layers and is an
// error.
func (e *Env) Remove(key, value string) error {
	list := e.lists[key]
	i := slices.Index(list, value)
	if i < 0 {
		return zerr.With(zerr.With(ErrEnvEntryNotPresent, "variable", key), "entry", value)
	}
	e.lists[key] = slices.Delete(list, i, i+1)
	return nil
}

// List returns a copy of a list variable in insertion order.
func (e *Env) List(key string) []string {
	return slices.Clone(e.lists[key])
}

// Contains reports whether a list variable contains the given entry.
func (e *Env) Contains(key, value string) bool {
	return slices.Contains(e.lists[key], value)
}

// SetProc sets a process environment variable for toolchain invocations.
func (e *Env) SetProc(key, value string) {
	e.proc[key] = value
}

// Proc returns a process environment variable for toolchain invocations.
func (e *Env) Proc(key string) string {
	return e.proc[key]
}

// ProcEnviron returns the toolchain process environment as KEY=VALUE strings
// in sorted order.
func (e *Env) ProcEnviron() []string {
	environ := make([]string, 0, len(e.proc))
	for key, value := range e.proc {
		environ = append(environ, key+"="+value)
	}
	sort.Strings(environ)
	return environ
}

// Clone returns an independently mutable copy of the environment.
func (e *Env) Clone() *Env {
	clone := NewEnv()
	for key, value := range e.scalars {
		clone.scalars[key] = value
	}
	for key, list := range e.lists {
		clone.lists[key] = slices.Clone(list)
	}
	for key, value := range e.proc {
		clone.proc[key] = value
	}
	return clone
}

// Keys returns every defined variable name in sorted order.
func (e *Env) Keys() []string {
	keys := make([]string, 0, len(e.scalars)+len(e.lists))
	for key := range e.scalars {
		keys = append(keys, key)
	}
	for key := range e.lists {
		if _, dup := e.scalars[key]; !dup {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Dump renders the environment deterministically: variables sorted by name,
// list entries in insertion order. When a key holds both a scalar and a list
// the scalar takes precedence, matching how the plan serializes variables.
// Identical environments produce byte-identical output.
func (e *Env) Dump() string {
	var b strings.Builder
	for _, key := range e.Keys() {
		if value, ok := e.scalars[key]; ok {
			fmt.Fprintf(&b, "%s = %s\n", key, value)
			continue
		}
		fmt.Fprintf(&b, "%s = %s\n", key, strings.Join(e.lists[key], " "))
	}
	for _, entry := range e.ProcEnviron() {
		fmt.Fprintf(&b, "ENV.%s\n", entry)
	}
	return b.String()
}

// Fingerprint returns a stable hash of the environment contents, used to key
// emitted plans and diagnostics.
func (e *Env) Fingerprint() string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(e.Dump()))
}
