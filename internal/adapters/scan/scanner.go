// Package scan implements the native C/C++ include scanner used for
// precompiled header dependency tracking.
package scan

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"carbonengine.dev/carbide/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

var _ ports.IncludeScanner = (*CScanner)(nil)

// includePattern matches #include directives with quoted or angle-bracket
// file names. Conditional compilation is not evaluated, matching the
// over-approximate scanning behavior of the build orchestrator.
var includePattern = regexp.MustCompile(`^\s*#\s*include\s*(?:"([^"]+)"|<([^>]+)>)`)

type directive struct {
	name   string
	quoted bool
}

type cacheEntry struct {
	contentHash uint64
	directives  []directive
}

// CScanner scans files for #include directives. Parsed directives are
// memoized per file, keyed by content hash, so repeated closure computations
// do not rescan unchanged files. Scan is safe for concurrent use.
type CScanner struct {
	mu    sync.Mutex
	cache map[string]*cacheEntry
}

// NewCScanner creates a new include scanner with an empty memo cache.
func NewCScanner() *CScanner {
	return &CScanner{cache: make(map[string]*cacheEntry)}
}

// Scan returns the resolved direct includes of path. Quoted includes resolve
// against the including file's directory first and then searchPaths;
// angle-bracket includes resolve against searchPaths only. Includes that do
// not resolve to an existing file are ignored.
func (s *CScanner) Scan(path string, searchPaths []string) ([]string, error) {
	directives, err := s.directives(path)
	if err != nil {
		return nil, err
	}

	var resolved []string
	seen := make(map[string]struct{})
	for _, d := range directives {
		candidates := searchPaths
		if d.quoted {
			candidates = append([]string{filepath.Dir(path)}, searchPaths...)
		}

		for _, dir := range candidates {
			candidate := filepath.Join(dir, d.name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				candidate = filepath.Clean(candidate)
				if _, dup := seen[candidate]; !dup {
					seen[candidate] = struct{}{}
					resolved = append(resolved, candidate)
				}
				break
			}
		}
	}
	return resolved, nil
}

// directives returns the parsed #include directives of path, from the memo
// cache when the file content is unchanged.
func (s *CScanner) directives(path string) ([]directive, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the build description
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read source file"), "path", path)
	}
	hash := xxhash.Sum64(data)

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.cache[path]; ok && entry.contentHash == hash {
		return entry.directives, nil
	}

	var directives []directive
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		match := includePattern.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}
		if match[1] != "" {
			directives = append(directives, directive{name: match[1], quoted: true})
		} else {
			directives = append(directives, directive{name: match[2]})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to scan source file"), "path", path)
	}

	s.cache[path] = &cacheEntry{contentHash: hash, directives: directives}
	return directives, nil
}
