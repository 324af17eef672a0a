package ports

// IncludeScanner scans a C/C++ source or header file for the files its
// #include directives resolve to. Only includes that resolve to an existing
// file are reported; system headers outside the search paths are ignored.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type IncludeScanner interface {
	// Scan returns the resolved direct includes of path. Quoted includes are
	// resolved against the including file's directory first, then against
	// searchPaths; angle-bracket includes only against searchPaths.
	Scan(path string, searchPaths []string) ([]string, error)
}
