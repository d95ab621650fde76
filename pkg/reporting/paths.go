package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPathManager implements path management functionality
type DefaultPathManager struct {
	root string
}

// NewDefaultPathManager creates a new path manager rooted at "results"
func NewDefaultPathManager() *DefaultPathManager {
	return &DefaultPathManager{root: "results"}
}

// NewPathManager creates a path manager rooted at root
func NewPathManager(root string) *DefaultPathManager {
	if root == "" {
		root = "results"
	}
	return &DefaultPathManager{root: root}
}

// GetDefaultOutputDir returns <root>/<PROBLEM>_<size>
func (p *DefaultPathManager) GetDefaultOutputDir(problem string, size int) string {
	name := strings.ToUpper(strings.TrimSpace(problem))
	if name == "" {
		name = "UNKNOWN"
	}

	return filepath.Join(p.root, fmt.Sprintf("%s_%d", name, size))
}

// EnsureDirectoryExists creates the parent directory of path if it doesn't exist
func (p *DefaultPathManager) EnsureDirectoryExists(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

// Package-level convenience function
func DefaultOutputDir(problem string, size int) string {
	return NewDefaultPathManager().GetDefaultOutputDir(problem, size)
}
