// Package vfs implements the layered mod-overlay filesystem: an ordered
// stack of root directories, base game first, where the last-pushed root
// wins path resolution.
//
// What:
//
//   - VFS: the root stack. Resolve searches newest→oldest for the first
//     root containing the virtual path; Path is the variant that returns
//     ErrNotFound on a miss.
//   - Resolved paths are memoized in a bounded LRU cache, since a full
//     map load resolves the same handful of virtual paths repeatedly.
//
// Errors:
//
//   - ErrNotFound: no root contains the virtual path.
//   - ErrNotDirectory: a pushed overlay root is not a directory.
package vfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Sentinel errors for path resolution.
var (
	// ErrNotFound indicates no root contains the requested virtual path.
	ErrNotFound = errors.New("vfs: path not found")

	// ErrNotDirectory indicates an overlay root that is not a directory.
	ErrNotDirectory = errors.New("vfs: not a directory")
)

// cacheSize bounds the resolved-path memo. A full load touches well under
// a hundred distinct virtual paths; 256 leaves room for editor tooling.
const cacheSize = 256

// VFS is an ordered stack of root directories. The zero value is not
// usable; construct with New.
type VFS struct {
	roots []string
	memo  *lru.Cache[string, string]
}

// New returns a VFS rooted at the base game directory.
func New(basePath string) (*VFS, error) {
	if err := checkRoot(basePath); err != nil {
		return nil, err
	}
	memo, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("vfs: %w", err)
	}

	return &VFS{roots: []string{basePath}, memo: memo}, nil
}

// PushModPath stacks an overlay root on top of all earlier roots. Paths
// resolving inside it shadow the base game and previously pushed mods.
func (v *VFS) PushModPath(p string) error {
	if err := checkRoot(p); err != nil {
		return err
	}
	v.roots = append(v.roots, p)
	v.memo.Purge() // stale resolutions may now be shadowed

	return nil
}

// Resolve maps a virtual path (forward-slash separated) to the real path
// under the highest-priority root that contains it.
func (v *VFS) Resolve(virt string) (string, bool) {
	if real, ok := v.memo.Get(virt); ok {
		return real, true
	}
	rel := filepath.FromSlash(virt)
	for i := len(v.roots) - 1; i >= 0; i-- {
		real := filepath.Join(v.roots[i], rel)
		if _, err := os.Stat(real); err == nil {
			v.memo.Add(virt, real)

			return real, true
		}
	}

	return "", false
}

// Path resolves virt or fails with ErrNotFound naming the virtual path.
func (v *VFS) Path(virt string) (string, error) {
	real, ok := v.Resolve(virt)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, virt)
	}

	return real, nil
}

// String renders the search stack, highest priority first.
func (v *VFS) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := len(v.roots) - 1; i >= 0; i-- {
		sb.WriteString("\n\t")
		sb.WriteString(v.roots[i])
	}
	if len(v.roots) > 0 {
		sb.WriteByte('\n')
	}
	sb.WriteByte('}')

	return sb.String()
}

// checkRoot validates that p exists and is a directory.
func checkRoot(p string) error {
	fi, err := os.Stat(p)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, p)
	}

	return nil
}
