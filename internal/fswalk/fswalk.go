// Package fswalk enumerates the .txt/.text files under a root, the file
// ingestion pathway's sole external collaborator per the specification:
// directory walking itself carries no indexing semantics.
package fswalk

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// IsTextFile reports whether path ends in .txt or .text,
// case-insensitively. It checks only the name, not the file system.
func IsTextFile(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".txt") || strings.HasSuffix(lower, ".text")
}

// ListText returns every .txt/.text file under start, in the order
// filepath.WalkDir visits them (lexicographic per directory level). If
// start is itself a single file (text or not), it is returned as the
// sole entry — callers are expected to have already decided start is a
// file worth indexing.
func ListText(start string) ([]string, error) {
	info, err := os.Stat(start)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{start}, nil
	}

	var files []string
	err = filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if IsTextFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
