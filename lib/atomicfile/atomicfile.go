// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package atomicfile writes files so that readers never observe a
// partial write: data goes to a temporary file in a staging
// directory, is synced, and is renamed over the final path.
//
// The staging directory must be on the same filesystem as the final
// path, or the rename fails with EXDEV.
package atomicfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write stores data at finalPath via a temporary file created in
// stagingDir with the given name pattern (see os.CreateTemp). The
// parent of finalPath is created if missing. On failure the temporary
// file is removed and finalPath is untouched.
func Write(stagingDir, pattern, finalPath string, data []byte, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(finalPath), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", finalPath, err)
	}

	tmpFile, err := os.CreateTemp(stagingDir, pattern)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("syncing %s: %w", tmpPath, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("setting mode on %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return fmt.Errorf("renaming to %s: %w", finalPath, err)
	}

	success = true
	return nil
}
