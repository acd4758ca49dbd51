// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package atomicfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteCreatesParentsAndLeavesNoTemp(t *testing.T) {
	root := t.TempDir()
	finalPath := filepath.Join(root, "ab", "cd", "blob.bin")

	if err := Write(root, "blob-*.tmp", finalPath, []byte("payload"), 0o600); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(finalPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "payload" {
		t.Errorf("contents = %q", data)
	}
	info, err := os.Stat(finalPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}

	matches, _ := filepath.Glob(filepath.Join(root, "blob-*.tmp"))
	if len(matches) != 0 {
		t.Errorf("temp files left behind: %v", matches)
	}
}

func TestWriteReplacesExisting(t *testing.T) {
	root := t.TempDir()
	finalPath := filepath.Join(root, "file.txt")
	if err := Write(root, "f-*", finalPath, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Write(root, "f-*", finalPath, []byte("new"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(finalPath)
	if string(data) != "new" {
		t.Errorf("contents = %q, want new", data)
	}
}

func TestWriteMissingStagingDir(t *testing.T) {
	root := t.TempDir()
	finalPath := filepath.Join(root, "file.txt")
	if err := Write(filepath.Join(root, "absent"), "f-*", finalPath, []byte("x"), 0o644); err == nil {
		t.Fatal("Write succeeded with a missing staging directory")
	}
	if _, err := os.Stat(finalPath); !os.IsNotExist(err) {
		t.Errorf("final path exists after failed write")
	}
}
