// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"
)

// recorder captures Fatalf instead of stopping the test.
type recorder struct {
	message string
}

func (r *recorder) Helper() {}

func (r *recorder) Fatalf(format string, args ...any) {
	r.message = fmt.Sprintf(format, args...)
	panic(r)
}

func capture(fn func(r *recorder)) (message string) {
	r := &recorder{}
	defer func() {
		if recovered := recover(); recovered != nil {
			if recovered != r {
				panic(recovered)
			}
			message = r.message
		}
	}()
	fn(r)
	return ""
}

func TestRequireReceive(t *testing.T) {
	ch := make(chan int, 1)
	ch <- 42
	if got := RequireReceive(t, ch, time.Second, "value"); got != 42 {
		t.Fatalf("RequireReceive = %d, want 42", got)
	}

	message := capture(func(r *recorder) {
		RequireReceive(r, make(chan int), 10*time.Millisecond, "waiting for %s", "nothing")
	})
	if !strings.Contains(message, "timed out") || !strings.Contains(message, "waiting for nothing") {
		t.Errorf("timeout message = %q", message)
	}

	closed := make(chan int)
	close(closed)
	message = capture(func(r *recorder) { RequireReceive(r, closed, time.Second) })
	if !strings.Contains(message, "closed without a value") {
		t.Errorf("closed-channel message = %q", message)
	}
}

func TestRequireClosed(t *testing.T) {
	ready := make(chan struct{})
	close(ready)
	RequireClosed(t, ready, time.Second, "ready")

	message := capture(func(r *recorder) {
		RequireClosed(r, make(chan struct{}), 10*time.Millisecond, "never")
	})
	if !strings.Contains(message, "never") {
		t.Errorf("timeout message = %q", message)
	}
}

func TestUniqueID(t *testing.T) {
	first, second := UniqueID("x"), UniqueID("x")
	if first == second || !strings.HasPrefix(first, "x-") {
		t.Errorf("UniqueID produced %q then %q", first, second)
	}
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "fixture.txt", []byte("hello"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Errorf("contents = %q", data)
	}
}
