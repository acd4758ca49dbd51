// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package upload_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bureau-foundation/blobkit/lib/clock"
	"github.com/bureau-foundation/blobkit/lib/fault"
	"github.com/bureau-foundation/blobkit/lib/payload"
	"github.com/bureau-foundation/blobkit/lib/testutil"
	"github.com/bureau-foundation/blobkit/lib/upload"
	"github.com/bureau-foundation/blobkit/lib/upload/element"
)

const waitTimeout = 5 * time.Second

type outcome struct {
	files []payload.Payload
	err   error
}

// startSelection runs SelectFiles in the background and returns the
// sink the picker was handed along with the channel its outcome will
// arrive on.
func startSelection(t *testing.T, ctx context.Context, options upload.SelectOptions) (upload.Sink, <-chan outcome) {
	t.Helper()
	picker := element.NewPicker()
	results := make(chan outcome, 1)
	go func() {
		files, err := upload.SelectFiles(ctx, picker, options)
		results <- outcome{files, err}
	}()
	presentation := testutil.RequireReceive(t, picker.Presented(), waitTimeout, "waiting for picker")
	return presentation.Sink, results
}

func TestSelectFilesSelected(t *testing.T) {
	sink, results := startSelection(t, context.Background(), upload.SelectOptions{Multiple: true, Clock: clock.Fake(epoch)})
	sink.Selected([]payload.Payload{file("a.txt", "a"), file("b.txt", "b")})

	result := testutil.RequireReceive(t, results, waitTimeout, "waiting for outcome")
	if result.err != nil {
		t.Fatalf("SelectFiles: %v", result.err)
	}
	if len(result.files) != 2 || result.files[1].Name != "b.txt" {
		t.Errorf("files = %+v", result.files)
	}
}

func TestSelectFilesSingleReturnsFirst(t *testing.T) {
	sink, results := startSelection(t, context.Background(), upload.SelectOptions{Clock: clock.Fake(epoch)})
	sink.Selected([]payload.Payload{file("first", "1"), file("second", "2")})

	result := testutil.RequireReceive(t, results, waitTimeout, "waiting for outcome")
	if len(result.files) != 1 || result.files[0].Name != "first" {
		t.Errorf("files = %+v, want only first", result.files)
	}
}

func TestSelectFilesEmptySelection(t *testing.T) {
	sink, results := startSelection(t, context.Background(), upload.SelectOptions{Clock: clock.Fake(epoch)})
	sink.Selected(nil)

	result := testutil.RequireReceive(t, results, waitTimeout, "waiting for outcome")
	if !errors.Is(result.err, fault.KindNoFileSelected) {
		t.Errorf("error = %v, want KindNoFileSelected", result.err)
	}
}

func TestSelectFilesDismissed(t *testing.T) {
	sink, results := startSelection(t, context.Background(), upload.SelectOptions{Clock: clock.Fake(epoch)})
	sink.Dismissed()
	sink.Selected([]payload.Payload{file("late", "x")})

	result := testutil.RequireReceive(t, results, waitTimeout, "waiting for outcome")
	if !errors.Is(result.err, fault.KindSelectionCancelled) {
		t.Errorf("error = %v, want KindSelectionCancelled", result.err)
	}
}

func TestSelectFilesFocusGraceExpires(t *testing.T) {
	fake := clock.Fake(epoch)
	sink, results := startSelection(t, context.Background(), upload.SelectOptions{Clock: fake})

	sink.Focused()
	sink.Focused() // A second focus signal does not start a second timer.
	fake.WaitForTimers(1)
	if got := fake.PendingCount(); got != 1 {
		t.Fatalf("PendingCount = %d, want 1", got)
	}

	fake.Advance(upload.DefaultGraceDelay - time.Millisecond)
	select {
	case result := <-results:
		t.Fatalf("resolved before grace delay: %+v", result)
	default:
	}

	fake.Advance(time.Millisecond)
	result := testutil.RequireReceive(t, results, waitTimeout, "waiting for outcome")
	if !errors.Is(result.err, fault.KindSelectionCancelled) {
		t.Errorf("error = %v, want KindSelectionCancelled", result.err)
	}
}

func TestSelectFilesSelectionWithinGrace(t *testing.T) {
	fake := clock.Fake(epoch)
	sink, results := startSelection(t, context.Background(), upload.SelectOptions{Clock: fake})

	sink.Focused()
	fake.WaitForTimers(1)
	fake.Advance(100 * time.Millisecond)
	sink.Selected([]payload.Payload{file("chosen.png", "p")})

	result := testutil.RequireReceive(t, results, waitTimeout, "waiting for outcome")
	if result.err != nil || len(result.files) != 1 {
		t.Fatalf("outcome = %+v, want the selection", result)
	}
	if fake.PendingCount() != 0 {
		t.Errorf("grace timer still pending after resolution")
	}
	fake.Advance(time.Second)
}

func TestSelectFilesCustomGraceDelay(t *testing.T) {
	fake := clock.Fake(epoch)
	sink, results := startSelection(t, context.Background(), upload.SelectOptions{Clock: fake, GraceDelay: 2 * time.Second})

	sink.Focused()
	fake.WaitForTimers(1)
	fake.Advance(upload.DefaultGraceDelay)
	select {
	case result := <-results:
		t.Fatalf("resolved at the default delay: %+v", result)
	default:
	}
	fake.Advance(2 * time.Second)
	result := testutil.RequireReceive(t, results, waitTimeout, "waiting for outcome")
	if !errors.Is(result.err, fault.KindSelectionCancelled) {
		t.Errorf("error = %v, want KindSelectionCancelled", result.err)
	}
}

func TestSelectFilesFailed(t *testing.T) {
	cause := errors.New("picker crashed")
	sink, results := startSelection(t, context.Background(), upload.SelectOptions{Clock: clock.Fake(epoch)})
	sink.Failed(cause)

	result := testutil.RequireReceive(t, results, waitTimeout, "waiting for outcome")
	if !errors.Is(result.err, fault.KindRead) || !errors.Is(result.err, cause) {
		t.Errorf("error = %v, want KindRead wrapping the cause", result.err)
	}
}

func TestSelectFilesContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sink, results := startSelection(t, ctx, upload.SelectOptions{Clock: clock.Fake(epoch)})
	cancel()

	result := testutil.RequireReceive(t, results, waitTimeout, "waiting for outcome")
	if !errors.Is(result.err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", result.err)
	}
	// Late signals after resolution are ignored.
	sink.Selected([]payload.Payload{file("late", "x")})
	sink.Dismissed()
}

func TestSelectFilesNilDialog(t *testing.T) {
	_, err := upload.SelectFiles(context.Background(), nil, upload.SelectOptions{})
	if !errors.Is(err, fault.KindEnvironment) {
		t.Errorf("error = %v, want KindEnvironment", err)
	}
}

// scriptedDialog reports a fixed outcome synchronously.
type scriptedDialog func(sink upload.Sink)

func (d scriptedDialog) Present(_ upload.SelectOptions, sink upload.Sink) { d(sink) }

func TestOpenFileSelectionDialogRouting(t *testing.T) {
	selected := scriptedDialog(func(sink upload.Sink) { sink.Selected([]payload.Payload{file("a", "a")}) })
	dismissed := scriptedDialog(func(sink upload.Sink) { sink.Dismissed() })
	empty := scriptedDialog(func(sink upload.Sink) { sink.Selected(nil) })

	tests := []struct {
		name          string
		dialog        upload.Dialog
		setCancel     bool
		wantChange    int
		wantCancel    int
		wantError     int
		wantErrorKind fault.Kind
	}{
		{name: "success feeds OnChange", dialog: selected, setCancel: true, wantChange: 1},
		{name: "cancel goes to OnCancel", dialog: dismissed, setCancel: true, wantCancel: 1, wantErrorKind: fault.KindSelectionCancelled},
		{name: "cancel falls back to OnError", dialog: dismissed, wantError: 1, wantErrorKind: fault.KindSelectionCancelled},
		{name: "empty selection goes to OnError", dialog: empty, setCancel: true, wantError: 1, wantErrorKind: fault.KindNoFileSelected},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			coordinator := newCoordinator()
			var changes, cancels, failures int
			coordinator.OnChange(func([]payload.Payload) { changes++ })
			coordinator.OnError(func(error) { failures++ })
			if test.setCancel {
				coordinator.OnCancel(func() { cancels++ })
			}

			files, err := coordinator.OpenFileSelectionDialog(context.Background(), test.dialog, upload.SelectOptions{})
			if test.wantErrorKind == "" {
				if err != nil || len(files) != 1 {
					t.Fatalf("outcome = (%v, %v), want one file", files, err)
				}
			} else if !errors.Is(err, test.wantErrorKind) {
				t.Fatalf("error = %v, want %s", err, test.wantErrorKind)
			}
			if changes != test.wantChange || cancels != test.wantCancel || failures != test.wantError {
				t.Errorf("change=%d cancel=%d error=%d, want %d/%d/%d",
					changes, cancels, failures, test.wantChange, test.wantCancel, test.wantError)
			}
		})
	}
}

func TestOpenFileSelectionDialogUsesCoordinatorClock(t *testing.T) {
	fake := clock.Fake(epoch)
	coordinator := upload.New(upload.Options{Clock: fake})
	cancelled := make(chan struct{})
	coordinator.OnCancel(func() { close(cancelled) })

	picker := element.NewPicker()
	go func() {
		_, _ = coordinator.OpenFileSelectionDialog(context.Background(), picker, upload.SelectOptions{})
	}()
	presentation := testutil.RequireReceive(t, picker.Presented(), waitTimeout, "waiting for picker")
	presentation.Sink.Focused()
	fake.WaitForTimers(1)
	fake.Advance(upload.DefaultGraceDelay)

	testutil.RequireClosed(t, cancelled, waitTimeout, "waiting for OnCancel")
}
