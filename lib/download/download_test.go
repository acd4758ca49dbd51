// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package download

import (
	"bytes"
	"errors"
	"log/slog"
	"mime"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/blobkit/lib/payload"
)

// recordingTarget captures Save calls.
type recordingTarget struct {
	filename    string
	contentType string
	data        []byte
	calls       int
	err         error
}

func (r *recordingTarget) Save(filename, contentType string, data []byte) error {
	r.calls++
	r.filename, r.contentType, r.data = filename, contentType, data
	return r.err
}

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buffer bytes.Buffer
	return slog.New(slog.NewTextHandler(&buffer, &slog.HandlerOptions{Level: slog.LevelDebug})), &buffer
}

func TestOffer(t *testing.T) {
	target := &recordingTarget{}
	logger, _ := captureLogger()
	Offer(target, payload.New([]byte{0, 1, 2}, "image/png", "x"), "shot.png", logger)

	if target.filename != "shot.png" || target.contentType != "image/png" || !bytes.Equal(target.data, []byte{0, 1, 2}) {
		t.Errorf("saved %+v", target)
	}
}

func TestOfferDefaultsContentType(t *testing.T) {
	target := &recordingTarget{}
	Offer(target, payload.Payload{Data: []byte("x")}, "README", nil)
	if target.contentType != "application/octet-stream" {
		t.Errorf("content type = %q", target.contentType)
	}
	if target.filename != "README" {
		t.Errorf("filename = %q, want it unchanged", target.filename)
	}
}

func TestOfferText(t *testing.T) {
	target := &recordingTarget{}
	OfferText(target, "héllo", "greeting.txt", nil)
	if target.contentType != TextContentType || string(target.data) != "héllo" {
		t.Errorf("saved %q as %q", target.data, target.contentType)
	}
}

func TestOfferDataURL(t *testing.T) {
	target := &recordingTarget{}
	OfferDataURL(target, "data:text/csv;base64,YSxiCjEsMgo=", "table.csv", nil)
	if target.contentType != "text/csv" || string(target.data) != "a,b\n1,2\n" {
		t.Errorf("saved %q as %q", target.data, target.contentType)
	}
}

func TestOfferDataURLMalformedIsLogged(t *testing.T) {
	target := &recordingTarget{}
	logger, logs := captureLogger()
	OfferDataURL(target, "not a data url", "x.bin", logger)

	if target.calls != 0 {
		t.Errorf("Save called for a malformed data URL")
	}
	if !strings.Contains(logs.String(), "invalid data URL") || !strings.Contains(logs.String(), "kind=format") {
		t.Errorf("log output = %s", logs.String())
	}
}

func TestOfferTargetFailureIsLogged(t *testing.T) {
	target := &recordingTarget{err: errors.New("disk full")}
	logger, logs := captureLogger()
	OfferText(target, "x", "x.txt", logger)
	if !strings.Contains(logs.String(), "disk full") {
		t.Errorf("log output = %s", logs.String())
	}
}

func TestOfferNilTarget(t *testing.T) {
	logger, logs := captureLogger()
	OfferText(nil, "x", "x.txt", logger)
	if !strings.Contains(logs.String(), "no target") {
		t.Errorf("log output = %s", logs.String())
	}
}

func TestHTTPTarget(t *testing.T) {
	recorder := httptest.NewRecorder()
	Offer(HTTPTarget{Writer: recorder}, payload.New([]byte("body"), "text/markdown", ""), "../notes v2.md", nil)

	response := recorder.Result()
	if response.StatusCode != 200 {
		t.Fatalf("status = %d", response.StatusCode)
	}
	if got := response.Header.Get("Content-Type"); got != "text/markdown" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := response.Header.Get("Content-Length"); got != "4" {
		t.Errorf("Content-Length = %q", got)
	}
	disposition, params, err := mime.ParseMediaType(response.Header.Get("Content-Disposition"))
	if err != nil {
		t.Fatalf("parsing Content-Disposition: %v", err)
	}
	if disposition != "attachment" || params["filename"] != "notes v2.md" {
		t.Errorf("Content-Disposition = %s %v", disposition, params)
	}
	if recorder.Body.String() != "body" {
		t.Errorf("body = %q", recorder.Body.String())
	}
}

func TestDirTarget(t *testing.T) {
	directory := filepath.Join(t.TempDir(), "downloads")
	target := DirTarget{Dir: directory}

	OfferText(target, "first", "a.txt", nil)
	if err := target.Save(`..\..\escape.txt`, "text/plain", []byte("second")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(directory, "a.txt"))
	if err != nil || string(data) != "first" {
		t.Errorf("a.txt = %q, %v", data, err)
	}
	data, err = os.ReadFile(filepath.Join(directory, "escape.txt"))
	if err != nil || string(data) != "second" {
		t.Errorf("escape.txt = %q, %v", data, err)
	}

	if err := target.Save("dir/", "text/plain", nil); err == nil {
		t.Error("Save accepted a filename with no base name")
	}
}
