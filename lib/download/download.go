// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package download offers payloads to the user as saved files.
//
// A [Target] is where the bytes land: an HTTP response carrying a
// Content-Disposition attachment header ([HTTPTarget]) or a directory
// on disk ([DirTarget]). The Offer functions are best-effort: they
// never return an error, and a failure is logged instead. The filename
// is used verbatim; no extension is added when it has none.
package download

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bureau-foundation/blobkit/lib/atomicfile"
	"github.com/bureau-foundation/blobkit/lib/fault"
	"github.com/bureau-foundation/blobkit/lib/mimetype"
	"github.com/bureau-foundation/blobkit/lib/payload"
)

// TextContentType is the type OfferText saves under.
const TextContentType = "text/plain;charset=utf-8"

// Target receives a file to save.
type Target interface {
	Save(filename, contentType string, data []byte) error
}

// Offer saves p under filename. An empty content type becomes
// application/octet-stream.
func Offer(target Target, p payload.Payload, filename string, logger *slog.Logger) {
	offer(target, filename, p.ContentType, p.Data, logger)
}

// OfferText saves text as UTF-8 plain text.
func OfferText(target Target, text, filename string, logger *slog.Logger) {
	offer(target, filename, TextContentType, []byte(text), logger)
}

// OfferDataURL decodes dataURL and saves the result. A malformed URL
// is logged and nothing is saved.
func OfferDataURL(target Target, dataURL, filename string, logger *slog.Logger) {
	p, err := payload.ParseDataURL(dataURL)
	if err != nil {
		loggerOrDefault(logger).Warn("download skipped: invalid data URL",
			"filename", filename,
			"kind", fault.KindOf(err),
			"error", err,
		)
		return
	}
	offer(target, filename, p.ContentType, p.Data, logger)
}

func offer(target Target, filename, contentType string, data []byte, logger *slog.Logger) {
	logger = loggerOrDefault(logger)
	if target == nil {
		logger.Warn("download skipped: no target", "filename", filename)
		return
	}
	if contentType == "" {
		contentType = mimetype.Default
	}
	if err := target.Save(filename, contentType, data); err != nil {
		logger.Warn("download failed",
			"filename", filename,
			"content_type", contentType,
			"size", len(data),
			"error", err,
		)
		return
	}
	logger.Debug("download offered", "filename", filename, "content_type", contentType, "size", len(data))
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// HTTPTarget writes a file as an HTTP attachment response.
type HTTPTarget struct {
	Writer http.ResponseWriter
}

// Save writes the headers and body. The filename is reduced to its
// base name before being placed in Content-Disposition.
func (h HTTPTarget) Save(filename, contentType string, data []byte) error {
	header := h.Writer.Header()
	header.Set("Content-Type", contentType)
	header.Set("Content-Length", strconv.Itoa(len(data)))
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": baseName(filename)})
	if disposition == "" {
		disposition = "attachment"
	}
	header.Set("Content-Disposition", disposition)
	h.Writer.WriteHeader(http.StatusOK)
	if _, err := h.Writer.Write(data); err != nil {
		return fmt.Errorf("writing attachment body: %w", err)
	}
	return nil
}

// DirTarget saves files into a directory. Path components in the
// filename are discarded, so a file can never escape the directory.
type DirTarget struct {
	Dir string
}

// Save writes data atomically to Dir/base(filename).
func (d DirTarget) Save(filename, _ string, data []byte) error {
	name := baseName(filename)
	if name == "" {
		return fmt.Errorf("download filename %q has no usable name", filename)
	}
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("creating download directory %s: %w", d.Dir, err)
	}
	return atomicfile.Write(d.Dir, ".download-*", filepath.Join(d.Dir, name), data, 0o644)
}

// baseName strips both slash styles, since filenames can come from
// browsers on any platform.
func baseName(filename string) string {
	if slash := strings.LastIndexAny(filename, `/\`); slash >= 0 {
		filename = filename[slash+1:]
	}
	if filename == "." || filename == ".." {
		return ""
	}
	return filename
}
