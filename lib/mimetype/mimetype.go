// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package mimetype infers content types from filenames using a fixed
// extension table. Both lookups are total: they never fail, and an
// unknown extension is reported as [Default] rather than as an error.
//
// The table is fixed rather than read from the host's
// mime.types, so inference is identical on every machine.
package mimetype

import "strings"

// Default is the content type for unknown or absent extensions.
const Default = "application/octet-stream"

// extensionTypes maps lower-cased extensions (without the dot) to
// content types.
var extensionTypes = map[string]string{
	// Text and markup.
	"txt":      "text/plain",
	"text":     "text/plain",
	"log":      "text/plain",
	"md":       "text/markdown",
	"markdown": "text/markdown",
	"html":     "text/html",
	"htm":      "text/html",
	"css":      "text/css",
	"csv":      "text/csv",
	"tsv":      "text/tab-separated-values",
	"xml":      "application/xml",
	"yaml":     "application/yaml",
	"yml":      "application/yaml",
	"toml":     "application/toml",

	// Structured data.
	"json":   "application/json",
	"jsonc":  "application/json",
	"ndjson": "application/x-ndjson",
	"cbor":   "application/cbor",
	"sql":    "application/sql",

	// Source code.
	"js":   "text/javascript",
	"mjs":  "text/javascript",
	"ts":   "text/typescript",
	"tsx":  "text/typescript",
	"jsx":  "text/javascript",
	"go":   "text/x-go",
	"py":   "text/x-python",
	"rs":   "text/x-rust",
	"java": "text/x-java",
	"c":    "text/x-c",
	"h":    "text/x-c",
	"cpp":  "text/x-c++",
	"sh":   "application/x-sh",

	// Images.
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
	"bmp":  "image/bmp",
	"ico":  "image/x-icon",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
	"avif": "image/avif",

	// Audio.
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"ogg":  "audio/ogg",
	"flac": "audio/flac",
	"m4a":  "audio/mp4",
	"aac":  "audio/aac",

	// Video.
	"mp4":  "video/mp4",
	"webm": "video/webm",
	"mov":  "video/quicktime",
	"avi":  "video/x-msvideo",
	"mkv":  "video/x-matroska",

	// Documents.
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"xls":  "application/vnd.ms-excel",
	"xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"ppt":  "application/vnd.ms-powerpoint",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"rtf":  "application/rtf",

	// Archives.
	"zip": "application/zip",
	"gz":  "application/gzip",
	"tgz": "application/gzip",
	"tar": "application/x-tar",
	"bz2": "application/x-bzip2",
	"xz":  "application/x-xz",
	"zst": "application/zstd",
	"7z":  "application/x-7z-compressed",

	// Fonts and binaries.
	"woff":        "font/woff",
	"woff2":       "font/woff2",
	"ttf":         "font/ttf",
	"otf":         "font/otf",
	"wasm":        "application/wasm",
	"bin":         Default,
	"safetensors": "application/x-safetensors",
}

// Extension returns the substring after the last "." in name. The
// second result is false when name has no dot, when the last dot is
// the first character (".gitignore"), or when it is the last character
// ("trailing."). Only the final path element is considered, so
// "dir.d/file" has no extension.
func Extension(name string) (string, bool) {
	if slash := strings.LastIndexAny(name, `/\`); slash >= 0 {
		name = name[slash+1:]
	}
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 || dot == len(name)-1 {
		return "", false
	}
	return name[dot+1:], true
}

// FromFilename returns the content type for name's extension, matched
// case-insensitively, or [Default] when the extension is absent or not
// in the table.
func FromFilename(name string) string {
	extension, ok := Extension(name)
	if !ok {
		return Default
	}
	if contentType, known := extensionTypes[strings.ToLower(extension)]; known {
		return contentType
	}
	return Default
}

// IsTextual reports whether contentType denotes human-readable text:
// any text/* type, or one of the structured text formats (JSON, XML,
// YAML, TOML, SQL, SVG, NDJSON, shell). Parameters such as charset are
// ignored.
func IsTextual(contentType string) bool {
	base, _, _ := strings.Cut(contentType, ";")
	base = strings.ToLower(strings.TrimSpace(base))
	if strings.HasPrefix(base, "text/") {
		return true
	}
	switch base {
	case "application/json", "application/x-ndjson", "application/xml",
		"application/yaml", "application/toml", "application/sql",
		"application/x-sh", "image/svg+xml":
		return true
	}
	return strings.HasSuffix(base, "+json") || strings.HasSuffix(base, "+xml")
}

// Matches reports whether a payload with the given name and content
// type passes an accept filter in the HTML input style: a
// comma-separated list of extensions (".png"), exact types
// ("image/png"), and wildcard types ("image/*"). An empty filter
// accepts everything.
func Matches(accept, name, contentType string) bool {
	if strings.TrimSpace(accept) == "" {
		return true
	}
	base, _, _ := strings.Cut(contentType, ";")
	base = strings.ToLower(strings.TrimSpace(base))
	extension, hasExtension := Extension(name)
	extension = strings.ToLower(extension)

	for _, entry := range strings.Split(accept, ",") {
		entry = strings.ToLower(strings.TrimSpace(entry))
		switch {
		case entry == "":
			continue
		case strings.HasPrefix(entry, "."):
			if hasExtension && entry[1:] == extension {
				return true
			}
		case strings.HasSuffix(entry, "/*"):
			if strings.HasPrefix(base, strings.TrimSuffix(entry, "*")) {
				return true
			}
		case entry == base:
			return true
		}
	}
	return false
}
