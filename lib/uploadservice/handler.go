// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package uploadservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"filippo.io/age"
	"github.com/google/uuid"

	"github.com/bureau-foundation/blobkit/lib/blobstore"
	"github.com/bureau-foundation/blobkit/lib/bytesize"
	"github.com/bureau-foundation/blobkit/lib/clock"
	"github.com/bureau-foundation/blobkit/lib/digest"
	"github.com/bureau-foundation/blobkit/lib/download"
	"github.com/bureau-foundation/blobkit/lib/fault"
	"github.com/bureau-foundation/blobkit/lib/mimetype"
	"github.com/bureau-foundation/blobkit/lib/payload"
	"github.com/bureau-foundation/blobkit/lib/upload"
	"github.com/bureau-foundation/blobkit/lib/upload/element"
)

// DefaultMaxUploadSize applies when Config.MaxUploadSize is zero.
const DefaultMaxUploadSize = 32 << 20

// Store is the subset of blobstore.Store the handler uses.
type Store interface {
	Put(p payload.Payload) (*blobstore.Metadata, error)
	Get(ref string, identities []age.Identity) (payload.Payload, *blobstore.Metadata, error)
	List() ([]*blobstore.Metadata, error)
}

// Config configures a Handler.
type Config struct {
	// Store persists uploads. Required.
	Store Store

	// Identities decrypt blobs for GET /blobs/{ref} when the store
	// encrypts at rest.
	Identities []age.Identity

	// MaxUploadSize bounds each request body in bytes.
	MaxUploadSize int64

	// Accept is an HTML-style filter applied to every uploaded file.
	// Empty accepts everything.
	Accept string

	// Clock is handed to each request's Coordinator.
	Clock clock.Clock

	// Logger is required.
	Logger *slog.Logger
}

// Handler serves the upload routes.
type Handler struct {
	store         Store
	identities    []age.Identity
	maxUploadSize int64
	accept        string
	clock         clock.Clock
	logger        *slog.Logger
	mux           *http.ServeMux
}

// NewHandler creates a Handler. It panics when Store or Logger is nil.
func NewHandler(config Config) *Handler {
	if config.Store == nil {
		panic("uploadservice.Handler: Store is required")
	}
	if config.Logger == nil {
		panic("uploadservice.Handler: Logger is required")
	}
	if config.MaxUploadSize <= 0 {
		config.MaxUploadSize = DefaultMaxUploadSize
	}
	if config.Clock == nil {
		config.Clock = clock.Real()
	}

	handler := &Handler{
		store:         config.Store,
		identities:    config.Identities,
		maxUploadSize: config.MaxUploadSize,
		accept:        config.Accept,
		clock:         config.Clock,
		logger:        config.Logger,
		mux:           http.NewServeMux(),
	}
	handler.mux.HandleFunc("POST /input", handler.handleInput)
	handler.mux.HandleFunc("POST /drop", handler.handleDrop)
	handler.mux.HandleFunc("POST /dataurl", handler.handleDataURL)
	handler.mux.HandleFunc("GET /blobs", handler.handleList)
	handler.mux.HandleFunc("GET /blobs/{ref}", handler.handleGet)
	return handler
}

// ServeHTTP dispatches to the route handlers.
func (h *Handler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	h.mux.ServeHTTP(writer, request)
}

// FileResult describes one stored upload.
type FileResult struct {
	Ref         string `json:"ref"`
	Name        string `json:"name,omitempty"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	HumanSize   string `json:"human_size"`
	SHA256      string `json:"sha256"`
}

// BatchResponse is the body of a successful upload.
type BatchResponse struct {
	Batch string       `json:"batch"`
	Files []FileResult `json:"files"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func (h *Handler) handleInput(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, h.maxUploadSize)
	if err := request.ParseMultipartForm(h.maxUploadSize); err != nil {
		h.writeReadError(writer, fmt.Errorf("parsing multipart form: %w", err))
		return
	}
	defer request.MultipartForm.RemoveAll()

	var files []payload.Payload
	for _, header := range request.MultipartForm.File["file"] {
		part, err := header.Open()
		if err != nil {
			h.writeError(writer, http.StatusBadRequest, fmt.Errorf("opening %s: %w", header.Filename, err))
			return
		}
		file, err := payload.ReadAll(request.Context(), part, header.Filename, partContentType(header.Header.Get("Content-Type")))
		part.Close()
		if err != nil {
			h.writeReadError(writer, err)
			return
		}
		files = append(files, file)
	}
	if !h.checkAccept(writer, files) {
		return
	}

	input := element.NewInput()
	h.runBatch(request.Context(), writer, "input", func(coordinator *upload.Coordinator, onFiles func([]payload.Payload)) {
		if err := coordinator.AttachFileInput(input); err != nil {
			panic("uploadservice: in-memory input rejected: " + err.Error())
		}
		coordinator.OnChange(onFiles)
		input.Select(files...)
	})
}

func (h *Handler) handleDrop(writer http.ResponseWriter, request *http.Request) {
	name := request.Header.Get("X-Filename")
	if name == "" {
		name = request.URL.Query().Get("filename")
	}
	body := http.MaxBytesReader(writer, request.Body, h.maxUploadSize)
	file, err := payload.ReadAll(request.Context(), body, name, partContentType(request.Header.Get("Content-Type")))
	if err != nil {
		h.writeReadError(writer, err)
		return
	}

	var files []payload.Payload
	if len(file.Data) > 0 {
		files = append(files, file)
	}
	if !h.checkAccept(writer, files) {
		return
	}

	zone := element.NewZone()
	h.runBatch(request.Context(), writer, "drop", func(coordinator *upload.Coordinator, onFiles func([]payload.Payload)) {
		if err := coordinator.AttachDropZone(zone, true); err != nil {
			panic("uploadservice: in-memory zone rejected: " + err.Error())
		}
		coordinator.OnDrop(onFiles)
		zone.Drop(files...)
	})
}

type dataURLRequest struct {
	DataURL string `json:"data_url"`
	Name    string `json:"name,omitempty"`
}

func (h *Handler) handleDataURL(writer http.ResponseWriter, request *http.Request) {
	var body dataURLRequest
	decoder := json.NewDecoder(http.MaxBytesReader(writer, request.Body, h.maxUploadSize))
	if err := decoder.Decode(&body); err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			h.writeError(writer, http.StatusRequestEntityTooLarge, err)
			return
		}
		h.writeError(writer, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return
	}

	file, err := payload.ParseDataURL(body.DataURL)
	if err != nil {
		h.writeError(writer, http.StatusBadRequest, err)
		return
	}
	file.Name = body.Name
	if !h.checkAccept(writer, []payload.Payload{file}) {
		return
	}

	result, err := h.storeFile(request.Context(), file)
	if err != nil {
		h.writeError(writer, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(writer, http.StatusOK, BatchResponse{Batch: uuid.NewString(), Files: []FileResult{result}})
}

func (h *Handler) handleList(writer http.ResponseWriter, request *http.Request) {
	entries, err := h.store.List()
	if err != nil {
		h.writeError(writer, http.StatusInternalServerError, err)
		return
	}
	if entries == nil {
		entries = []*blobstore.Metadata{}
	}
	h.writeJSON(writer, http.StatusOK, map[string]any{"blobs": entries})
}

func (h *Handler) handleGet(writer http.ResponseWriter, request *http.Request) {
	ref := request.PathValue("ref")
	file, meta, err := h.store.Get(ref, h.identities)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist):
		h.writeError(writer, http.StatusNotFound, err)
		return
	case errors.Is(err, blobstore.ErrIdentityRequired):
		h.writeError(writer, http.StatusForbidden, err)
		return
	case errors.Is(err, blobstore.ErrInvalidRef), errors.Is(err, blobstore.ErrAmbiguousRef):
		h.writeError(writer, http.StatusBadRequest, err)
		return
	default:
		h.writeError(writer, http.StatusInternalServerError, err)
		return
	}

	filename := meta.Name
	if filename == "" {
		filename = meta.Ref
	}
	download.Offer(download.HTTPTarget{Writer: writer}, file, filename, h.logger.With("ref", meta.Ref))
}

// runBatch builds a Coordinator, lets dispatch bind it and fire the
// event, and answers with whatever the callback stored.
func (h *Handler) runBatch(ctx context.Context, writer http.ResponseWriter, source string, dispatch func(*upload.Coordinator, func([]payload.Payload))) {
	batch := uuid.NewString()
	logger := h.logger.With("batch", batch, "source", source)

	coordinator := upload.New(upload.Options{Clock: h.clock, Logger: logger})
	defer coordinator.Destroy()

	var (
		results  []FileResult
		storeErr error
		received bool
	)
	dispatch(coordinator, func(files []payload.Payload) {
		received = true
		for _, file := range files {
			result, err := h.storeFile(ctx, file)
			if err != nil {
				storeErr = err
				return
			}
			results = append(results, result)
		}
	})

	switch {
	case !received:
		h.writeError(writer, http.StatusBadRequest,
			fault.New(fault.KindNoFileSelected, "uploadservice."+source, "request carried no files"))
	case storeErr != nil:
		logger.Error("storing upload failed", "error", storeErr)
		h.writeError(writer, http.StatusInternalServerError, storeErr)
	default:
		logger.Info("upload batch stored", "files", len(results))
		h.writeJSON(writer, http.StatusOK, BatchResponse{Batch: batch, Files: results})
	}
}

func (h *Handler) storeFile(ctx context.Context, file payload.Payload) (FileResult, error) {
	sha256, err := digest.Compute(ctx, digest.Standard(), string(digest.SHA256), file)
	if err != nil {
		return FileResult{}, err
	}
	meta, err := h.store.Put(file)
	if err != nil {
		return FileResult{}, err
	}
	return FileResult{
		Ref:         meta.Ref,
		Name:        file.Name,
		ContentType: file.ContentType,
		Size:        meta.Size,
		HumanSize:   bytesize.Format(meta.Size, false, 2),
		SHA256:      sha256,
	}, nil
}

// checkAccept writes a 415 and returns false when any file falls
// outside the accept filter.
func (h *Handler) checkAccept(writer http.ResponseWriter, files []payload.Payload) bool {
	for _, file := range files {
		if !mimetype.Matches(h.accept, file.Name, file.ContentType) {
			h.writeError(writer, http.StatusUnsupportedMediaType,
				fmt.Errorf("%s (%s) is not accepted; accepted: %s", file.Name, file.ContentType, h.accept))
			return false
		}
	}
	return true
}

func (h *Handler) writeReadError(writer http.ResponseWriter, err error) {
	var maxBytesError *http.MaxBytesError
	if errors.As(err, &maxBytesError) {
		h.writeError(writer, http.StatusRequestEntityTooLarge,
			fmt.Errorf("request body exceeds %s", bytesize.Format(maxBytesError.Limit, false, 2)))
		return
	}
	h.writeError(writer, http.StatusBadRequest, err)
}

func (h *Handler) writeError(writer http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "status", status, "error", err)
	} else {
		h.logger.Debug("request rejected", "status", status, "error", err)
	}
	h.writeJSON(writer, status, ErrorResponse{Error: err.Error(), Kind: string(fault.KindOf(err))})
}

func (h *Handler) writeJSON(writer http.ResponseWriter, status int, value any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	if err := json.NewEncoder(writer).Encode(value); err != nil {
		h.logger.Warn("writing response failed", "error", err)
	}
}

// partContentType drops the generic type browsers send for unknown
// files so the type is inferred from the name instead.
func partContentType(contentType string) string {
	if contentType == mimetype.Default {
		return ""
	}
	return contentType
}
