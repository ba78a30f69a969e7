// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/models"
)

// maxResourceBytes bounds the accepted write payload. Oversized requests are
// rejected with 413 so a runaway client cannot grow the store unbounded.
const maxResourceBytes = 1 << 20

const contentTypeText = "text/plain; charset=utf-8"

// latest serves GET /resource/{key}/latest. The response carries the latest
// ref in the ETag header. A never-written resource yields 204 with the
// [models.NoneRef] ETag; a matching If-None-Match yields 304 with no body.
func (h *Handler) latest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key, ok := h.resourceKey(w, r)
	if !ok {
		return
	}

	version, err := h.resources.Latest(r.Context(), key)
	if err != nil {
		log.Err(err).Str("func", "*Handler.latest").Msg("error reading latest version")
		http.Error(w, "error reading latest version", statusFromError(err))
		return
	}

	if version == nil {
		w.Header().Set("Etag", models.NoneRef)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if r.Header.Get("If-None-Match") == version.Ref {
		w.Header().Set("Etag", version.Ref)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Etag", version.Ref)
	w.Header().Set("Content-Type", contentTypeText)
	_, _ = w.Write([]byte(version.Content))
}

// write serves POST /resource/{key}. The If-Match header, when present, is
// the write precondition; a stale ref yields 412 and stores nothing. The new
// ref is returned in the ETag header.
func (h *Handler) write(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key, ok := h.resourceKey(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxResourceBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Str("func", "*Handler.write").Str("key", key.String()).Msg("payload too large")
			http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Str("func", "*Handler.write").Msg("error reading request body")
		http.Error(w, "error reading request body", http.StatusBadRequest)
		return
	}

	version, err := h.resources.Write(r.Context(), key, string(body), r.Header.Get("If-Match"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.write").Str("key", key.String()).Msg("error storing version")
		http.Error(w, "error storing version", statusFromError(err))
		return
	}

	w.Header().Set("Etag", version.Ref)
	w.WriteHeader(http.StatusOK)
}

// listRefs serves GET /resource/{key}: the stored history, newest first.
func (h *Handler) listRefs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key, ok := h.resourceKey(w, r)
	if !ok {
		return
	}

	entries, err := h.resources.ListRefs(r.Context(), key)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listRefs").Msg("error listing refs")
		http.Error(w, "error listing refs", statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(entries); err != nil {
		log.Err(err).Str("func", "*Handler.listRefs").Msg("error encoding refs response")
	}
}

// resolve serves GET /resource/{key}/{ref}: the content of one historical
// version.
func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key, ok := h.resourceKey(w, r)
	if !ok {
		return
	}
	ref := chi.URLParam(r, "ref")

	version, err := h.resources.GetByRef(r.Context(), key, ref)
	if err != nil {
		log.Err(err).Str("func", "*Handler.resolve").Str("ref", ref).Msg("error resolving version")
		http.Error(w, "error resolving version", statusFromError(err))
		return
	}

	w.Header().Set("Etag", version.Ref)
	w.Header().Set("Content-Type", contentTypeText)
	_, _ = w.Write([]byte(version.Content))
}

// deleteKey serves DELETE /resource/{key}.
func (h *Handler) deleteKey(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key, ok := h.resourceKey(w, r)
	if !ok {
		return
	}

	if err := h.resources.DeleteKey(r.Context(), key); err != nil {
		log.Err(err).Str("func", "*Handler.deleteKey").Msg("error deleting resource")
		http.Error(w, "error deleting resource", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// clear serves DELETE /resource: it drops all stored data and rotates the
// store session.
func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.resources.Clear(r.Context()); err != nil {
		log.Err(err).Str("func", "*Handler.clear").Msg("error clearing store")
		http.Error(w, "error clearing store", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// manifest serves GET /manifest.
func (h *Handler) manifest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	manifest, err := h.resources.Manifest(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.manifest").Msg("error building manifest")
		http.Error(w, "error building manifest", statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(manifest); err != nil {
		log.Err(err).Str("func", "*Handler.manifest").Msg("error encoding manifest response")
	}
}

// resourceKey parses the {key} URL parameter, answering 400 itself when the
// value is not a known resource.
func (h *Handler) resourceKey(w http.ResponseWriter, r *http.Request) (models.ResourceKey, bool) {
	key, err := models.ParseResourceKey(chi.URLParam(r, "key"))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.resourceKey").Msg("unknown resource key")
		http.Error(w, "unknown resource key", http.StatusBadRequest)
		return "", false
	}
	return key, true
}
