// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-settings-sync/internal/config"
	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/token"
	"github.com/MKhiriev/go-settings-sync/models"
)

type httpRemoteStore struct {
	client   *resty.Client
	provider token.Provider

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs an HTTP/REST implementation of [RemoteStore].
// It normalises and validates the base URL from adapterCfg.StoreAddress and
// configures the underlying client with the resolved base URL and request
// timeout. Every request is authenticated with a bearer token obtained from
// provider.
//
// Returns an error if adapterCfg.StoreAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPRemoteStore(adapterCfg config.ClientAdapter, provider token.Provider, log *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.StoreAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid store address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpRemoteStore{client: client, provider: provider, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Read implements [RemoteStore]. It GETs /resource/{key}/latest with
// Cache-Control: no-cache so intermediaries never serve a stale version, and
// If-None-Match when previous is available. On 304 the previous value is
// returned untouched. The response ETag becomes the new ref; its absence on
// a 2xx fails with ErrNoRef.
func (h *httpRemoteStore) Read(ctx context.Context, key models.ResourceKey, previous *models.UserData) (models.UserData, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.UserData{}, err
	}

	req.SetHeader("Cache-Control", "no-cache")
	if previous != nil && previous.Ref != "" {
		req.SetHeader("If-None-Match", previous.Ref)
	}

	resp, err := req.Get("/resource/" + key.String() + "/latest")
	if err != nil {
		return models.UserData{}, fmt.Errorf("%w: read %s: %w", ErrConnectionRefused, key, err)
	}

	if resp.StatusCode() == http.StatusNotModified {
		if previous == nil {
			return models.UserData{}, fmt.Errorf("read %s: 304 without If-None-Match", key)
		}
		return *previous, nil
	}
	if err = h.mapError(resp); err != nil {
		return models.UserData{}, fmt.Errorf("read %s: %w", key, err)
	}

	ref := resp.Header().Get("Etag")
	if ref == "" {
		return models.UserData{}, fmt.Errorf("read %s: %w", key, ErrNoRef)
	}

	data := models.UserData{Ref: ref}
	if resp.StatusCode() != http.StatusNoContent && ref != models.NoneRef {
		content := string(resp.Body())
		data.Content = &content
	}

	return data, nil
}

// Write implements [RemoteStore]. It POSTs content to /resource/{key} as
// text/plain with If-Match when ref is non-empty. A 412 response maps to
// ErrPreconditionFailed; the response ETag is the new ref.
func (h *httpRemoteStore) Write(ctx context.Context, key models.ResourceKey, content string, ref string) (string, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return "", err
	}

	req.SetHeader("Content-Type", "text/plain").SetBody(content)
	if ref != "" {
		req.SetHeader("If-Match", ref)
	}

	resp, err := req.Post("/resource/" + key.String())
	if err != nil {
		return "", fmt.Errorf("%w: write %s: %w", ErrConnectionRefused, key, err)
	}
	if err = h.mapError(resp); err != nil {
		return "", fmt.Errorf("write %s: %w", key, err)
	}

	newRef := resp.Header().Get("Etag")
	if newRef == "" {
		return "", fmt.Errorf("write %s: %w", key, ErrNoRef)
	}

	return newRef, nil
}

// Manifest implements [RemoteStore].
func (h *httpRemoteStore) Manifest(ctx context.Context) (models.Manifest, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Manifest{}, err
	}

	resp, err := req.Get("/manifest")
	if err != nil {
		return models.Manifest{}, fmt.Errorf("%w: manifest: %w", ErrConnectionRefused, err)
	}
	if err = h.mapError(resp); err != nil {
		return models.Manifest{}, fmt.Errorf("manifest: %w", err)
	}

	var manifest models.Manifest
	if err = json.Unmarshal(resp.Body(), &manifest); err != nil {
		return models.Manifest{}, fmt.Errorf("decode manifest response: %w", err)
	}

	return manifest, nil
}

// GetAllRefs implements [RemoteStore]. It GETs /resource/{key} and decodes
// the historical ref listing.
func (h *httpRemoteStore) GetAllRefs(ctx context.Context, key models.ResourceKey) ([]models.RefEntry, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get("/resource/" + key.String())
	if err != nil {
		return nil, fmt.Errorf("%w: get refs %s: %w", ErrConnectionRefused, key, err)
	}
	if err = h.mapError(resp); err != nil {
		return nil, fmt.Errorf("get refs %s: %w", key, err)
	}

	var entries []models.RefEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode refs response: %w", err)
	}

	return entries, nil
}

// ResolveContent implements [RemoteStore]. It GETs /resource/{key}/{ref} and
// returns the stored content of that historical version.
func (h *httpRemoteStore) ResolveContent(ctx context.Context, key models.ResourceKey, ref string) (*string, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get("/resource/" + key.String() + "/" + url.PathEscape(ref))
	if err != nil {
		return nil, fmt.Errorf("%w: resolve %s@%s: %w", ErrConnectionRefused, key, ref, err)
	}
	if err = h.mapError(resp); err != nil {
		return nil, fmt.Errorf("resolve %s@%s: %w", key, ref, err)
	}

	if resp.StatusCode() == http.StatusNoContent {
		return nil, nil
	}

	content := string(resp.Body())
	return &content, nil
}

// Delete implements [RemoteStore].
func (h *httpRemoteStore) Delete(ctx context.Context, key models.ResourceKey) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete("/resource/" + key.String())
	if err != nil {
		return fmt.Errorf("%w: delete %s: %w", ErrConnectionRefused, key, err)
	}

	if err = h.mapError(resp); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Clear implements [RemoteStore].
func (h *httpRemoteStore) Clear(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete("/resource")
	if err != nil {
		return fmt.Errorf("%w: clear: %w", ErrConnectionRefused, err)
	}

	if err = h.mapError(resp); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) (*resty.Request, error) {
	bearer, err := h.provider.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire auth token: %w", err)
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+bearer), nil
}

// mapError maps the response status to the package sentinels. A 401
// additionally invalidates the token provider so the driver can prompt
// re-authentication.
func (h *httpRemoteStore) mapError(resp *resty.Response) error {
	err := mapHTTPError(resp)
	if errors.Is(err, ErrUnauthorized) {
		h.logger.Warn().Str("func", "httpRemoteStore.mapError").Msg("store rejected auth token")
		h.provider.Invalidate()
	}
	return err
}
