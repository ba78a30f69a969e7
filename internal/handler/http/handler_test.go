// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/mock"
	"github.com/MKhiriev/go-settings-sync/internal/store"
	"github.com/MKhiriev/go-settings-sync/models"
)

const testAuthToken = "test-token"

func newTestServer(t *testing.T, ctrl *gomock.Controller) (*httptest.Server, *mock.MockResourceService) {
	t.Helper()

	resources := mock.NewMockResourceService(ctrl)
	handler := NewHandler(resources, testAuthToken, logger.Nop())

	srv := httptest.NewServer(handler.Init())
	t.Cleanup(srv.Close)

	return srv, resources
}

func doRequest(t *testing.T, method, url, body string, headers map[string]string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)

	req.Header.Set("Authorization", "Bearer "+testAuthToken)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestHandler_Auth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, _ := newTestServer(t, ctrl)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic"},
		{name: "empty token", header: "Bearer "},
		{name: "wrong token", header: "Bearer not-the-token"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, srv.URL+"/manifest", nil)
			require.NoError(t, err)
			if test.header != "" {
				req.Header.Set("Authorization", test.header)
			}

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

// ── GET /resource/{key}/latest ───────────────────────────────────────────────

func TestHandler_Latest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, resources := newTestServer(t, ctrl)

	resources.EXPECT().Latest(gomock.Any(), models.ResourceSettings).
		Return(&models.ResourceVersion{Key: models.ResourceSettings, Ref: "ref-1", Content: `{"a":1}`}, nil)

	resp := doRequest(t, http.MethodGet, srv.URL+"/resource/settings/latest", "", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ref-1", resp.Header.Get("Etag"))
	assert.Equal(t, `{"a":1}`, readBody(t, resp))
}

func TestHandler_Latest_NeverWritten(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, resources := newTestServer(t, ctrl)

	resources.EXPECT().Latest(gomock.Any(), models.ResourceSettings).Return(nil, nil)

	resp := doRequest(t, http.MethodGet, srv.URL+"/resource/settings/latest", "", nil)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, models.NoneRef, resp.Header.Get("Etag"))
}

func TestHandler_Latest_NotModified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, resources := newTestServer(t, ctrl)

	resources.EXPECT().Latest(gomock.Any(), models.ResourceSettings).
		Return(&models.ResourceVersion{Key: models.ResourceSettings, Ref: "ref-1", Content: `{"a":1}`}, nil)

	resp := doRequest(t, http.MethodGet, srv.URL+"/resource/settings/latest", "",
		map[string]string{"If-None-Match": "ref-1"})

	assert.Equal(t, http.StatusNotModified, resp.StatusCode)
	assert.Equal(t, "ref-1", resp.Header.Get("Etag"))
	assert.Empty(t, readBody(t, resp))
}

func TestHandler_Latest_UnknownKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, _ := newTestServer(t, ctrl)

	resp := doRequest(t, http.MethodGet, srv.URL+"/resource/themes/latest", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ── POST /resource/{key} ─────────────────────────────────────────────────────

func TestHandler_Write(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, resources := newTestServer(t, ctrl)

	resources.EXPECT().Write(gomock.Any(), models.ResourceSettings, `{"a":2}`, "ref-1").
		Return(models.ResourceVersion{Key: models.ResourceSettings, Ref: "ref-2", Content: `{"a":2}`}, nil)

	resp := doRequest(t, http.MethodPost, srv.URL+"/resource/settings", `{"a":2}`,
		map[string]string{"If-Match": "ref-1"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ref-2", resp.Header.Get("Etag"))
}

func TestHandler_Write_WithoutPrecondition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, resources := newTestServer(t, ctrl)

	resources.EXPECT().Write(gomock.Any(), models.ResourceSettings, "content", "").
		Return(models.ResourceVersion{Key: models.ResourceSettings, Ref: "ref-1", Content: "content"}, nil)

	resp := doRequest(t, http.MethodPost, srv.URL+"/resource/settings", "content", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ref-1", resp.Header.Get("Etag"))
}

func TestHandler_Write_StaleRef(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, resources := newTestServer(t, ctrl)

	resources.EXPECT().Write(gomock.Any(), models.ResourceSettings, "content", "stale").
		Return(models.ResourceVersion{}, store.ErrRefMismatch)

	resp := doRequest(t, http.MethodPost, srv.URL+"/resource/settings", "content",
		map[string]string{"If-Match": "stale"})

	assert.Equal(t, http.StatusPreconditionFailed, resp.StatusCode)
}

func TestHandler_Write_PayloadTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, _ := newTestServer(t, ctrl)

	oversized := strings.Repeat("x", maxResourceBytes+1)
	resp := doRequest(t, http.MethodPost, srv.URL+"/resource/settings", oversized, nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

// ── history / delete ─────────────────────────────────────────────────────────

func TestHandler_ListRefs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, resources := newTestServer(t, ctrl)

	resources.EXPECT().ListRefs(gomock.Any(), models.ResourceSettings).Return([]models.RefEntry{
		{URL: "/resource/settings/ref-2", Created: 200},
		{URL: "/resource/settings/ref-1", Created: 100},
	}, nil)

	resp := doRequest(t, http.MethodGet, srv.URL+"/resource/settings", "", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var entries []models.RefEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "/resource/settings/ref-2", entries[0].URL)
}

func TestHandler_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, resources := newTestServer(t, ctrl)

	resources.EXPECT().GetByRef(gomock.Any(), models.ResourceSettings, "ref-1").
		Return(&models.ResourceVersion{Key: models.ResourceSettings, Ref: "ref-1", Content: "historical"}, nil)

	resp := doRequest(t, http.MethodGet, srv.URL+"/resource/settings/ref-1", "", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ref-1", resp.Header.Get("Etag"))
	assert.Equal(t, "historical", readBody(t, resp))
}

func TestHandler_Resolve_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, resources := newTestServer(t, ctrl)

	resources.EXPECT().GetByRef(gomock.Any(), models.ResourceSettings, "missing").
		Return(nil, store.ErrVersionNotFound)

	resp := doRequest(t, http.MethodGet, srv.URL+"/resource/settings/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_DeleteKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, resources := newTestServer(t, ctrl)

	resources.EXPECT().DeleteKey(gomock.Any(), models.ResourceSettings).Return(nil)

	resp := doRequest(t, http.MethodDelete, srv.URL+"/resource/settings", "", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHandler_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, resources := newTestServer(t, ctrl)

	resources.EXPECT().Clear(gomock.Any()).Return(nil)

	resp := doRequest(t, http.MethodDelete, srv.URL+"/resource", "", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// ── GET /manifest ────────────────────────────────────────────────────────────

func TestHandler_Manifest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, resources := newTestServer(t, ctrl)

	resources.EXPECT().Manifest(gomock.Any()).Return(models.Manifest{
		Latest:  map[models.ResourceKey]string{models.ResourceSettings: "ref-7"},
		Session: "session-1",
	}, nil)

	resp := doRequest(t, http.MethodGet, srv.URL+"/manifest", "", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var manifest models.Manifest
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&manifest))
	assert.Equal(t, "ref-7", manifest.Latest[models.ResourceSettings])
	assert.Equal(t, "session-1", manifest.Session)
}

func TestHandler_TraceIDEchoed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv, resources := newTestServer(t, ctrl)

	resources.EXPECT().Manifest(gomock.Any()).Return(models.Manifest{}, nil)

	resp := doRequest(t, http.MethodGet, srv.URL+"/manifest", "",
		map[string]string{"X-Trace-ID": "trace-42"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = getTokenFromAuthHeader("Bearer")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Bearer ")
	assert.ErrorIs(t, err, ErrEmptyToken)
}
