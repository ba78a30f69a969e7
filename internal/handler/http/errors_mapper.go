// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-settings-sync/internal/store"
)

var errorStatusMap = map[error]int{
	store.ErrRefMismatch:     http.StatusPreconditionFailed,
	store.ErrVersionNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
