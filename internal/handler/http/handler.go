// SPDX-License-Identifier: Apache-2.0

// Package http implements the HTTP transport layer of the reference store.
// It provides middleware, route handlers, and request/response utilities for
// the REST API. Authentication, logging, and tracing concerns are all handled
// at this layer before requests are forwarded to the service layer.
package http

import (
	"github.com/MKhiriev/go-settings-sync/internal/logger"
	"github.com/MKhiriev/go-settings-sync/internal/service"
)

type Handler struct {
	resources service.ResourceService
	authToken string

	logger *logger.Logger
}

// NewHandler creates the HTTP handler for the reference store. authToken is
// the shared bearer token every request must present.
func NewHandler(resources service.ResourceService, authToken string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		resources: resources,
		authToken: authToken,
		logger:    logger,
	}
}
