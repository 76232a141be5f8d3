// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/metrics"
	"github.com/MKhiriev/go-blog-api/internal/pagination"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Handler serves the HTTP API on top of the service layer.
type Handler struct {
	services  *service.Services
	paginator *pagination.Paginator

	metrics  metrics.Recorder
	gatherer prometheus.Gatherer

	limiter  *ipRateLimiter
	traceIDs *utils.UUIDGenerator

	cfg config.Server

	logger *logger.Logger
}

// NewHandler builds a Handler with its own metrics registry holding the
// request metrics and the Go runtime and process collectors.
func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handler, error) {
	paginator, err := pagination.New(cfg.Pagination.DefaultPageSize, cfg.Pagination.MaxPageSize, cfg.Server.PublicURL)
	if err != nil {
		return nil, fmt.Errorf("error creating paginator: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		paginator: paginator,
		metrics:   metrics.NewCollector(registry),
		gatherer:  registry,
		limiter:   newIPRateLimiter(cfg.Server.LoginRateLimit, cfg.Server.LoginRateBurst),
		traceIDs:  utils.NewUUIDGenerator(),
		cfg:       cfg.Server,
		logger:    logger,
	}, nil
}
