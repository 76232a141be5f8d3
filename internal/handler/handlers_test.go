// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns empty services. http.NewHandler only stores the
// pointer, so nothing is called at construction time.
func newTestServices() *service.Services {
	return &service.Services{}
}

func TestNewHandlers_HTTP(t *testing.T) {
	h, err := NewHandlers(newTestServices(), *config.Defaults(), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	cfg := *config.Defaults()
	cfg.Server.HTTPAddress = ""

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_InvalidPagination(t *testing.T) {
	cfg := *config.Defaults()
	cfg.Pagination.DefaultPageSize = 500

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.Error(t, err)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	h1, err1 := NewHandlers(newTestServices(), *config.Defaults(), logger.Nop())
	h2, err2 := NewHandlers(newTestServices(), *config.Defaults(), logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
