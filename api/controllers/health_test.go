package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(_ context.Context) error { return s.err }

func TestHealthReportsDatabaseState(t *testing.T) {
	w := httptest.NewRecorder()
	Health(stubPinger{})(w, httptest.NewRequest("GET", "/api/health", nil))

	require.Equal(t, 200, w.Code)
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "OK", envelope.Data["status"])
	assert.Equal(t, "ok", envelope.Data["database"])

	w = httptest.NewRecorder()
	Health(stubPinger{err: errors.New("down")})(w, httptest.NewRequest("GET", "/api/health", nil))
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "unreachable", envelope.Data["database"])
}

func TestHealthWithoutDatabase(t *testing.T) {
	w := httptest.NewRecorder()
	Health(nil)(w, httptest.NewRequest("GET", "/api/health", nil))

	require.Equal(t, 200, w.Code)
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "OK", envelope.Data["status"])
	assert.NotContains(t, envelope.Data, "database")
}

func TestRootBanner(t *testing.T) {
	w := httptest.NewRecorder()
	Root()(w, httptest.NewRequest("GET", "/", nil))

	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "MarketConnect API is running")
	assert.Contains(t, w.Body.String(), "/api/product-groups")
}
