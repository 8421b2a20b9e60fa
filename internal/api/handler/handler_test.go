package handler

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/medgm/analytics-api/internal/api/handler/router"
	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/pkg/log"
	"github.com/stretchr/testify/require"
)

var march = domain.Period{Month: 3, Year: 2024}

func serve(t *testing.T, routes []router.Route, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	log.SetupTestLogger()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, httptest.NewRequest(method, target, reader))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
