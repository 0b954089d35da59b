package integration_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/metinatakli/cinema-seat-reservation/internal/events"
	"github.com/stretchr/testify/require"
)

var (
	keysToIgnore     = []string{"timestamp", "requestId", "createdAt"}
	ignoreOccurredAt = cmpopts.IgnoreFields(events.Event{}, "OccurredAt")
)

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

// compareResponse compares the JSON body against expectedResponse at any
// depth, skipping keysToIgnore and the extra keys given.
func compareResponse(t *testing.T, body io.Reader, expectedResponse string, ignore ...string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	ignored := append(slices.Clone(keysToIgnore), ignore...)
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		return slices.Contains(ignored, k)
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func decodeBody[T any](t testing.TB, res *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&v))

	return v
}
