package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// latestStub serves the latest-release endpoint with a fixed body and
// status, so malformed responses can be fed to Check.
func latestStub(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/Yashshokeen-11/ALP/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name          string
		current       string
		tag           string
		wantAvailable bool
		wantLatest    string
	}{
		{"newer release", "v1.0.0", "v1.2.0", true, "v1.2.0"},
		{"same release", "v1.2.0", "v1.2.0", false, "v1.2.0"},
		{"older release", "v1.3.0", "v1.2.0", false, "v1.2.0"},
		{"unprefixed tag normalized", "v1.0.0", "1.2.0", true, "v1.2.0"},
		{"non-semver tags compared literally", "nightly-01", "nightly-02", true, "nightly-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := latestStub(t,
				`{"tag_name":"`+tt.tag+`","html_url":"https://example.com/rel"}`,
				http.StatusOK)

			checker := NewChecker(WithBaseURL(server.URL))
			result, err := checker.Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)

			assert.Equal(t, tt.wantAvailable, result.UpdateAvailable)
			assert.Equal(t, tt.wantLatest, result.LatestVersion)
			assert.Equal(t, "https://example.com/rel", result.ReleaseURL)
		})
	}
}

func TestCheck_ServerError(t *testing.T) {
	server := latestStub(t, "oops", http.StatusInternalServerError)

	checker := NewChecker(WithBaseURL(server.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestCheck_EmptyTag(t *testing.T) {
	server := latestStub(t, `{"tag_name":"","html_url":""}`, http.StatusOK)

	checker := NewChecker(WithBaseURL(server.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tag name")
}

func TestCanonicalTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v1.2.3", "v1.2.3"},
		{"1.2.3", "v1.2.3"},
		{" v1.2.3 ", "v1.2.3"},
		{"nightly", "nightly"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, canonicalTag(tt.in), "input %q", tt.in)
	}
}
