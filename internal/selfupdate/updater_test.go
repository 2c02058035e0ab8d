package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	byPlatform := map[string]string{
		"linux/amd64":   "alp_Linux_x86_64.tar.gz",
		"linux/arm64":   "alp_Linux_arm64.tar.gz",
		"linux/386":     "alp_Linux_i386.tar.gz",
		"windows/amd64": "alp_Windows_x86_64.zip",
		"windows/arm64": "alp_Windows_arm64.zip",
		"windows/386":   "alp_Windows_i386.zip",
	}
	for platform, want := range byPlatform {
		t.Run(platform, func(t *testing.T) {
			goos, goarch, _ := strings.Cut(platform, "/")
			got, err := assetNameFor(goos, goarch)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("darwin is universal", func(t *testing.T) {
		for _, goarch := range []string{"amd64", "arm64"} {
			got, err := assetNameFor("darwin", goarch)
			require.NoError(t, err)
			assert.Equal(t, "alp_Darwin_all.tar.gz", got)
		}
	})

	t.Run("unsupported os", func(t *testing.T) {
		_, err := assetNameFor("plan9", "amd64")
		assert.ErrorContains(t, err, "operating system")
	})

	t.Run("unsupported arch", func(t *testing.T) {
		_, err := assetNameFor("linux", "riscv64")
		assert.ErrorContains(t, err, "architecture")
	})
}

func TestParseChecksums(t *testing.T) {
	t.Run("release file", func(t *testing.T) {
		sums := parseChecksums([]byte(
			"3c1bb0cd5d67dddc02fae50bf56d3a3a4cbc7204ed1c151ec4b2f76ab8a1cdfe  alp_Linux_x86_64.tar.gz\n" +
				"91dbe03c1b9df62c2d12f6b52bd0c026c277f914d8145e91fbe0becdb6410c7a  alp_Darwin_all.tar.gz\n"))
		assert.Equal(t, map[string]string{
			"alp_Linux_x86_64.tar.gz": "3c1bb0cd5d67dddc02fae50bf56d3a3a4cbc7204ed1c151ec4b2f76ab8a1cdfe",
			"alp_Darwin_all.tar.gz":   "91dbe03c1b9df62c2d12f6b52bd0c026c277f914d8145e91fbe0becdb6410c7a",
		}, sums)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, parseChecksums(nil))
	})

	t.Run("only two-field lines count", func(t *testing.T) {
		sums := parseChecksums([]byte("orphanhash\n\n   \naaaa  good.tar.gz\none two three four\n"))
		assert.Equal(t, map[string]string{"good.tar.gz": "aaaa"}, sums)
	})
}

func TestVerifyChecksum(t *testing.T) {
	payload := []byte("alp archive bytes")
	sum := sha256.Sum256(payload)

	assert.NoError(t, verifyChecksum(payload, hex.EncodeToString(sum[:])))

	err := verifyChecksum(payload, strings.Repeat("f", 64))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	binary := []byte("#!/bin/sh\necho alp")

	t.Run("tar.gz asset", func(t *testing.T) {
		got, err := extractBinary(tarGzArchive(t, "alp", binary), "alp_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("zip asset", func(t *testing.T) {
		got, err := extractBinary(zipArchive(t, "alp.exe", binary), "alp_Windows_x86_64.zip")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("binary missing from archive", func(t *testing.T) {
		_, err := extractBinary(tarGzArchive(t, "README.md", binary), "alp_Linux_x86_64.tar.gz")
		assert.ErrorContains(t, err, "not found")
	})
}

func TestApplyUpdate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "alp")
	require.NoError(t, os.WriteFile(target, []byte("previous release"), 0o755))

	replacement := []byte("next release")
	sum := sha256.Sum256(replacement)
	require.NoError(t, applyUpdate(replacement, target, sum[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestUpdate(t *testing.T) {
	asset, err := assetName()
	require.NoError(t, err)

	binary := []byte("alp release build")
	archive := tarGzArchive(t, "alp", binary)
	if strings.HasSuffix(asset, ".zip") {
		archive = zipArchive(t, "alp.exe", binary)
	}
	checksums := []byte(fmt.Sprintf("%s  %s\n", sha256Hex(archive), asset))

	t.Run("full run replaces the binary", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "alp")
		require.NoError(t, os.WriteFile(execPath, []byte("previous release"), 0o755))

		srv := releaseServer(t, "v2.0.0", map[string][]byte{
			asset:           archive,
			"checksums.txt": checksums,
		})

		checker := NewChecker(
			WithBaseURL(srv.URL),
			WithDownloadBaseURL(srv.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("dev build refuses", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already on latest", func(t *testing.T) {
		srv := releaseServer(t, "v1.0.0", nil)
		err := NewChecker(WithBaseURL(srv.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("local build ahead of latest", func(t *testing.T) {
		srv := releaseServer(t, "v1.0.0", nil)
		err := NewChecker(WithBaseURL(srv.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.1.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("corrupted download", func(t *testing.T) {
		bad := []byte(fmt.Sprintf("%s  %s\n", strings.Repeat("0", 64), asset))
		srv := releaseServer(t, "v2.0.0", map[string][]byte{
			asset:           archive,
			"checksums.txt": bad,
		})
		err := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("release missing our asset", func(t *testing.T) {
		srv := releaseServer(t, "v2.0.0", map[string][]byte{"checksums.txt": checksums})
		err := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorContains(t, err, "download archive")
	})
}

// releaseServer fakes the two GitHub endpoints the updater touches: the
// latest-release lookup and the asset downloads for that release.
func releaseServer(t *testing.T, tag string, files map[string][]byte) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/Yashshokeen-11/ALP/releases/latest", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://github.com/Yashshokeen-11/ALP/releases/tag/%s"}`, tag, tag)
	})
	prefix := fmt.Sprintf("/Yashshokeen-11/ALP/releases/download/%s/", tag)
	mux.HandleFunc(prefix, func(w http.ResponseWriter, r *http.Request) {
		body, ok := files[strings.TrimPrefix(r.URL.Path, prefix)]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(body)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func tarGzArchive(t *testing.T, member string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     member,
		Typeflag: tar.TypeReg,
		Size:     int64(len(content)),
		Mode:     0o755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func zipArchive(t *testing.T, member string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create(member)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
