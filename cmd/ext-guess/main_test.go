package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/mimeguess/internal/testutil"
	"github.com/meigma/mimeguess/lut"
)

func TestRunGuess(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags([]string{"/path/to/file.gif", "notes.XML", "README"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))
	assert.Equal(t, "guessing from path: /path/to/file.gif\n"+
		"  mime: image/gif\n"+
		"guessing from path: notes.XML\n"+
		"  mime: application/xml\n"+
		"  mime: text/xml\n"+
		"unable to guess mime type from path: README\n", out.String())
}

func TestRunReverse(t *testing.T) {
	t.Parallel()

	cfg, err := parseFlags([]string{"-reverse", "image/jpeg", "x-unknown/none"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))
	assert.Equal(t, "extensions for image/jpeg:\n"+
		"  ext: jpe\n"+
		"  ext: jpeg\n"+
		"  ext: jpg\n"+
		"extensions for x-unknown/none:\n"+
		"  (none)\n", out.String())
}

func TestRunWithArtifact(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.lut")
	d, err := lut.SaveFile(path, testutil.MustBuild(t, testutil.Records()), lut.EncodeWithCompression(lut.CompressionZstd))
	require.NoError(t, err)

	cfg, err := parseFlags([]string{"-table", path, "-digest", d.String(), "a.exe", "b.html"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))
	assert.Contains(t, out.String(), "  mime: application/x-msdownload\n")
	assert.Contains(t, out.String(), "unable to guess mime type from path: b.html\n")

	cfg, err = parseFlags([]string{"-table", path, "-digest", "sha256:" + string(bytes.Repeat([]byte("0"), 64)), "a.exe"})
	require.NoError(t, err)
	require.ErrorIs(t, run(cfg, &bytes.Buffer{}), lut.ErrDigestMismatch)

	cfg, err = parseFlags([]string{"-table", path, "-digest", "bogus"})
	require.NoError(t, err)
	require.Error(t, run(cfg, &bytes.Buffer{}))
}

func TestParseFlagsErrors(t *testing.T) {
	t.Parallel()

	_, err := parseFlags([]string{"-digest", "sha256:abc"})
	require.Error(t, err)

	_, err = parseFlags([]string{"-bogus"})
	require.Error(t, err)
}
