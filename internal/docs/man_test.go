package docs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenMan(t *testing.T) {
	date := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	header := &GenManHeader{
		Section: "1",
		Date:    &date,
		Source:  "Snipgen",
		Manual:  "Snipgen Manual",
	}

	var buf bytes.Buffer
	require.NoError(t, GenMan(testCommand(), header, &buf))
	out := buf.String()

	assert.Contains(t, out, ".TH")
	assert.Contains(t, out, "SNIPGEN")
	assert.Contains(t, out, "SH NAME")
	assert.Contains(t, out, "Generate code sample artifacts")
	assert.Contains(t, out, "SH SYNOPSIS")
	assert.Contains(t, out, "SH DESCRIPTION")
	assert.Contains(t, out, "SH COMMANDS")
	assert.Contains(t, out, "SH OPTIONS")
	assert.Contains(t, out, "SH EXAMPLES")
}

func TestGenMan_NilHeaderDefaults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GenMan(testCommand(), nil, &buf))
	assert.Contains(t, buf.String(), "SNIPGEN")
}

func TestGenManTree(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, GenManTree(testCommand(), dir))

	for _, name := range []string{"snipgen.1", "snipgen-version.1"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}
