package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Evet\n", true},
		{"yes", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got, err := confirm(strings.NewReader(tt.input), &out, "? ")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Equal(t, "? ", out.String())
	}
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	err := cmd.Execute()
	return out.String(), err
}

func useFileStorage(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("STORAGE_BACKEND", "file")
	t.Setenv("DATA_DIR", dir)
	t.Setenv("AI_PROVIDER", "groq")
	return dir
}

func TestExportThenImportRoundTrip(t *testing.T) {
	useFileStorage(t)
	outDir := t.TempDir()

	out, err := runCLI(t, "", "export", "--dir", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved")

	files, err := filepath.Glob(filepath.Join(outDir, "*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	out, err = runCLI(t, "n\n", "import", files[0])
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")

	out, err = runCLI(t, "", "import", "--yes", files[0])
	require.NoError(t, err)
	assert.Contains(t, out, "Data replaced")
}

func TestImportRejectsInvalidBackup(t *testing.T) {
	useFileStorage(t)
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"students": []}`), 0o644))

	_, err := runCLI(t, "", "import", "--yes", path)
	assert.Error(t, err)
}

func TestSetPinAndReset(t *testing.T) {
	useFileStorage(t)

	_, err := runCLI(t, "1234\n4321\n", "set-pin")
	assert.EqualError(t, err, "pins do not match")

	out, err := runCLI(t, "1234\n1234\n", "set-pin")
	require.NoError(t, err)
	assert.Contains(t, out, "PIN updated")

	out, err = runCLI(t, "", "reset-pin")
	require.NoError(t, err)
	assert.Contains(t, out, "PIN removed")
}

func TestRestoreAutoWithoutBackup(t *testing.T) {
	useFileStorage(t)

	_, err := runCLI(t, "", "restore-auto", "--yes")
	assert.EqualError(t, err, "auto backup not found")
}

func TestMigrateRequiresPostgres(t *testing.T) {
	useFileStorage(t)

	_, err := runCLI(t, "", "migrate")
	assert.Error(t, err)
}
