package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upc-hep/upc2lhe/internal/runlog"
)

const testListing = `E 1 0 1
U GEV MM
P 1 0 11 0 0 4 5 3.0 1
E 2 0 1
U GEV MM
P 1 0 -11 0 0 -4 5 3.0 1
END_EVENT_LISTING
`

func writeListing(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "events.hepmc")
	require.NoError(t, os.WriteFile(path, []byte(testListing), 0644))
	return path
}

func execute(args ...string) (string, error) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootWrongArgumentCount(t *testing.T) {
	out, err := execute("events.hepmc")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Usage:", "wrong argument count must print usage")
}

func TestRootInvalidBeamEnergy(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"non numeric", []string{"events.hepmc", "abc", "2510"}},
		{"zero", []string{"events.hepmc", "2510", "0"}},
		{"negative", []string{"--", "events.hepmc", "-2510", "2510"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitFailure, GetExitCode(err))
			assert.Contains(t, err.Error(), "energy")
		})
	}
}

func TestRootConvertSuccess(t *testing.T) {
	dir := t.TempDir()
	input := writeListing(t, dir)
	output := filepath.Join(dir, "out.lhe")

	out, err := execute(input, "2510", "2510", "-o", output)
	require.NoError(t, err)
	assert.Contains(t, out, "2 events written in "+output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<LesHouchesEvents version="3.0">`)
	assert.Contains(t, string(data), "</LesHouchesEvents>")
}

func TestRootConvertFailureExitCode(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(filepath.Join(dir, "missing.hepmc"), "2510", "2510",
		"-o", filepath.Join(dir, "out.lhe"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "conversion failed")
}

func TestRootRecordsRunLog(t *testing.T) {
	dir := t.TempDir()
	input := writeListing(t, dir)
	output := filepath.Join(dir, "out.lhe")
	db := filepath.Join(dir, "runs.db")

	_, err := execute(input, "2510", "2510", "-o", output, "--runlog", db)
	require.NoError(t, err)

	st, err := runlog.Open(db)
	require.NoError(t, err)
	defer st.Close()

	n, err := st.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
