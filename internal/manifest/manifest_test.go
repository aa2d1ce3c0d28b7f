package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadValidManifest(t *testing.T) {
	path := writeManifest(t, `
jobs:
  - input: run1/events.hepmc
    beam_e1: 2510.0
    beam_e2: 2510.0
    output: run1.lhe
    xsec: run1/xsec.out
  - input: run2/events.hepmc
    beam_e1: 6800.0
    beam_e2: 2560.0
`)
	m, err := Load(path)
	require.NoError(t, err)
	require.Len(t, m.Jobs, 2)

	assert.Equal(t, "run1/events.hepmc", m.Jobs[0].Input)
	assert.Equal(t, "run1.lhe", m.Jobs[0].Output)
	assert.Equal(t, "run1/xsec.out", m.Jobs[0].Xsec)
	assert.Equal(t, 2510.0, m.Jobs[0].BeamE1)

	assert.Empty(t, m.Jobs[1].Output, "output is optional")
	assert.Equal(t, 6800.0, m.Jobs[1].BeamE1)
	assert.Equal(t, 2560.0, m.Jobs[1].BeamE2)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeManifest(t, `
jobs:
  - input: events.hepmc
    beam_e1: 2510.0
    beam_e2: 2510.0
    beam_energy: 13600.0
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "beam_energy")
}

func TestLoadRejectsInvalidJobs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no jobs",
			content: "jobs: []\n",
			wantErr: "no jobs",
		},
		{
			name: "missing input",
			content: `
jobs:
  - beam_e1: 2510.0
    beam_e2: 2510.0
`,
			wantErr: "input is required",
		},
		{
			name: "nonpositive beam energy",
			content: `
jobs:
  - input: events.hepmc
    beam_e1: 0
    beam_e2: 2510.0
`,
			wantErr: "must be positive",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeManifest(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}
