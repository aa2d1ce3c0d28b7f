// Package manifest loads YAML batch manifests: a list of conversion
// jobs run sequentially by the batch subcommand.
package manifest

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is a batch of conversion jobs.
type Manifest struct {
	// Jobs are executed in order; the first failing job aborts the
	// batch (each job keeps the per-run all-or-nothing contract).
	Jobs []Job `yaml:"jobs"`
}

// Job describes one conversion.
type Job struct {
	// Input is the path of the HepMC ASCII listing. Required.
	Input string `yaml:"input"`

	// Output is the LHE file path. Optional; derived from Input when
	// empty.
	Output string `yaml:"output,omitempty"`

	// BeamE1 and BeamE2 are the beam energies [GeV]. Required, positive.
	BeamE1 float64 `yaml:"beam_e1"`
	BeamE2 float64 `yaml:"beam_e2"`

	// Xsec optionally overrides the cross-section side file lookup.
	Xsec string `yaml:"xsec,omitempty"`
}

// Load reads and validates a manifest file. Unknown fields are
// rejected so a typo cannot silently drop a setting.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Jobs) == 0 {
		return fmt.Errorf("no jobs defined")
	}
	for i, job := range m.Jobs {
		if job.Input == "" {
			return fmt.Errorf("job %d: input is required", i+1)
		}
		if job.BeamE1 <= 0 || job.BeamE2 <= 0 {
			return fmt.Errorf("job %d: beam energies must be positive, got %v and %v", i+1, job.BeamE1, job.BeamE2)
		}
	}
	return nil
}
