package convert

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Default cross sections [pb], used when no side file is available.
const (
	DefaultFidXsec = 1.0
	DefaultTotXsec = 3.0
)

// xsecFileName is the side file the generator drops next to its event
// listing.
const xsecFileName = "xsec.out"

// RunContext carries the process-wide numbers of one conversion run. It
// is built once and read-only afterwards.
type RunContext struct {
	// RunID is a UUIDv7 token identifying the run in logs and the run
	// log database.
	RunID string

	// BeamE1 and BeamE2 are the beam energies [GeV] supplied on the
	// command line.
	BeamE1 float64
	BeamE2 float64

	// FidXsec and TotXsec are the fiducial and total cross sections
	// [pb], read from the side file or defaulted.
	FidXsec float64
	TotXsec float64
}

// newRunID returns a fresh UUIDv7 run token.
func newRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// loadCrossSections reads the two-float cross-section side file.
//
// With no override the file is looked up as xsec.out next to the input
// listing, and its absence silently yields the defaults. An explicitly
// requested file must exist, and any file that is present must parse as
// two floats (fiducial then total, in pb).
func loadCrossSections(inputPath, override string) (fid, tot float64, err error) {
	path := override
	if path == "" {
		path = filepath.Join(filepath.Dir(inputPath), xsecFileName)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if override == "" && errors.Is(err, fs.ErrNotExist) {
			return DefaultFidXsec, DefaultTotXsec, nil
		}
		return 0, 0, fmt.Errorf("failed to read cross-section file: %w", err)
	}
	fields := strings.Fields(string(data))
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("cross-section file %s: want two values, got %d", path, len(fields))
	}
	fid, err = strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("cross-section file %s: bad fiducial cross section %q", path, fields[0])
	}
	tot, err = strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("cross-section file %s: bad total cross section %q", path, fields[1])
	}
	return fid, tot, nil
}

// OutputPath derives the default output file name from the input path:
// the input's base name with its extension replaced by .lhe, in the
// current directory.
func OutputPath(input string) string {
	base := filepath.Base(input)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".lhe"
}
