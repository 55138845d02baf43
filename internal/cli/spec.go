package cli

import (
	"regexp"
	"strconv"

	"github.com/matzehuels/qrlabels/pkg/errors"
)

// specPattern matches "count[xrepeat][@scale]", e.g. "5x3@1.5".
var specPattern = regexp.MustCompile(`^\s*(\d+)(?:x(\d+))?(?:@(\d+(?:\.\d+)?))?\s*$`)

// spec is a parsed SPEC argument. Zero fields were not given.
type spec struct {
	count  int
	repeat int
	scale  float64
}

// parseSpec parses a SPEC argument of the form count[xrepeat][@scale].
func parseSpec(s string) (spec, error) {
	m := specPattern.FindStringSubmatch(s)
	if m == nil {
		return spec{}, errors.New(errors.ErrCodeInvalidSpec,
			"invalid spec %q: expected count[xrepeat][@scale], e.g. 5x3@1.5", s)
	}

	var sp spec
	var err error
	if sp.count, err = strconv.Atoi(m[1]); err != nil {
		return spec{}, errors.Wrap(errors.ErrCodeInvalidSpec, err, "invalid count in spec %q", s)
	}
	if m[2] != "" {
		if sp.repeat, err = strconv.Atoi(m[2]); err != nil {
			return spec{}, errors.Wrap(errors.ErrCodeInvalidSpec, err, "invalid repeat in spec %q", s)
		}
	}
	if m[3] != "" {
		if sp.scale, err = strconv.ParseFloat(m[3], 64); err != nil {
			return spec{}, errors.Wrap(errors.ErrCodeInvalidSpec, err, "invalid scale in spec %q", s)
		}
	}

	if sp.count < 1 {
		return spec{}, errors.New(errors.ErrCodeInvalidSpec, "invalid spec %q: count must be >= 1", s)
	}
	if m[2] != "" && sp.repeat < 1 {
		return spec{}, errors.New(errors.ErrCodeInvalidSpec, "invalid spec %q: repeat must be >= 1", s)
	}
	if m[3] != "" && sp.scale <= 0 {
		return spec{}, errors.New(errors.ErrCodeInvalidSpec, "invalid spec %q: scale must be > 0", s)
	}
	return sp, nil
}

// hasRepeat and hasScale report whether the optional parts were given.
func (s spec) hasRepeat() bool { return s.repeat > 0 }
func (s spec) hasScale() bool  { return s.scale > 0 }
