package connectivity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for unrecognized names.
var ErrUnknownMode = errors.New("connectivity: unknown mode")

// Mode selects how vertex connectivity is decided.
type Mode int

const (
	// ModeApprox uses the necessary conditions δ ≥ k and connectedness.
	// It may report k-connected for graphs that are not (false positives)
	// but never the reverse.
	ModeApprox Mode = iota

	// ModeExact decides k-connectivity exactly with vertex-disjoint path
	// counting (Menger) on a vertex-split unit-capacity flow network.
	ModeExact

	// ModeExhaustive removes every (k−1)-subset of vertices and checks the
	// remainder by BFS. Exact, but combinatorial: only sensible for small
	// graphs (roughly n ≤ 50 and small k).
	ModeExhaustive
)

var modeNames = [...]string{
	ModeApprox:     "approx",
	ModeExact:      "exact",
	ModeExhaustive: "exhaustive",
}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// Exact reports whether m never produces false positives.
func (m Mode) Exact() bool { return m == ModeExact || m == ModeExhaustive }

// ParseMode maps a name ("approx", "approximate", "exact", "exhaustive";
// case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approx", "approximate", "":
		return ModeApprox, nil
	case "exact", "menger":
		return ModeExact, nil
	case "exhaustive", "brute-force":
		return ModeExhaustive, nil
	}

	return ModeApprox, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(modeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so modes can be read
// from JSON and YAML documents by name.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}
