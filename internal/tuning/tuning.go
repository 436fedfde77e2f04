// Package tuning loads the bonus-formula coefficients used to prioritize
// IMPROBABLE-adjacent probe candidates (spec.md's open question: "the
// improbable bonuses ... are heuristics, not theorems"). Configuration is
// HuJSON (JSON with comments), the same format calvinalkan/agent-task
// uses for its own config files, so the divisors can be tuned and
// annotated in place without a schema migration.
package tuning

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// Config holds the tunable coefficients for the mark_improbable bonus
// formulas (spec.md 4.3.1 step 5):
//
//	uq bonus = -(N - popcount(p))/ImprobableUpDivisor - 1
//	dq bonus = -popcount(p)/ImprobableDownDivisor - 1
type Config struct {
	ImprobableUpDivisor   int `json:"improbableUpDivisor"`
	ImprobableDownDivisor int `json:"improbableDownDivisor"`
}

// Default reproduces the verbatim formulas from spec.md (divisor 2 for
// both queues).
func Default() Config {
	return Config{ImprobableUpDivisor: 2, ImprobableDownDivisor: 2}
}

// Load reads and parses a HuJSON tuning file at path. A missing file is
// not an error: Load silently returns Default(), since tuning is an
// optional knob, not a required ambient concern (mirroring
// dijkstra.DefaultOptions's "absence is the common case").
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("tuning: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes HuJSON tuning data, falling back to Default() for any
// field left unset (zero in the decoded JSON).
func Parse(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("tuning: invalid HuJSON: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("tuning: invalid JSON: %w", err)
	}
	if cfg.ImprobableUpDivisor == 0 {
		cfg.ImprobableUpDivisor = Default().ImprobableUpDivisor
	}
	if cfg.ImprobableDownDivisor == 0 {
		cfg.ImprobableDownDivisor = Default().ImprobableDownDivisor
	}
	return cfg, nil
}
