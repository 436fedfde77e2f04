// Package cli implements the line-oriented stdin/stdout driver described
// in spec.md section 6.1: one command per line, bit strings of length N
// on the follow-up line for the three labeling commands.
//
// The driver owns the "running" set of outstanding next_u/next_d
// suggestions. That set is deliberately external to decision.Store (spec
// section 6.1: "not part of the core contract but the core must not
// filter suggestions by it").
package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"

	"github.com/katalvlaran/latticewalk/decision"
	"github.com/katalvlaran/latticewalk/internal/tuning"
	"github.com/katalvlaran/latticewalk/point"
)

// Logger is the facade internal/cli and binding both log through. Either
// package may be driven with any logiface.Logger[*stumpy.Event], so tests
// can inject one writing to a buffer instead of stderr.
type Logger = logiface.Logger[*stumpy.Event]

// NewLogger builds the default stumpy-backed logger, writing to w at the
// given minimum level.
func NewLogger(w io.Writer, level logiface.Level) *Logger {
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(w)),
		stumpy.L.WithLevel(level),
	)
}

// ParseLevel maps the --log-level flag's accepted keywords (the syslog
// names logiface.Level.String uses, plus the "warn"/"err" shorthands
// common on the command line) onto a logiface.Level. An empty string
// resolves to logiface.LevelInformational, the driver's default verbosity.
func ParseLevel(s string) (logiface.Level, error) {
	switch s {
	case "":
		return logiface.LevelInformational, nil
	case "disabled":
		return logiface.LevelDisabled, nil
	case "emerg", "emergency":
		return logiface.LevelEmergency, nil
	case "alert":
		return logiface.LevelAlert, nil
	case "crit", "critical":
		return logiface.LevelCritical, nil
	case "err", "error":
		return logiface.LevelError, nil
	case "warn", "warning":
		return logiface.LevelWarning, nil
	case "notice":
		return logiface.LevelNotice, nil
	case "info", "informational":
		return logiface.LevelInformational, nil
	case "debug":
		return logiface.LevelDebug, nil
	case "trace":
		return logiface.LevelTrace, nil
	default:
		return 0, fmt.Errorf("cli: unrecognized --log-level %q", s)
	}
}

// Driver runs the spec section 6.1 command loop against a decision.Store.
type Driver struct {
	n       uint
	store   *decision.Store
	log     *Logger
	out     *bufio.Writer
	running map[string]point.Point
}

// New constructs a Driver for a session of dimension n, tuned by cfg, and
// logging through log.
func New(n uint, cfg tuning.Config, log *Logger, out io.Writer) *Driver {
	return &Driver{
		n:       n,
		store:   decision.New(cfg),
		log:     log,
		out:     bufio.NewWriter(out),
		running: make(map[string]point.Point),
	}
}

// Run reads commands from in until EOF, writing responses to the
// Driver's output writer. It stops and returns the error of the first
// labeling command the store rejects (a contradiction or a dimension
// mismatch), or the first I/O error encountered reading the input, or nil
// on a clean EOF.
func (d *Driver) Run(in io.Reader) error {
	defer d.out.Flush()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if err := d.dispatch(line, scanner); err != nil {
			return err
		}
		d.out.Flush()
	}
	return scanner.Err()
}

func (d *Driver) dispatch(line string, scanner *bufio.Scanner) error {
	switch line {
	case "true":
		return d.label(scanner, "true", d.store.MarkTrue)
	case "false":
		return d.label(scanner, "false", d.store.MarkFalse)
	case "improbable":
		return d.label(scanner, "improbable", d.store.MarkImprobable)
	case "summary":
		d.summary()
	case "list true":
		d.list(d.store.US().Elements())
	case "list suprema":
		d.list(d.store.Suprema())
	case "list improbable":
		d.list(d.store.Improbable())
	case "list infima":
		d.list(d.store.Infima())
	case "list false":
		d.list(d.store.DS().Elements())
	case "list running":
		d.list(mapValues(d.running))
	case "next u":
		d.next(d.store.NextU)
	case "next d":
		d.next(d.store.NextD)
	case "cancelled":
		d.cancelled()
	case "finalize":
		d.store.CheckAll()
		fmt.Fprintln(d.out)
	default:
		d.log.Err().Str("line", line).Log("unrecognized command")
	}
	return nil
}

func (d *Driver) label(scanner *bufio.Scanner, cmd string, mark func(point.Point) (bool, error)) error {
	if !scanner.Scan() {
		return scanner.Err()
	}
	raw := scanner.Text()
	p := point.Parse(raw, d.n)
	delete(d.running, p.Key())

	changed, err := mark(p)
	if err != nil {
		d.log.Err().Str("cmd", cmd).Str("point", raw).Err(err).Log("contradiction")
		return err
	}

	d.log.Debug().Str("cmd", cmd).Str("point", raw).Bool("changed", changed).Log("label applied")
	if changed {
		fmt.Fprintln(d.out, 1)
	} else {
		fmt.Fprintln(d.out, 0)
	}
	return nil
}

func (d *Driver) summary() {
	us := d.store.US()
	ds := d.store.DS()
	usHier, _ := us.BestHier()
	dsHier, _ := ds.BestHier()

	for _, v := range []int{
		us.Len(),
		len(d.store.Suprema()),
		len(d.store.Improbable()),
		len(d.store.Infima()),
		ds.Len(),
		len(d.running),
		usHier,
		dsHier,
	} {
		fmt.Fprintln(d.out, v)
	}
}

func (d *Driver) list(pts []point.Point) {
	for _, p := range pts {
		fmt.Fprintln(d.out, p.String())
	}
	fmt.Fprintln(d.out)
}

func (d *Driver) next(fn func() point.Point) {
	var e point.Point
	for {
		e = fn()
		if !e.Valid() {
			break
		}
		if _, seen := d.running[e.Key()]; !seen {
			d.running[e.Key()] = e
			break
		}
	}
	if e.Valid() {
		fmt.Fprintln(d.out, e.String())
	} else {
		fmt.Fprintln(d.out)
	}
}

// cancelled emits, and removes from running, every outstanding
// suggestion that has since become decided by some other path.
func (d *Driver) cancelled() {
	for key, p := range d.running {
		if d.store.IsDecided(p) {
			delete(d.running, key)
			fmt.Fprintln(d.out, p.String())
		}
	}
	fmt.Fprintln(d.out)
}

func mapValues(m map[string]point.Point) []point.Point {
	out := make([]point.Point, 0, len(m))
	for _, p := range m {
		out = append(out, p)
	}
	return out
}
