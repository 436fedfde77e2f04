// Package binding exposes the decision engine to a goja.Runtime as a
// flat functional API mirroring spec.md section 6.2: the same verbs as
// the CLI driver, operating on bit strings rather than parsed points,
// plus a fixed-length numeric summary tuple.
//
// It replaces the original program's Emscripten bindings: where that
// program linked a C++ tri_set directly into a browser's JS engine, this
// package embeds an interpreted JS runtime (goja) alongside a
// decision.Store and wires the same verbs onto it.
package binding

import (
	"fmt"

	"github.com/dop251/goja"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"

	"github.com/katalvlaran/latticewalk/decision"
	"github.com/katalvlaran/latticewalk/internal/tuning"
	"github.com/katalvlaran/latticewalk/point"
)

// Logger is the facade this package logs through.
type Logger = logiface.Logger[*stumpy.Event]

// Module is a single binding instance: one decision.Store, one
// dimension, and the running set of outstanding suggestions, all bound
// to one goja.Runtime.
type Module struct {
	runtime *goja.Runtime
	store   *decision.Store
	log     *Logger
	n       uint
	running map[string]point.Point
}

// New creates a Module bound to runtime, with session dimension n and
// optional tuning config. New panics if runtime is nil, or if n is 0,
// both programming errors (invariant violations), matching the
// goja-protojson package's own panic-on-nil-runtime convention.
func New(runtime *goja.Runtime, n uint, cfg tuning.Config, opts ...Option) *Module {
	if runtime == nil {
		panic("binding: runtime must not be nil")
	}
	if n == 0 {
		panic("binding: n must be > 0")
	}

	c := resolveOptions(opts)

	return &Module{
		runtime: runtime,
		store:   decision.New(cfg),
		log:     c.log,
		n:       n,
		running: make(map[string]point.Point),
	}
}

// SetupExports wires the module's flat function API onto the given
// exports object. Equivalent to the setup Require performs, for callers
// that configure exports without the require() mechanism.
func (m *Module) SetupExports(exports *goja.Object) {
	_ = exports.Set("mark_true", m.runtime.ToValue(m.jsMark(m.store.MarkTrue, "true")))
	_ = exports.Set("mark_false", m.runtime.ToValue(m.jsMark(m.store.MarkFalse, "false")))
	_ = exports.Set("mark_improbable", m.runtime.ToValue(m.jsMark(m.store.MarkImprobable, "improbable")))
	_ = exports.Set("summary", m.runtime.ToValue(m.jsSummary))
	_ = exports.Set("list_true", m.runtime.ToValue(m.jsList(func() []point.Point { return m.store.US().Elements() })))
	_ = exports.Set("list_suprema", m.runtime.ToValue(m.jsList(m.store.Suprema)))
	_ = exports.Set("list_improbable", m.runtime.ToValue(m.jsList(m.store.Improbable)))
	_ = exports.Set("list_infima", m.runtime.ToValue(m.jsList(m.store.Infima)))
	_ = exports.Set("list_false", m.runtime.ToValue(m.jsList(func() []point.Point { return m.store.DS().Elements() })))
	_ = exports.Set("list_running", m.runtime.ToValue(m.jsList(m.listRunning)))
	_ = exports.Set("next_u", m.runtime.ToValue(m.jsNext(m.store.NextU)))
	_ = exports.Set("next_d", m.runtime.ToValue(m.jsNext(m.store.NextD)))
	_ = exports.Set("cancelled", m.runtime.ToValue(m.jsCancelled))
	_ = exports.Set("finalize", m.runtime.ToValue(m.jsFinalize))
}

// Require returns a goja_nodejs/require.ModuleLoader that registers the
// lattice module, following the same require() registration pattern as
// the rest of this runtime's Go-authored JS bindings.
func Require(n uint, cfg tuning.Config, opts ...Option) func(runtime *goja.Runtime, module *goja.Object) {
	return func(runtime *goja.Runtime, module *goja.Object) {
		m := New(runtime, n, cfg, opts...)
		exports := module.Get("exports").(*goja.Object)
		m.SetupExports(exports)
	}
}

func (m *Module) jsMark(mark func(point.Point) (bool, error), cmd string) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		raw := call.Argument(0).String()
		p := point.Parse(raw, m.n)
		delete(m.running, p.Key())

		changed, err := mark(p)
		if err != nil {
			m.log.Err().Str("cmd", cmd).Str("point", raw).Err(err).Log("contradiction")
			panic(m.runtime.NewTypeError(fmt.Sprintf("%s: %s", cmd, err)))
		}
		m.log.Debug().Str("cmd", cmd).Str("point", raw).Bool("changed", changed).Log("label applied")
		return m.runtime.ToValue(changed)
	}
}

// jsSummary implements summary(): the Emscripten draft's
// vector<size_t> of 8 numbers, carried over as a fixed-length [8]int.
func (m *Module) jsSummary(call goja.FunctionCall) goja.Value {
	us := m.store.US()
	ds := m.store.DS()
	usHier, _ := us.BestHier()
	dsHier, _ := ds.BestHier()

	return m.runtime.ToValue([8]int{
		us.Len(),
		len(m.store.Suprema()),
		len(m.store.Improbable()),
		len(m.store.Infima()),
		ds.Len(),
		len(m.running),
		usHier,
		dsHier,
	})
}

func (m *Module) jsList(fn func() []point.Point) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		pts := fn()
		res := make([]string, len(pts))
		for i, p := range pts {
			res[i] = p.String()
		}
		return m.runtime.ToValue(res)
	}
}

func (m *Module) jsNext(fn func() point.Point) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		e := m.nextFresh(fn)
		if !e.Valid() {
			return m.runtime.ToValue("")
		}
		return m.runtime.ToValue(e.String())
	}
}

func (m *Module) nextFresh(fn func() point.Point) point.Point {
	for {
		e := fn()
		if !e.Valid() {
			return e
		}
		if _, seen := m.running[e.Key()]; !seen {
			m.running[e.Key()] = e
			return e
		}
	}
}

// jsCancelled implements cancelled(): every outstanding suggestion that
// has since become decided, removed from running and returned.
func (m *Module) jsCancelled(call goja.FunctionCall) goja.Value {
	var res []string
	for key, p := range m.running {
		if m.store.IsDecided(p) {
			delete(m.running, key)
			res = append(res, p.String())
		}
	}
	return m.runtime.ToValue(res)
}

func (m *Module) jsFinalize(call goja.FunctionCall) goja.Value {
	m.store.CheckAll()
	return goja.Undefined()
}

func (m *Module) listRunning() []point.Point {
	out := make([]point.Point, 0, len(m.running))
	for _, p := range m.running {
		out = append(out, p)
	}
	return out
}
