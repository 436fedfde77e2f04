package binding_test

import (
	"bytes"
	"testing"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latticewalk/binding"
	"github.com/katalvlaran/latticewalk/internal/tuning"
)

func newEnv(t *testing.T) *goja.Runtime {
	t.Helper()
	rt := goja.New()
	var logBuf bytes.Buffer
	m := binding.New(rt, 4, tuning.Default(), binding.WithWriter(&logBuf))
	m.SetupExports(rt.GlobalObject())
	return rt
}

func TestMarkTrueFalse(t *testing.T) {
	rt := newEnv(t)

	v, err := rt.RunString(`mark_true("1111")`)
	require.NoError(t, err)
	require.True(t, v.ToBoolean())

	v, err = rt.RunString(`mark_false("0000")`)
	require.NoError(t, err)
	require.True(t, v.ToBoolean())

	v, err = rt.RunString(`mark_true("1111")`)
	require.NoError(t, err)
	require.False(t, v.ToBoolean())
}

func TestSummary(t *testing.T) {
	rt := newEnv(t)

	_, err := rt.RunString(`mark_true("1111"); mark_false("0000");`)
	require.NoError(t, err)

	v, err := rt.RunString(`summary()`)
	require.NoError(t, err)

	var out [8]int
	require.NoError(t, rt.ExportTo(v, &out))
	require.Equal(t, [8]int{1, 0, 0, 0, 1, 0, 4, 0}, out)
}

func TestListTrue(t *testing.T) {
	rt := newEnv(t)

	_, err := rt.RunString(`mark_true("1111")`)
	require.NoError(t, err)

	v, err := rt.RunString(`list_true()`)
	require.NoError(t, err)

	var out []string
	require.NoError(t, rt.ExportTo(v, &out))
	require.Equal(t, []string{"1111"}, out)
}

func TestNextUTracksRunning(t *testing.T) {
	rt := newEnv(t)

	_, err := rt.RunString(`mark_true("1111")`)
	require.NoError(t, err)

	v, err := rt.RunString(`next_u()`)
	require.NoError(t, err)
	first := v.String()

	v, err = rt.RunString(`next_u()`)
	require.NoError(t, err)
	second := v.String()

	require.NotEqual(t, first, second)
}

func TestContradictionPanicsAsJSError(t *testing.T) {
	rt := newEnv(t)

	_, err := rt.RunString(`mark_true("1000")`)
	require.NoError(t, err)

	_, err = rt.RunString(`mark_false("1100")`)
	require.Error(t, err)
}

func TestFinalizeAndCancelled(t *testing.T) {
	rt := newEnv(t)

	_, err := rt.RunString(`next_u(); mark_true("1111"); cancelled(); finalize();`)
	require.NoError(t, err)
}
