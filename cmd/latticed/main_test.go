package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunUsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 2, code)
}

func TestRunBadN(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"0"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 2, code)
}

func TestRunScenario1(t *testing.T) {
	var stdout, stderr bytes.Buffer
	in := strings.NewReader("true\n1111\nfalse\n0000\nsummary\n")
	code := run([]string{"4"}, in, &stdout, &stderr)
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	// two label results (1, 1), then the eight summary lines.
	require.Equal(t, []string{"1", "1", "1", "0", "0", "0", "1", "0", "4", "0"}, lines)
}

func TestRunTuningFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--tuning", "/does/not/exist", "4"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code)
}

func TestRunLogLevelFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--log-level", "debug", "4"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, code)
}

func TestRunBadLogLevelFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--log-level", "bogus", "4"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 2, code)
}
