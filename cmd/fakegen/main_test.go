package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fakegen "github.com/roggervalf/fake-gen"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "number with max",
			args: []string{"-kind", "number", "-max", "100", "-seed", "100"},
			want: "54\n",
		},
		{
			name: "number defaults",
			args: []string{"-seed", "42", "-n", "3"},
			want: "37454\n79654\n95071\n",
		},
		{
			name: "float keeps its default precision",
			args: []string{"-kind", "float", "-max", "10", "-seed", "42"},
			want: "3.74\n",
		},
		{
			name: "alpha",
			args: []string{"-kind", "alpha", "-count", "5", "-seed", "42"},
			want: "juyet\n",
		},
		{
			name: "hex",
			args: []string{"-kind", "hex", "-count", "4", "-seed", "42"},
			want: "0x5cf2\n",
		},
		{
			name: "uuid",
			args: []string{"-kind", "uuid", "-seed", "42", "-n", "2"},
			want: "5cf2bc99-2721-407d-992b-a00fbdf302f2\n94980604-8962-404f-9371-c9368f970d9a\n",
		},
		{
			name: "unique alphanumeric",
			args: []string{"-kind", "alphanumeric", "-count", "2", "-seed", "9", "-n", "3", "-unique"},
			want: "0d\nih\nh0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(tt.args, &stdout, &stderr)
			require.NoError(t, err, stderr.String())
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestRun_Element(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-kind", "element", "-items", "red,green,blue", "-n", "20", "-seed", "3"}, &stdout, &stderr)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 20)
	for _, l := range lines {
		assert.Contains(t, []string{"red", "green", "blue"}, l)
	}
}

func TestRun_UniqueExhausted(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-kind", "element", "-items", "only", "-n", "2", "-unique", "-max-time", "1m", "-seed", "1"}, &stdout, &stderr)
	require.ErrorIs(t, err, fakegen.ErrExceededMaxRetries)
	assert.Contains(t, err.Error(), "value 2")
	assert.Equal(t, "only\n", stdout.String())
	assert.Contains(t, stderr.String(), "unique values exhausted")
}

func TestRun_TimeSeedIsLogged(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-kind", "boolean"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "using time based seed")
	assert.Contains(t, []string{"true\n", "false\n"}, stdout.String())
}

func TestRun_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"-kind", "vin"}, &stdout, &stderr)
	assert.ErrorIs(t, err, errUnknownKind)

	err = run([]string{"-log-level", "loud"}, &stdout, &stderr)
	assert.ErrorContains(t, err, "parse log level")

	err = run([]string{"-nope"}, &stdout, &stderr)
	assert.Error(t, err)

	t.Setenv("FAKEGEN_MAX_RETRIES", "many")
	err = run(nil, &stdout, &stderr)
	assert.ErrorContains(t, err, "parse env:")
}
