package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sternrassler/pagewindow/pkg/pagination"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd("test")
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRangeCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"first page", []string{"range", "--total", "10"}, "[1] 2 3 4 5 ... 10\n"},
		{"middle page", []string{"range", "--total", "10", "--page", "5"}, "1 ... 4 [5] 6 ... 10\n"},
		{"clamped page", []string{"range", "--total", "10", "--page", "50"}, "1 ... 6 7 8 9 [10]\n"},
		{"no boundaries", []string{"range", "--total", "10", "--page", "5", "--boundaries", "0"}, "... 4 [5] 6 ...\n"},
		{"small total", []string{"range", "--total", "3", "--page", "2"}, "1 [2] 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRangeCmd_JSON(t *testing.T) {
	out, err := run(t, "range", "--total", "10", "--json")
	require.NoError(t, err)

	var state pagination.State
	require.NoError(t, json.Unmarshal([]byte(out), &state))
	assert.Equal(t, 1, state.Active)
	assert.Equal(t, pagination.Range(1, 1, 10, 1), state.Range)
	assert.Contains(t, out, `"dots"`)
}

func TestRangeCmd_RejectsArgs(t *testing.T) {
	_, err := run(t, "range", "extra")
	assert.Error(t, err)
}

func TestWalkCmd(t *testing.T) {
	out, err := run(t, "walk", "--total", "10", "next", "next", "last", "prev", "4", "first", "prev")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	want := []string{
		"start  [1] 2 3 4 5 ... 10",
		"next   1 [2] 3 4 5 ... 10",
		"next   1 2 [3] 4 5 ... 10",
		"last   1 ... 6 7 8 9 [10]",
		"prev   1 ... 6 7 8 [9] 10",
		"4      1 2 3 [4] 5 ... 10",
		"first  [1] 2 3 4 5 ... 10",
		"prev   [1] 2 3 4 5 ... 10",
	}
	assert.Equal(t, want, lines)
}

func TestWalkCmd_InvalidStep(t *testing.T) {
	_, err := run(t, "walk", "--total", "10", "next", "sideways")
	assert.ErrorIs(t, err, ErrInvalidStep)

	_, err = run(t, "walk", "--total", "10", "set")
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestWalkCmd_RequiresSteps(t *testing.T) {
	_, err := run(t, "walk", "--total", "10")
	assert.Error(t, err)
}

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps([]string{"next", "7", "-2", "last"})
	require.NoError(t, err)
	assert.Equal(t, []step{
		{op: pagination.OpNext},
		{op: pagination.OpSet, page: 7},
		{op: pagination.OpSet, page: -2},
		{op: pagination.OpLast},
	}, steps)
}

func TestFormatRange(t *testing.T) {
	state := pagination.New(pagination.DefaultConfig(6, 12)).Snapshot()
	assert.Equal(t, "1 ... 5 [6] 7 ... 12", formatRange(state))
}
