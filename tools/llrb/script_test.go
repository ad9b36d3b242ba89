package main

import "bytes"
import "strings"
import "testing"

import "github.com/bnclabs/llrbmap/llrb"
import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

var scenario = `
# insert, then query order statistics.
set S 0
set E 1
set X 2
set A 3
set R 4
set C 5
set H 6
set M 7
count
min
max
floor J
ceiling J
select 5
rank R
delmin
count
min
delmax
count
max
delete S
get S
set R 40
validate
`

func TestParseScript(t *testing.T) {
	stmts, err := parsescript([]byte(scenario))
	require.NoError(t, err)
	require.Equal(t, 25, len(stmts))

	assert.Equal(t, statement{cmd: "set", args: []string{"S", "0"}}, stmts[0])
	assert.Equal(t, statement{cmd: "count", args: []string{}}, stmts[8])
	assert.Equal(t, statement{cmd: "floor", args: []string{"J"}}, stmts[11])
	assert.Equal(t, statement{cmd: "select", args: []string{"5"}}, stmts[13])
	assert.Equal(t, "set R 40", stmts[23].String())
}

func TestParseScriptErrors(t *testing.T) {
	testcases := []string{
		"set A",
		"get",
		"select A",
		"min A",
		"insert A 1",
		"delmin now",
	}
	for _, tcase := range testcases {
		_, err := parsescript([]byte("count\n" + tcase))
		if assert.Error(t, err, tcase) {
			assert.True(t, strings.HasPrefix(err.Error(), "line 2:"), err.Error())
		}
	}
}

func TestExecuteScript(t *testing.T) {
	stmts, err := parsescript([]byte(scenario))
	require.NoError(t, err)

	tree := llrb.NewLLRB[string, string]("script", nil)
	defer tree.Destroy()

	out := bytes.NewBuffer(nil)
	require.NoError(t, execute(tree, stmts, out))

	expected := []string{
		"inserted", "inserted", "inserted", "inserted",
		"inserted", "inserted", "inserted", "inserted",
		"8", "A 3", "X 2", "H 6", "M 7", "R 4", "5",
		"A 3", "7", "C 5",
		"X 2", "6", "S 0",
		"S 0", "S: index.keymissing",
		"updated 4",
		"ok",
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, expected, lines)
	assert.Equal(t, int64(5), tree.Count())
}
