package llrb

import "fmt"
import "io"
import "strings"

type llrbnode[K, V any] struct {
	key   K
	value V
	n     int64 // number of nodes in this subtree, including self.
	black bool  // color of the link from parent.
	left  *llrbnode[K, V]
	right *llrbnode[K, V]
}

func (nd *llrbnode[K, V]) isblack() bool {
	return nd == nil || nd.black
}

func (nd *llrbnode[K, V]) setblack() *llrbnode[K, V] {
	nd.black = true
	return nd
}

func (nd *llrbnode[K, V]) setred() *llrbnode[K, V] {
	nd.black = false
	return nd
}

func (nd *llrbnode[K, V]) togglelink() *llrbnode[K, V] {
	nd.black = !nd.black
	return nd
}

func (nd *llrbnode[K, V]) updatesize() *llrbnode[K, V] {
	nd.n = size(nd.left) + size(nd.right) + 1
	return nd
}

func isred[K, V any](nd *llrbnode[K, V]) bool {
	return nd != nil && !nd.black
}

func size[K, V any](nd *llrbnode[K, V]) int64 {
	if nd == nil {
		return 0
	}
	return nd.n
}

//---- maintanence methods.

func (nd *llrbnode[K, V]) repr() string {
	return fmt.Sprintf("%v %v %v", nd.key, nd.n, nd.black)
}

func (nd *llrbnode[K, V]) dotdump(buffer io.Writer) {
	if nd == nil {
		return
	}

	whatcolor := func(childnd *llrbnode[K, V]) string {
		if isred(childnd) {
			return "red"
		}
		return "black"
	}

	key := dotid(fmt.Sprint(nd.key))
	label := dotlabel(fmt.Sprint(nd.key))
	lines := []string{
		fmt.Sprintf("  %s [label=\"{%s|%v}\"];\n", key, label, nd.n),
	}
	fmsg := "  %s -> %s [color=%v];\n"
	if nd.left != nil {
		lkey := dotid(fmt.Sprint(nd.left.key))
		lines = append(lines, fmt.Sprintf(fmsg, key, lkey, whatcolor(nd.left)))
	}
	if nd.right != nil {
		rkey := dotid(fmt.Sprint(nd.right.key))
		lines = append(lines, fmt.Sprintf(fmsg, key, rkey, whatcolor(nd.right)))
	}
	buffer.Write([]byte(strings.Join(lines, "")))
	nd.left.dotdump(buffer)
	nd.right.dotdump(buffer)
}

var dotidreplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// quoted graphviz identifier.
func dotid(s string) string {
	return `"` + dotidreplacer.Replace(s) + `"`
}

var dotlabelreplacer = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, "\n", `\n`,
	`|`, `\|`, `{`, `\{`, `}`, `\}`, `<`, `\<`, `>`, `\>`,
)

// field text inside a record label, to be placed within a quoted
// label attribute.
func dotlabel(s string) string {
	return dotlabelreplacer.Replace(s)
}
