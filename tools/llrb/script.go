package main

import "bytes"
import "flag"
import "fmt"
import "io"
import "os"
import "strconv"
import "strings"

import "github.com/bnclabs/llrbmap/api"
import "github.com/bnclabs/llrbmap/llrb"
import parsec "github.com/prataprc/goparsec"

var scriptopts struct {
	file      string
	allocator string
	log       string
}

// statement parsed from a single line of script, like "set key value".
type statement struct {
	cmd  string
	args []string
}

func (stmt statement) String() string {
	return strings.Join(append([]string{stmt.cmd}, stmt.args...), " ")
}

func parseScriptopts(args []string) error {
	f := flag.NewFlagSet("script", flag.ContinueOnError)

	f.StringVar(&scriptopts.file, "f", "",
		"script file, read from stdin if not supplied")
	f.StringVar(&scriptopts.allocator, "allocator", "flist",
		"node allocator, flist or heap")
	f.StringVar(&scriptopts.log, "log", "warn", "log level")
	return f.Parse(args)
}

func doScript(args []string) error {
	if err := parseScriptopts(args); err != nil {
		return err
	}
	setlogging(scriptopts.log)

	var text []byte
	var err error
	if scriptopts.file == "" {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(scriptopts.file)
	}
	if err != nil {
		return err
	}

	stmts, err := parsescript(text)
	if err != nil {
		return err
	}
	tree := llrb.NewLLRB[string, string]("script", treesettings(scriptopts.allocator))
	defer tree.Destroy()
	return execute(tree, stmts, os.Stdout)
}

//---- grammar

var stmtparser = scriptgrammar()

// script grammar, one statement per line:
//
//	set <key> <value> | get <key> | delete <key> | delmin | delmax |
//	min | max | floor <key> | ceiling <key> | select <n> | rank <key> |
//	count | validate
//
// lines starting with '#' are comments.
func scriptgrammar() parsec.Parser {
	word := parsec.Token(`^[^\s#]+`, "WORD")
	number := parsec.Token(`^[0-9]+`, "NUMBER")
	keyword := func(name string) parsec.Parser {
		return parsec.Token(`^`+name+`\b`, strings.ToUpper(name))
	}

	stmt := func(name string, args ...interface{}) parsec.Parser {
		parsers := append([]interface{}{keyword(name)}, args...)
		return parsec.And(nodestatement, parsers...)
	}

	return parsec.OrdChoice(
		onenode,
		stmt("set", word, word),
		stmt("get", word),
		stmt("delete", word),
		stmt("delmin"),
		stmt("delmax"),
		stmt("min"),
		stmt("max"),
		stmt("floor", word),
		stmt("ceiling", word),
		stmt("select", number),
		stmt("rank", word),
		stmt("count"),
		stmt("validate"),
	)
}

func nodestatement(ns []parsec.ParsecNode) parsec.ParsecNode {
	if len(ns) == 0 {
		return nil
	}
	terms := make([]string, 0, len(ns))
	for _, n := range ns {
		term, ok := n.(*parsec.Terminal)
		if !ok {
			return nil
		}
		terms = append(terms, term.Value)
	}
	return statement{cmd: terms[0], args: terms[1:]}
}

func onenode(ns []parsec.ParsecNode) parsec.ParsecNode {
	if len(ns) == 0 {
		return nil
	}
	return ns[0]
}

func parsescript(text []byte) ([]statement, error) {
	stmts := []statement{}
	for i, line := range bytes.Split(text, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		stmt, err := parseline(line)
		if err != nil {
			return nil, fmt.Errorf("line %v: %v", i+1, err)
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func parseline(line []byte) (statement, error) {
	node, s := stmtparser(parsec.NewScanner(line))
	stmt, ok := node.(statement)
	if !ok {
		return statement{}, fmt.Errorf("invalid statement %q", line)
	}
	if _, s = s.SkipWS(); !s.Endof() {
		return statement{}, fmt.Errorf("unexpected text after %q in %q", stmt, line)
	}
	return stmt, nil
}

//---- execution

func execute(tree *llrb.LLRB[string, string], stmts []statement, w io.Writer) error {
	entry := func(key, value string, ok bool) string {
		if !ok {
			return "<none>"
		}
		return key + " " + value
	}
	keyentry := func(key, value string, ok bool) string {
		if !ok {
			return fmt.Sprintf("%v: %v", key, api.ErrorKeyMissing)
		}
		return key + " " + value
	}

	for _, stmt := range stmts {
		var out string
		switch stmt.cmd {
		case "set":
			if old, updated := tree.Set(stmt.args[0], stmt.args[1]); updated {
				out = "updated " + old
			} else {
				out = "inserted"
			}
		case "get":
			value, ok := tree.Get(stmt.args[0])
			out = keyentry(stmt.args[0], value, ok)
		case "delete":
			value, ok := tree.Delete(stmt.args[0])
			out = keyentry(stmt.args[0], value, ok)
		case "delmin":
			out = entry(tree.DeleteMin())
		case "delmax":
			out = entry(tree.DeleteMax())
		case "min":
			out = entry(tree.Min())
		case "max":
			out = entry(tree.Max())
		case "floor":
			out = entry(tree.Floor(stmt.args[0]))
		case "ceiling":
			out = entry(tree.Ceiling(stmt.args[0]))
		case "select":
			k, err := strconv.ParseInt(stmt.args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%v: %v", stmt, err)
			}
			out = entry(tree.Select(k))
		case "rank":
			out = strconv.FormatInt(tree.Rank(stmt.args[0]), 10)
		case "count":
			out = strconv.FormatInt(tree.Count(), 10)
		case "validate":
			if err := tree.Validate(); err != nil {
				return fmt.Errorf("%v: %v", stmt, err)
			}
			out = "ok"
		default:
			return fmt.Errorf("unknown statement %q", stmt)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return nil
}
