package llrb

import "testing"

func TestNodeColor(t *testing.T) {
	var nilnd *llrbnode[int, int]
	if isred(nilnd) {
		t.Errorf("nil node cannot be red")
	} else if !nilnd.isblack() {
		t.Errorf("nil node must be black")
	} else if x := size(nilnd); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}

	nd := &llrbnode[int, int]{key: 10, n: 1}
	if !isred(nd) {
		t.Errorf("expected red node")
	}
	if nd.setblack(); isred(nd) {
		t.Errorf("expected black node")
	}
	if nd.togglelink(); !isred(nd) {
		t.Errorf("expected red node")
	}
	if nd.setblack().togglelink().togglelink(); !nd.isblack() {
		t.Errorf("expected black node")
	}
}

func TestNodeSize(t *testing.T) {
	left := &llrbnode[int, int]{key: 1, n: 1}
	right := &llrbnode[int, int]{key: 3, n: 1}
	nd := &llrbnode[int, int]{key: 2, left: left, right: right}
	if x := nd.updatesize().n; x != 3 {
		t.Errorf("expected %v, got %v", 3, x)
	} else if x := height(nd); x != 2 {
		t.Errorf("expected %v, got %v", 2, x)
	}
}

func TestRotations(t *testing.T) {
	llrb := NewLLRB[int, int]("rotations", nil)
	defer llrb.Destroy()

	// 2 with a red right child 3.
	right := &llrbnode[int, int]{key: 3, n: 1}
	nd := &llrbnode[int, int]{key: 2, n: 2, black: true, right: right}
	nd = llrb.rotateleft(nd)
	if nd.key != 3 || nd.left.key != 2 {
		t.Fatalf("unexpected %v %v", nd.repr(), nd.left.repr())
	} else if !nd.isblack() || !isred(nd.left) {
		t.Errorf("unexpected colors %v %v", nd.repr(), nd.left.repr())
	} else if nd.n != 2 || nd.left.n != 1 {
		t.Errorf("unexpected sizes %v %v", nd.n, nd.left.n)
	}

	nd = llrb.rotateright(nd)
	if nd.key != 2 || nd.right.key != 3 || !isred(nd.right) {
		t.Fatalf("unexpected %v %v", nd.repr(), nd.right.repr())
	}

	// rotating a black link is a programming error.
	nd.right.setblack()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	llrb.rotateleft(nd)
}

func TestFlip(t *testing.T) {
	llrb := NewLLRB[int, int]("flip", nil)
	defer llrb.Destroy()

	nd := &llrbnode[int, int]{
		key: 2, n: 3, black: true,
		left:  &llrbnode[int, int]{key: 1, n: 1},
		right: &llrbnode[int, int]{key: 3, n: 1},
	}
	llrb.flip(nd)
	if isred(nd.left) || isred(nd.right) || !isred(nd) {
		t.Errorf("unexpected colors after flip")
	}
	if x := llrb.Stats()["n_flips"].(int64); x != 1 {
		t.Errorf("expected %v, got %v", 1, x)
	}
}

func TestDotEscape(t *testing.T) {
	ids := map[string]string{
		"a":      `"a"`,
		`q"t`:    `"q\"t"`,
		`b\`:     `"b\\"`,
		"l1\nl2": `"l1\nl2"`,
	}
	for key, ref := range ids {
		if s := dotid(key); s != ref {
			t.Errorf("expected %v, got %v", ref, s)
		}
	}

	labels := map[string]string{
		"a":   `a`,
		`a|b`: `a\|b`,
		`{x}`: `\{x\}`,
		`<p>`: `\<p\>`,
		`q"t`: `q\"t`,
	}
	for key, ref := range labels {
		if s := dotlabel(key); s != ref {
			t.Errorf("expected %v, got %v", ref, s)
		}
	}
}
