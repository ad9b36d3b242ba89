package llrb

import "math"
import "fmt"
import "errors"

// height of the tree cannot exceed a certain limit. For example if the tree
// holds 1-million entries, a fully balanced tree shall have a height of 20
// levels. maxheight provide some breathing space on top of ideal height.
func maxheight(entries int64) float64 {
	if entries < 5 {
		return (3 * (math.Log2(float64(entries)) + 1)) // 3x breathing space.
	}
	return 2 * math.Log2(float64(entries)+1) // 2x breathing space
}

// LLRB rule, from sedgewick's paper.
var redafterred = errors.New("consecutive red spotted")

// LLRB rule, red links lean left.
var rightleaning = errors.New("right leaning red spotted")

// LLRB rule, from sedgewick's paper.
func unbalancedblacks(lblacks, rblacks int64) error {
	return fmt.Errorf("unbalancedblacks {%v,%v}", lblacks, rblacks)
}

func (llrb *LLRB[K, V]) validate(root *llrbnode[K, V]) error {
	if isred(root) {
		return fmt.Errorf("validate(): root %v is red", root.key)
	}

	var maxdepth int64
	_, err := llrb.validatetree(root, false /*fromred*/, 0 /*blck*/, 1 /*dep*/, nil, nil, &maxdepth)
	if err != nil {
		return fmt.Errorf("validate(): %w", err)
	}

	// max height should not exceed certain limit
	if entries := size(root); entries > 8 {
		if float64(maxdepth) > maxheight(entries) {
			fmsg := "validate(): max height %v exceeds log2(%v)"
			return fmt.Errorf(fmsg, maxdepth, entries)
		}
	}
	return llrb.validatestats()
}

// validatetree check every node in the subtree for sort order, within
// the open interval (lo, hi), and for red-black rules. Return the
// number of blacks from nd to its leaves.
func (llrb *LLRB[K, V]) validatetree(
	nd *llrbnode[K, V], fromred bool, blacks, depth int64,
	lo, hi *K, maxdepth *int64) (nblacks int64, err error) {

	if nd == nil {
		return blacks, nil
	}

	if depth > *maxdepth {
		*maxdepth = depth
	}
	if fromred && isred(nd) {
		return 0, redafterred
	} else if isred(nd.right) {
		return 0, rightleaning
	}
	if !isred(nd) {
		blacks++
	}

	if lo != nil && llrb.compare(*lo, nd.key) >= 0 {
		fmsg := "sort order, node %v is <= lower bound %v"
		return 0, fmt.Errorf(fmsg, nd.key, *lo)
	}
	if hi != nil && llrb.compare(nd.key, *hi) >= 0 {
		fmsg := "sort order, node %v is >= upper bound %v"
		return 0, fmt.Errorf(fmsg, nd.key, *hi)
	}
	if n := size(nd.left) + size(nd.right) + 1; n != nd.n {
		return 0, fmt.Errorf("node %v size %v, expected %v", nd.key, nd.n, n)
	}

	key := nd.key
	lblacks, err := llrb.validatetree(
		nd.left, isred(nd), blacks, depth+1, lo, &key, maxdepth)
	if err != nil {
		return 0, err
	}
	rblacks, err := llrb.validatetree(
		nd.right, isred(nd), blacks, depth+1, &key, hi, maxdepth)
	if err != nil {
		return 0, err
	}
	if lblacks != rblacks {
		return 0, unbalancedblacks(lblacks, rblacks)
	}
	return lblacks, nil
}

func (llrb *LLRB[K, V]) validatestats() error {
	// n_count should match (n_inserts - n_deletes)
	n_count := llrb.n_count
	n_inserts, n_deletes := llrb.n_inserts, llrb.n_deletes
	if n_count != (n_inserts - n_deletes) {
		fmsg := "validatestats(): n_count:%v != (n_inserts:%v - n_deletes:%v)"
		return fmt.Errorf(fmsg, n_count, n_inserts, n_deletes)
	}
	// n_count should match the size of tree
	if x := size(llrb.root); n_count != x {
		fmsg := "validatestats(): n_count:%v != root size:%v"
		return fmt.Errorf(fmsg, n_count, x)
	}
	// live nodes should match n_count
	n_nodes, n_frees := llrb.n_nodes, llrb.n_frees
	if (n_nodes - n_frees) != n_count {
		fmsg := "validatestats(): (n_nodes:%v - n_frees:%v) != n_count:%v"
		return fmt.Errorf(fmsg, n_nodes, n_frees, n_count)
	}
	// arena should account for exactly the live nodes
	slabsize := llrb.nodearena.Slabsize()
	if allocated := llrb.nodearena.Allocated(); allocated != n_count*slabsize {
		fmsg := "validatestats(): node.allocated:%v != n_count:%v * %v"
		return fmt.Errorf(fmsg, allocated, n_count, slabsize)
	}
	return nil
}
