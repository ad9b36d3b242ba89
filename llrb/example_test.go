package llrb_test

import "fmt"

import "github.com/bnclabs/llrbmap/llrb"

func ExampleLLRB() {
	tree := llrb.NewLLRB[string, int]("example", nil)
	defer tree.Destroy()

	for i, key := range []string{"S", "E", "X", "A", "R", "C", "H", "M"} {
		tree.Set(key, i)
	}
	minkey, _, _ := tree.Min()
	maxkey, _, _ := tree.Max()
	fkey, _, _ := tree.Floor("J")
	ckey, _, _ := tree.Ceiling("J")
	skey, _, _ := tree.Select(5)
	fmt.Println(tree.Count(), minkey, maxkey, fkey, ckey, skey, tree.Rank("R"))

	tree.DeleteMin()
	tree.DeleteMax()
	tree.Delete("S")
	_, ok := tree.Get("S")
	fmt.Println(tree.Count(), ok, tree.Validate())
	// Output:
	// 8 A X H M R 5
	// 5 false <nil>
}
