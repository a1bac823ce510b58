package tree

import "iter"

// All returns an iterator over root and every node reachable from it, in
// pre-order: each node is yielded before its children, and child subtrees
// are visited in insertion order. The order is fixed and observable;
// callers may rely on it.
func All(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		stack := []Node{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			children := n.Children()
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}
	}
}
