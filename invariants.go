package tripod

import "fmt"

// Check validates the structural invariants of t: parent links, subtree sizes
// and the balance criterion of every node.
//
// Check is meant for tests and diagnostics; it visits every node.
func (t *Tree[T]) Check(p *Permit[T]) error {
	p.check(t.arena, false)
	if t.root == nilSlot {
		return nil
	}
	a := t.arena
	if up := a.nodes[t.root].up; up != nilSlot {
		return fmt.Errorf("%w: root has parent %d", ErrInvariant, up)
	}
	_, err := t.checkNode(t.root)
	return err
}

func (t *Tree[T]) checkNode(s slot) (size int, err error) {
	if s == nilSlot {
		return 0, nil
	}
	a := t.arena
	if int(s) >= len(a.nodes) || !a.nodes[s].live {
		return 0, fmt.Errorf("%w: link to dead node %d", ErrInvariant, s)
	}
	nd := a.nodes[s]
	if !nd.spare {
		return 0, fmt.Errorf("%w: node %d has its spare handle deployed", ErrInvariant, s)
	}
	for _, c := range [...]slot{nd.left, nd.right} {
		if c != nilSlot && a.nodes[c].up != s {
			return 0, fmt.Errorf("%w: child %d of node %d links to parent %d",
				ErrInvariant, c, s, a.nodes[c].up)
		}
	}
	ls, err := t.checkNode(nd.left)
	if err != nil {
		return 0, err
	}
	rs, err := t.checkNode(nd.right)
	if err != nil {
		return 0, err
	}
	if nd.size != 1+ls+rs {
		return 0, fmt.Errorf("%w: node %d has size %d, children sum up to %d",
			ErrInvariant, s, nd.size, 1+ls+rs)
	}
	if !Balanced(ls, rs) {
		return 0, fmt.Errorf("%w: node %d out of balance (%d | %d)", ErrInvariant, s, ls, rs)
	}
	return nd.size, nil
}
