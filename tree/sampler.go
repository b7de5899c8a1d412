package tree

import (
	"math/rand"

	"github.com/katalvlaran/genep/ops"
)

// Location addresses one node slot inside a tree: the root field or one
// entry of a parent's Children. Writing through it replaces the whole
// subtree at that position.
//
// A Location names a position as of its selection: after the tree is next
// edited it may point into a detached subtree. Node is safe to call while
// other goroutines edit the tree.
type Location[V ops.Number] struct {
	tree  *Tree[V]
	slot  *Node[V]
	level int
}

// Node returns the node currently at the location, read under the tree's lock.
func (l Location[V]) Node() Node[V] {
	l.tree.mu.RLock()
	defer l.tree.mu.RUnlock()

	return *l.slot
}

// Level returns the distance from the root (0 for the root itself).
func (l Location[V]) Level() int { return l.level }

// IsRoot reports whether the location is the tree's root.
func (l Location[V]) IsRoot() bool { return l.level == 0 }

// SelectAnywhere runs the depth-biased walk on t using rng.
//
// With D = t.Depth(): if D == 0 the root is returned without any draw.
// Otherwise, at every step stop with probability 1/D; if not stopping,
// descend into a uniformly chosen child of an Operation, or stop anyway on a
// terminal. 1/D is never recomputed during the walk.
func (t *Tree[V]) SelectAnywhere(rng *rand.Rand) Location[V] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return selectWalk(t, rng)
}

// SelectUniform picks one node uniformly over all nodes of t.
func (t *Tree[V]) SelectUniform(rng *rand.Rand) Location[V] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return selectUniform(t, rng)
}

// selectWalk is SelectAnywhere without locking.
func selectWalk[V ops.Number](t *Tree[V], rng *rand.Rand) Location[V] {
	loc := Location[V]{tree: t, slot: &t.root}

	d := Depth(t.root)
	if d == 0 {
		return loc
	}
	stop := 1.0 / float64(d)

	for {
		if rng.Float64() < stop {
			return loc
		}
		op, ok := (*loc.slot).(*Operation[V])
		if !ok || len(op.Children) == 0 {
			return loc
		}
		loc = Location[V]{tree: t, slot: &op.Children[rng.Intn(len(op.Children))], level: loc.level + 1}
	}
}

// selectUniform is SelectUniform without locking.
func selectUniform[V ops.Number](t *Tree[V], rng *rand.Rand) Location[V] {
	var all []Location[V]

	var collect func(slot *Node[V], level int)
	collect = func(slot *Node[V], level int) {
		all = append(all, Location[V]{tree: t, slot: slot, level: level})
		if op, ok := (*slot).(*Operation[V]); ok {
			for i := range op.Children {
				collect(&op.Children[i], level+1)
			}
		}
	}
	collect(&t.root, 0)

	return all[rng.Intn(len(all))]
}

// locate picks a location with the configured law. Caller holds b.mu and t's lock.
func (b *Builder[V]) locate(t *Tree[V]) Location[V] {
	if b.cfg.selection == SelectUniform {
		return selectUniform(t, b.cfg.rng)
	}

	return selectWalk(t, b.cfg.rng)
}
