package btree

// NodeInfo describes a single node for structural inspection. Node IDs are
// assigned in pre-order, starting at 1; 0 denotes "no node".
type NodeInfo[K, V any] struct {
	ID       int
	Parent   int
	Depth    int // root has depth 0
	Leaf     bool
	Keys     []K
	Values   []V   // leaves only
	Children []int // internal nodes only
	Next     int   // ID of the next leaf in the chain, leaves only
}

type nodeids[K, V any] struct {
	idTable map[node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(n node[K, V]) int {
	if n == nil {
		return 0
	}
	return ids.idTable[n]
}

func (ids *nodeids[K, V]) alloc(n node[K, V]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Visit calls fn for every node of the tree in pre-order. Walking stops
// early if fn returns false. The slices in NodeInfo are copies.
func (t *Tree[K, V]) Visit(fn func(NodeInfo[K, V]) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	ids := newtable[K, V]()
	t.allocIDs(t.root, &ids)
	t.visitNode(t.root, 0, 0, &ids, fn)
}

func (t *Tree[K, V]) allocIDs(n node[K, V], ids *nodeids[K, V]) {
	ids.alloc(n)
	if inner, ok := n.(*innerNode[K, V]); ok {
		for _, child := range inner.children {
			t.allocIDs(child, ids)
		}
	}
}

func (t *Tree[K, V]) visitNode(n node[K, V], parent, depth int, ids *nodeids[K, V], fn func(NodeInfo[K, V]) bool) bool {
	info := NodeInfo[K, V]{
		ID:     ids.find(n),
		Parent: parent,
		Depth:  depth,
		Leaf:   n.isLeaf(),
	}
	switch n := n.(type) {
	case *leafNode[K, V]:
		info.Keys = append([]K(nil), n.keys...)
		info.Values = append([]V(nil), n.values...)
		if n.next != nil {
			info.Next = ids.find(n.next)
		}
		return fn(info)
	case *innerNode[K, V]:
		info.Keys = append([]K(nil), n.keys...)
		info.Children = make([]int, len(n.children))
		for i, child := range n.children {
			info.Children[i] = ids.find(child)
		}
		if !fn(info) {
			return false
		}
		for _, child := range n.children {
			if !t.visitNode(child, info.ID, depth+1, ids, fn) {
				return false
			}
		}
		return true
	default:
		panic("unknown tree node type")
	}
}

// Stats summarizes the shape of a tree.
type Stats struct {
	Height          int
	Pairs           int
	InnerNodes      int
	Leaves          int
	EmptyLeaves     int // leaves emptied by deletion
	UnderfullLeaves int // non-root leaves below half capacity
	// LeafFill is the average fraction of leaf capacity in use.
	LeafFill float64
}

// Stats walks the tree and collects shape statistics.
func (t *Tree[K, V]) Stats() Stats {
	st := Stats{Height: t.Height(), Pairs: t.Len()}
	if t == nil || t.root == nil {
		return st
	}
	used := 0
	t.Visit(func(info NodeInfo[K, V]) bool {
		if !info.Leaf {
			st.InnerNodes++
			return true
		}
		st.Leaves++
		used += len(info.Keys)
		switch {
		case len(info.Keys) == 0:
			st.EmptyLeaves++
		case info.Parent != 0 && len(info.Keys) < minKeys(t.maxKeys):
			st.UnderfullLeaves++
		}
		return true
	})
	st.LeafFill = float64(used) / float64(st.Leaves*t.maxKeys)
	return st
}
