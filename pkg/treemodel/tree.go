package treemodel

// Operator identifies the comparison a split node uses against its
// threshold. XGBoost only ever produces less-than splits; the type exists
// so the builder API names its intent rather than encoding it implicitly.
type Operator uint8

// OpLT is the only split operator XGBoost emits: the left child is taken
// when the feature value is less than the threshold.
const OpLT Operator = iota

// Node is one node in the recursive, contiguously-indexed tree layout.
// Internal nodes carry a split; leaves carry a value. Both carry the
// hessian sum accumulated during training.
type Node struct {
	IsLeaf bool

	// LeafValue is the prediction contribution of a leaf node.
	LeafValue float32

	// SplitFeature, SplitThreshold, DefaultLeft, and Op describe an
	// internal node's split. Unused on leaves.
	SplitFeature   int32
	SplitThreshold float32
	DefaultLeft    bool
	Op             Operator

	// Gain is the split's loss reduction. Unused on leaves.
	Gain float32

	// SumHess is the accumulated second-order gradient (hessian) at this
	// node, recorded on both leaves and internal nodes.
	SumHess float64

	// Left and Right are node indices into the owning Tree's Nodes slice,
	// or -1 on a leaf.
	Left, Right int32
}

// Tree is one decision tree in the recursive, child-allocation layout: node
// ids are dense, assigned in the breadth-first order the reshape visits
// them, starting at 0 for the root.
type Tree struct {
	Nodes []Node
}

// Init allocates the root node and returns its id (always 0).
func (t *Tree) Init() int32 {
	t.Nodes = append(t.Nodes, Node{Left: -1, Right: -1})

	return 0
}

// AddChilds allocates two new leaf-shaped nodes as children of id and
// returns their ids. Callers follow with SetLeaf or SetNumericalSplit on
// each new id to give them their actual content.
func (t *Tree) AddChilds(id int32) (left, right int32) {
	left = int32(len(t.Nodes))
	t.Nodes = append(t.Nodes, Node{Left: -1, Right: -1})
	right = int32(len(t.Nodes))
	t.Nodes = append(t.Nodes, Node{Left: -1, Right: -1})

	t.Nodes[id].Left = left
	t.Nodes[id].Right = right

	return left, right
}

// SetLeaf marks id as a leaf with the given value.
func (t *Tree) SetLeaf(id int32, value float32) {
	t.Nodes[id].IsLeaf = true
	t.Nodes[id].LeafValue = value
}

// SetNumericalSplit configures id as an internal node splitting on
// feature against threshold, taking the left child when the comparison
// defined by op holds (and missing values route left when defaultLeft).
func (t *Tree) SetNumericalSplit(id, feature int32, threshold float32, defaultLeft bool, op Operator) {
	n := &t.Nodes[id]
	n.SplitFeature = feature
	n.SplitThreshold = threshold
	n.DefaultLeft = defaultLeft
	n.Op = op
}

// SetGain records the split gain for id.
func (t *Tree) SetGain(id int32, gain float32) {
	t.Nodes[id].Gain = gain
}

// SetSumHess records the accumulated hessian for id.
func (t *Tree) SetSumHess(id int32, hess float64) {
	t.Nodes[id].SumHess = hess
}

// LeftChildID returns the id of id's left child, or -1 on a leaf.
func (t *Tree) LeftChildID(id int32) int32 { return t.Nodes[id].Left }

// RightChildID returns the id of id's right child, or -1 on a leaf.
func (t *Tree) RightChildID(id int32) int32 { return t.Nodes[id].Right }
