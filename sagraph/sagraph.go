// Package sagraph holds the diagram data model and resolves its
// point/connection graph into a rooted forest of tree nodes.
package sagraph

import (
	"fmt"

	"golang.org/x/exp/slices"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/smartart/lib/env"
	"oss.terrastruct.com/smartart/lib/go2"
)

type PointType string

const (
	PointTypeNode              PointType = "node"
	PointTypeDocument          PointType = "doc"
	PointTypeAssistant         PointType = "asst"
	PointTypeParentTransition  PointType = "parTrans"
	PointTypeSiblingTransition PointType = "sibTrans"
	PointTypePresentation      PointType = "pres"
)

type ConnectionType string

const (
	// ConnectionParentOf is the only connection kind that forms tree
	// structure. Source is the child, destination the parent.
	ConnectionParentOf ConnectionType = "parOf"

	ConnectionPresentationOf       ConnectionType = "presOf"
	ConnectionPresentationParentOf ConnectionType = "presParOf"
	ConnectionUnknownRelationship  ConnectionType = "unknownRelationship"
)

// PropertySet carries the subset of point properties the engine reads.
type PropertySet struct {
	StyleLabel string `json:"styleLabel,omitempty"`
}

// ShapeProperties are explicit per-point overrides. They win over
// anything the style resolver computes.
type ShapeProperties struct {
	FillColor      string   `json:"fillColor,omitempty"`
	LineColor      string   `json:"lineColor,omitempty"`
	LineWidth      *float64 `json:"lineWidth,omitempty"`
	PresetGeometry string   `json:"presetGeometry,omitempty"`
	Rotation       *float64 `json:"rotation,omitempty"`
}

// Point is a content node of the diagram data graph, owned by the
// data model and never mutated by the engine.
type Point struct {
	ID              string           `json:"id"`
	Type            PointType        `json:"type"`
	PropertySet     *PropertySet     `json:"propertySet,omitempty"`
	ShapeProperties *ShapeProperties `json:"shapeProperties,omitempty"`
	// Text is the opaque text body, passed through to generated
	// shapes without interpretation.
	Text string `json:"text,omitempty"`
}

// Connection is a directed edge of the data graph. SourceOrder, when
// present, is the insertion index of the child among its siblings.
type Connection struct {
	Type          ConnectionType `json:"type"`
	SourceID      string         `json:"sourceID"`
	DestinationID string         `json:"destinationID"`
	SourceOrder   *int           `json:"sourceOrder,omitempty"`
}

type DataModel struct {
	Points      []*Point      `json:"points"`
	Connections []*Connection `json:"connections"`
}

// TreeNode is a point after parent/child resolution. Built once per
// layout pass and immutable afterward.
type TreeNode struct {
	ID              string
	Type            PointType
	PropertySet     *PropertySet
	ShapeProperties *ShapeProperties
	Text            string

	Parent       *TreeNode `json:"-"`
	Children     []*TreeNode
	Depth        int
	SiblingIndex int
	SiblingCount int
}

// Root walks up to the top of n's tree.
func (n *TreeNode) Root() *TreeNode {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

type TreeResult struct {
	Roots     []*TreeNode
	NodeCount int
	MaxDepth  int
	NodeMap   map[string]*TreeNode
}

// StructuralError reports a defect in the parOf graph that prevents
// tree construction, like a cycle or a blown ceiling.
type StructuralError struct {
	PointID string
	Reason  string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural defect at point %q: %s", e.PointID, e.Reason)
}

const (
	DefaultMaxDepth = 512
	DefaultMaxNodes = 100000
)

// BuildOptions caps the build for callers that need a deadline on
// pathological inputs. Zero values take the defaults.
type BuildOptions struct {
	MaxDepth int
	MaxNodes int
}

type treeBuilder struct {
	points   map[string]*Point
	children map[string][]string
	parent   map[string]string
	visited  map[string]struct{}
	maxDepth int
	maxNodes int

	nodeCount    int
	deepestLevel int
	nodeMap      map[string]*TreeNode
}

// BuildTree resolves the parOf edges of dm into a rooted forest.
// Dangling references are skipped silently; a cyclic parent graph or
// a point reachable through two parents is a StructuralError.
func BuildTree(dm *DataModel, opts *BuildOptions) (_ *TreeResult, err error) {
	defer xdefer.Errorf(&err, "failed to build diagram tree")

	if opts == nil {
		opts = &BuildOptions{}
	}
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if d, has := env.MaxTreeDepth(); has {
		maxDepth = d
	}
	maxNodes := opts.MaxNodes
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}

	b := &treeBuilder{
		points:   make(map[string]*Point, len(dm.Points)),
		children: make(map[string][]string),
		parent:   make(map[string]string),
		visited:  make(map[string]struct{}),
		maxDepth: maxDepth,
		maxNodes: maxNodes,
		nodeMap:  make(map[string]*TreeNode),
	}

	for _, p := range dm.Points {
		if _, ok := b.points[p.ID]; ok {
			// Duplicate IDs keep the first occurrence.
			continue
		}
		b.points[p.ID] = p
	}

	hasParent := make(map[string]struct{})
	for _, c := range dm.Connections {
		if c.Type != ConnectionParentOf {
			continue
		}
		if _, ok := b.points[c.SourceID]; !ok {
			continue
		}
		// The source is somebody's child even when the parent point
		// is dangling. The edge itself only lands in the children
		// arena when both endpoints exist, so a child of a missing
		// parent is unreachable and dropped, not promoted to a root.
		hasParent[c.SourceID] = struct{}{}
		if _, ok := b.points[c.DestinationID]; !ok {
			continue
		}
		if _, ok := b.parent[c.SourceID]; !ok {
			b.parent[c.SourceID] = c.DestinationID
		}
		b.insertChild(c.DestinationID, c.SourceID, c.SourceOrder)
	}

	var rootIDs []string
	for _, p := range dm.Points {
		if b.points[p.ID] != p {
			// Skipped duplicate.
			continue
		}
		if _, ok := hasParent[p.ID]; !ok {
			rootIDs = append(rootIDs, p.ID)
		}
	}
	// doc-typed roots come first; ties keep arrival order.
	slices.SortStableFunc(rootIDs, func(a, c string) bool {
		return b.points[a].Type == PointTypeDocument && b.points[c].Type != PointTypeDocument
	})

	roots := make([]*TreeNode, 0, len(rootIDs))
	for _, id := range rootIDs {
		n, err := b.build(id, 0)
		if err != nil {
			return nil, err
		}
		roots = append(roots, n)
	}
	for i, r := range roots {
		r.SiblingIndex = i
		r.SiblingCount = len(roots)
	}

	// A parOf cycle with no path to any root never enters the build
	// walk above, so sweep the leftovers for loops.
	for _, p := range dm.Points {
		if b.points[p.ID] != p {
			continue
		}
		if _, ok := b.visited[p.ID]; ok {
			continue
		}
		if cid, looped := b.detachedCycle(p.ID); looped {
			return nil, &StructuralError{PointID: cid, Reason: "parent cycle unreachable from any root"}
		}
	}

	return &TreeResult{
		Roots:     roots,
		NodeCount: b.nodeCount,
		MaxDepth:  b.deepestLevel,
		NodeMap:   b.nodeMap,
	}, nil
}

// insertChild places childID at the resolved insertion index.
// A missing order appends; an out-of-range order clamps.
func (b *treeBuilder) insertChild(parentID, childID string, order *int) {
	arr := b.children[parentID]
	i := len(arr)
	if order != nil {
		i = go2.Clamp(*order, 0, len(arr))
	}
	b.children[parentID] = slices.Insert(arr, i, childID)
}

// detachedCycle walks id's parent chain and reports the point where
// the chain revisits itself. A chain that dead-ends at a dangling
// parent is the dropped-lineage case and stays silent.
func (b *treeBuilder) detachedCycle(id string) (string, bool) {
	seen := make(map[string]struct{})
	for {
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
		pid, ok := b.parent[id]
		if !ok {
			return "", false
		}
		id = pid
	}
}

func (b *treeBuilder) build(id string, depth int) (*TreeNode, error) {
	if _, ok := b.visited[id]; ok {
		return nil, &StructuralError{PointID: id, Reason: "point visited twice, parent graph has a cycle or shared child"}
	}
	b.visited[id] = struct{}{}

	if depth > b.maxDepth {
		return nil, &StructuralError{PointID: id, Reason: fmt.Sprintf("tree deeper than %d levels", b.maxDepth)}
	}
	if b.nodeCount >= b.maxNodes {
		return nil, &StructuralError{PointID: id, Reason: fmt.Sprintf("tree larger than %d nodes", b.maxNodes)}
	}

	p := b.points[id]
	n := &TreeNode{
		ID:              p.ID,
		Type:            p.Type,
		PropertySet:     p.PropertySet,
		ShapeProperties: p.ShapeProperties,
		Text:            p.Text,
		Depth:           depth,
	}
	b.nodeCount++
	if depth > b.deepestLevel {
		b.deepestLevel = depth
	}
	b.nodeMap[id] = n

	childIDs := b.children[id]
	for _, cid := range childIDs {
		child, err := b.build(cid, depth+1)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	for i, c := range n.Children {
		c.Parent = n
		c.SiblingIndex = i
		c.SiblingCount = len(n.Children)
	}
	return n, nil
}

// Descendants returns n and every node below it, depth-first.
func (n *TreeNode) Descendants() []*TreeNode {
	out := []*TreeNode{n}
	for _, c := range n.Children {
		out = append(out, c.Descendants()...)
	}
	return out
}
