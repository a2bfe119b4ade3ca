package salayouts

// LayoutDefinition is the declarative algorithm tree the shape
// generator walks. It arrives from an external parser; the engine
// only reads it.
type LayoutDefinition struct {
	Root *DefinitionNode `json:"layoutNode"`
}

// DefinitionNode declares one layout level: which algorithm runs,
// with which parameters and constraints, over which selection of tree
// nodes, and what preset shape its results take.
type DefinitionNode struct {
	Name string `json:"name,omitempty"`

	// Algorithm is the raw tag (lin, cycle, snake, ...). Empty or
	// unknown resolves to linear.
	Algorithm string            `json:"algorithm,omitempty"`
	Params    map[string]string `json:"params,omitempty"`

	// Shape is the preset shape type emitted for this level's nodes.
	// Empty falls back to the configured default.
	Shape string `json:"shape,omitempty"`

	// StyleLabel overrides the tree node's own style label.
	StyleLabel string `json:"styleLabel,omitempty"`

	Constraints []*Constraint `json:"constraints,omitempty"`

	ForEach *ForEach        `json:"forEach,omitempty"`
	Choose  []*ChooseBranch `json:"choose,omitempty"`

	Children []*DefinitionNode `json:"children,omitempty"`
}
