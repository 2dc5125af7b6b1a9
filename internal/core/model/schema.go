package model

// NodeTypeSpec binds a node type name to the point shape used for it in
// the plots.
type NodeTypeSpec struct {
	Name  string
	Shape string
}

// Schema is the fixed vocabulary a mining strategy extracts into. Node
// types are enforced by ArgumentGraph.Validate; edge labels document the
// vocabulary the prompt asks for but are not enforced.
type Schema struct {
	NodeTypes  []NodeTypeSpec
	EdgeLabels []string
}

func (s Schema) HasNodeType(name string) bool {
	for _, t := range s.NodeTypes {
		if t.Name == name {
			return true
		}
	}
	return false
}

func (s Schema) NodeTypeNames() []string {
	names := make([]string, len(s.NodeTypes))
	for i, t := range s.NodeTypes {
		names[i] = t.Name
	}
	return names
}
