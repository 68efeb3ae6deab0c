package internal

// CollectPredecessors walks predecessor links back from goal and returns
// every predecessor met on the way. The walk stops at the first node that is
// its own predecessor, or at a node with no link. goal is not included.
func CollectPredecessors[NodeType comparable](
	predecessor func(NodeType) (NodeType, bool),
	goal NodeType,
) map[NodeType]struct{} {
	collected := make(map[NodeType]struct{})
	current := goal
	for {
		previousNode, exists := predecessor(current)
		if !exists || previousNode == current {
			break
		}
		if _, seen := collected[previousNode]; seen {
			// a cycle can only come from a corrupted predecessor table
			panic("internal: cycle in predecessor links")
		}
		collected[previousNode] = struct{}{}
		current = previousNode
	}
	return collected
}

// ReconstructPath rebuilds the ordered route ending at goal, starting at the
// node that is its own predecessor.
func ReconstructPath[NodeType comparable](
	predecessor func(NodeType) (NodeType, bool),
	goal NodeType,
) []NodeType {
	path := []NodeType{goal}
	current := goal
	for {
		previousNode, exists := predecessor(current)
		if !exists || previousNode == current {
			break
		}
		path = append(path, previousNode)
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
