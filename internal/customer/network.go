package customer

import (
	"math"

	"github.com/insure-planner/go-api-server/internal/model"
)

// networkRadius is the fixed distance of every related node from the focal
// customer at the origin, matching the client's radial layout.
const networkRadius = 130.0

// unknownRelativeName is the display fallback for a dangling targetId.
const unknownRelativeName = "알 수 없음"

// NetworkNode is one positioned node of the relationship graph, offset in
// Cartesian coordinates relative to the focal customer at the origin.
type NetworkNode struct {
	TargetID string             `json:"targetId"`
	Type     model.RelationType `json:"type"`
	Name     string             `json:"name"`
	X        float64            `json:"x"`
	Y        float64            `json:"y"`
}

// ProjectNetwork lays out the focal customer's relationships on a circle of
// fixed radius, the i-th edge (in stored order) at angle i/n * 2π. It is a
// pure function: deterministic, no mutation, and a dangling targetId degrades
// to a placeholder name instead of failing.
func ProjectNetwork(focal model.Customer, all []model.Customer) []NetworkNode {
	n := len(focal.Relationships)
	nodes := make([]NetworkNode, 0, n)
	if n == 0 {
		return nodes
	}

	names := make(map[string]string, len(all))
	for _, c := range all {
		names[c.ID] = c.Name
	}

	for i, rel := range focal.Relationships {
		angle := float64(i) / float64(n) * 2 * math.Pi

		name, ok := names[rel.TargetID]
		if !ok {
			name = unknownRelativeName
		}

		nodes = append(nodes, NetworkNode{
			TargetID: rel.TargetID,
			Type:     rel.Type,
			Name:     name,
			X:        math.Cos(angle) * networkRadius,
			Y:        math.Sin(angle) * networkRadius,
		})
	}

	return nodes
}
