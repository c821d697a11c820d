// Package converters adapts core.Graph to and from gonum graphs.
//
// ToGonum numbers vertices by their position in core.Graph.Vertices(), so
// gonum node i is Vertices()[i]. Self-loops are dropped and parallel edges
// keep the weight of the first one, since gonum's simple graphs allow
// neither. Components uses gonum's topo package on that view.
package converters
