package notegraph

import "sort"

// DegreeBucket is one bucket in the out-degree histogram.
type DegreeBucket struct {
	Degree int `json:"degree"`
	Count  int `json:"count"`
}

// NodeSummary describes one note's outgoing edges.
type NodeSummary struct {
	Note      Note    `json:"note"`
	OutDegree int     `json:"out_degree"`
	WeightSum float64 `json:"weight_sum"`
}

// InspectReport contains structural diagnostics for a note graph.
type InspectReport struct {
	TotalNodes      int            `json:"total_nodes"`
	TotalEdges      int            `json:"total_edges"`
	Connected       bool           `json:"connected"`
	MinOutDegree    int            `json:"min_out_degree"`
	MaxOutDegree    int            `json:"max_out_degree"`
	DegreeHistogram []DegreeBucket `json:"degree_histogram"`
	Nodes           []NodeSummary  `json:"nodes"`
}

// Connected reports whether every note can reach every other note,
// treating edges as undirected. The standard construction always yields
// a single component.
func (g *Graph) Connected() bool {
	if len(g.notes) == 0 {
		return false
	}
	uf := newUnionFind(g.notes)
	for from, out := range g.edges {
		for _, e := range out {
			uf.union(from, e.To)
		}
	}
	return uf.components() == 1
}

// Inspect computes out-degree and edge-weight diagnostics for the graph.
func (g *Graph) Inspect() *InspectReport {
	report := &InspectReport{
		TotalNodes: g.NodeCount(),
		TotalEdges: g.EdgeCount(),
		Connected:  g.Connected(),
	}
	if report.TotalNodes == 0 {
		return report
	}

	buckets := make(map[int]int)
	report.MinOutDegree = -1
	for _, n := range g.notes {
		out := g.edges[n]
		sum := 0.0
		for _, e := range out {
			sum += e.Weight
		}
		report.Nodes = append(report.Nodes, NodeSummary{
			Note:      n,
			OutDegree: len(out),
			WeightSum: sum,
		})
		buckets[len(out)]++
		if report.MinOutDegree < 0 || len(out) < report.MinOutDegree {
			report.MinOutDegree = len(out)
		}
		if len(out) > report.MaxOutDegree {
			report.MaxOutDegree = len(out)
		}
	}

	degrees := make([]int, 0, len(buckets))
	for d := range buckets {
		degrees = append(degrees, d)
	}
	sort.Ints(degrees)
	for _, d := range degrees {
		report.DegreeHistogram = append(report.DegreeHistogram, DegreeBucket{Degree: d, Count: buckets[d]})
	}
	return report
}
