package aoclib

// Graph is a weighted adjacency-map graph. Edges are directed; use
// AddUndirected for tunnels and the like.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) AddEdge(a, b K, dist int) {
	InitMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.AddNode(a)
	g.AddNode(b)
}

func (g *Graph[K]) AddUndirected(a, b K, dist int) {
	g.AddEdge(a, b, dist)
	g.AddEdge(b, a, dist)
}

func (g *Graph[K]) Neighbors(a K) map[K]int {
	return g.Edges[a]
}

// Reverse returns a copy of g with every edge direction flipped.
func (g *Graph[K]) Reverse() *Graph[K] {
	var out Graph[K]
	for n := range g.Nodes {
		out.AddNode(n)
	}
	for a, edges := range g.Edges {
		for b, d := range edges {
			out.AddEdge(b, a, d)
		}
	}
	return &out
}

// BFSDist returns the hop count from start to every reachable node.
// Edge weights are ignored; the days that use this have unit edges.
func (g *Graph[K]) BFSDist(start K) map[K]int {
	dist := map[K]int{start: 0}
	q := NewQueue(start)
	q.While(func(a K) bool {
		d := dist[a]
		for b := range g.Edges[a] {
			if _, ok := dist[b]; ok {
				continue
			}
			dist[b] = d + 1
			q.Push(b)
		}
		return true
	})
	return dist
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
