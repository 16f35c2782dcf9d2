// Package graph provides a minimal string-keyed adjacency graph with BFS
// reachability, shortest path, connected components, and cycle detection.
// It backs the plate connected-component cleanup sweep in pkg/tectonics;
// nodes are plain encoded tile coordinates ("x,y") with no payload of
// their own.
package graph

import (
	"fmt"
	"sort"
)

// Graph is a directed adjacency-list graph over string node ids.
type Graph struct {
	Nodes     map[string]bool
	Adjacency map[string][]string
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		Nodes:     make(map[string]bool),
		Adjacency: make(map[string][]string),
	}
}

// AddNode registers a node id, a no-op if already present.
func (g *Graph) AddNode(id string) {
	if !g.Nodes[id] {
		g.Nodes[id] = true
		g.Adjacency[id] = nil
	}
}

// AddEdge adds a directed edge from -> to, adding either endpoint as a
// node if not already present. If bidirectional is true, also adds to -> from.
func (g *Graph) AddEdge(from, to string, bidirectional bool) {
	g.AddNode(from)
	g.AddNode(to)
	g.Adjacency[from] = append(g.Adjacency[from], to)
	if bidirectional {
		g.Adjacency[to] = append(g.Adjacency[to], from)
	}
}

// GetPath finds the shortest path between two nodes using BFS. Returns
// the sequence of node ids from 'from' to 'to' inclusive, or an error if
// no path exists.
func (g *Graph) GetPath(from, to string) ([]string, error) {
	if !g.Nodes[from] {
		return nil, fmt.Errorf("node %s does not exist", from)
	}
	if !g.Nodes[to] {
		return nil, fmt.Errorf("node %s does not exist", to)
	}
	if from == to {
		return []string{from}, nil
	}

	queue := []string{from}
	visited := map[string]bool{from: true}
	parent := map[string]string{}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, neighbor := range g.Adjacency[current] {
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			parent[neighbor] = current
			queue = append(queue, neighbor)

			if neighbor == to {
				path := []string{}
				for node := to; ; node = parent[node] {
					path = append([]string{node}, path...)
					if node == from {
						break
					}
				}
				return path, nil
			}
		}
	}
	return nil, fmt.Errorf("no path exists from %s to %s", from, to)
}

// GetReachable returns all nodes reachable from 'from' via BFS, including
// 'from' itself.
func (g *Graph) GetReachable(from string) map[string]bool {
	reachable := make(map[string]bool)
	if !g.Nodes[from] {
		return reachable
	}

	queue := []string{from}
	reachable[from] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, neighbor := range g.Adjacency[current] {
			if !reachable[neighbor] {
				reachable[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
	}
	return reachable
}

// ConnectedComponents partitions the node set into weakly-connected
// components (edges treated as undirected), returned as slices of node
// ids.
func (g *Graph) ConnectedComponents() [][]string {
	undirected := make(map[string][]string, len(g.Adjacency))
	for from, tos := range g.Adjacency {
		for _, to := range tos {
			undirected[from] = append(undirected[from], to)
			undirected[to] = append(undirected[to], from)
		}
	}

	seen := make(map[string]bool, len(g.Nodes))
	var components [][]string

	// Deterministic iteration order over node ids.
	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, start := range ids {
		if seen[start] {
			continue
		}
		queue := []string{start}
		seen[start] = true
		var comp []string
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for _, n := range undirected[cur] {
				if !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
		sort.Strings(comp)
		components = append(components, comp)
	}
	return components
}

// HasCycle reports whether the directed graph contains a cycle, via DFS
// with a recursion-stack marker.
func (g *Graph) HasCycle() bool {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(g.Nodes))

	var visit func(string) bool
	visit = func(node string) bool {
		state[node] = visiting
		for _, next := range g.Adjacency[node] {
			switch state[next] {
			case visiting:
				return true
			case unvisited:
				if visit(next) {
					return true
				}
			}
		}
		state[node] = done
		return false
	}

	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if state[id] == unvisited {
			if visit(id) {
				return true
			}
		}
	}
	return false
}

