// See graph.go for the package overview.
package graph
