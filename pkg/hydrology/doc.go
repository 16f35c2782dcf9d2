// Package hydrology computes the authoritative river network and water
// body classification from a fully eroded heightmap: depression filling
// (Planchon-Darboux), steepest-descent flow direction, topological
// flow-accumulation, river classification into a directed acyclic graph,
// and connected-component water body labeling (ocean vs lake).
package hydrology
