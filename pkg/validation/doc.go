// Package validation checks a generated world against the invariants a
// correct pipeline run must satisfy: determinism across reruns, biome map
// consistency, river DAG acyclicity, landmark separation and attribution,
// and wanderer path validity. Results aggregate into a Report of hard
// (pass/fail) and soft (scored) constraints with a printable summary.
package validation
