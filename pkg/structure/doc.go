// Package structure defines the core tensegrity structure description:
// labeled 3-D nodes, tagged pairwise connections, and the Structure
// container that accumulates them in a fixed, index-addressable order.
package structure
