// Package duct defines the DuCTT tetrahedral duct-climbing robot: a
// validated parameter bundle, the deterministic generator that lays out two
// 16-point tetrahedral segments with their rod, hinge and prismatic
// connections, the eight-cable wiring between them, and the robot model
// that compiles the result into parts and drives them through the assembly
// lifecycle.
package duct
