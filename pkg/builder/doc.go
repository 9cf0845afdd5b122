// Package builder is the structure compiler boundary: it maps the tag
// vocabulary emitted by model generators onto concrete part constructors
// (rods, cables, hinges, prismatic joints, sphere tips, boxes, compression
// springs, corde soft cables) and compiles a structure.Structure into an
// Assembly of parts.
//
// The tag-to-constructor mapping is an explicit, ordered table owned by the
// Spec; the core generators never construct parts themselves and the
// compiler rejects tags outside the registered vocabulary.
package builder
