// Package trig provides exact integer segment geometry for polyedit.
//
// Coordinates are plain ints in model or device units and are expected to
// stay within ±2^30, so differences and their products fit in int64.
// Squared perpendicular distances are kept as an integer ratio and compared
// in 128 bits; SegmentDistance and SegmentHit never round.
package trig
