/*
Package geometry is the planar kernel of the simulation: absolute positions
(Point), displacements (Vector), positive extents (Size) and bottom-left
anchored rectangles (Rect) that split into four edge-sharing quadrants.

Every type is an immutable value. Methods return copies and never mutate
their receiver, with the single exception of Vector.AddAssign, so any value
may be shared between goroutines freely.

Two outcomes are not plain values. MakeSize (and therefore MakeRect) panics
with an *InvalidSizeError when given a non-positive extent; input that comes
from outside the program should go through ValidateSize first. Normalizing a
vector that is zero under ApproxEquals reports that there is no direction
instead of inventing one.
*/
package geometry
