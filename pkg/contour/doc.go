// Package contour extracts contour lines from triangle meshes.
//
// Extraction runs in two steps. Intersect cuts every triangle of a mesh with
// a plane and returns the loose line segments where the plane crosses the
// surface. Chain then joins segments that share an endpoint into polylines,
// closing a polyline once its two free ends meet. Extractor repeats both
// steps for a series of evenly spaced elevations.
package contour
