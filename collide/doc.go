// Package collide implements continuous collision tests between moving spheres
// and static geometry.
//
// Objects in the simulation move several radii per step, so overlap tests on
// the end positions let them tunnel through each other. Every query here works
// on a swept sphere instead: the centre moves linearly from `from` to `to`
// during the step and the test returns the exact fraction T of that motion at
// which contact starts.
//
// The primitives compose bottom-up:
//   - RayVsSphere: a moving point against a sphere (closed-form quadratic)
//   - RayVsCylinder: a moving point against the tube around a segment
//   - SweptSphereVsPoint, SweptSphereVsSweptSphere: reductions to RayVsSphere
//   - SweptSphereVsTriangle: face, then vertex and edge fallbacks
//   - Mesh: a triangle soup with a spatial grid broad phase
//
// All functions are total over finite input: degenerate geometry resolves to
// a boolean and no NaN ever reaches a returned normal.
package collide
