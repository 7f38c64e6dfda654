/*
Package shapes provides concrete drawable shapes and the travels that
interpolate them across frames.

Shapes are plain data: the engine treats them as opaque payloads and a
Renderer rasterizes them. Travels implement domain.Travelable by mutating
the shape they were built for, using a named easing curve to shape progress.

# Travels

  - Move: slides a shape's anchor point to a target.
  - Grow: scales a shape's size (circle radius, rect width, line length).
  - Fade: blends a shape's colour towards a target in Lab space.
  - Together: runs several travels in lock step until all finish.
*/
package shapes
