/*
Package domain contains the drawable unit model of the stepline timeline engine.

It defines the entities the engine schedules, commits and rewinds. This package
is kept pure and free of rendering or transport dependencies; the engine and the
adapters depend on it, never the other way around.

# Key Entities

  - Figure: a leaf drawable primitive carrying an opaque Shape.
  - Group: an ordered, atomically drawn bundle of Figures.
  - Animator: an ordered sub-timeline of Figures and Groups with its own cursor.
  - Travelable: the capability a Figure uses to interpolate across several frames.
  - Event: the notification published after a unit is committed or playback toggles.
*/
package domain
