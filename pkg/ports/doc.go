/*
Package ports defines the driven ports (interfaces) of the stepline engine.

These interfaces decouple the timeline core from the surfaces it draws on and
the channels it notifies, so the same engine can run against a terminal, an
in-memory recorder used in tests, or several event sinks at once.

# Key Interfaces

  - Renderer: draws figures and owns the frame counter and pause state.
  - EventBus: receives fire-and-forget notifications about committed units.
  - Controller: the control API consumed by the HTTP and MCP adapters.
*/
package ports
