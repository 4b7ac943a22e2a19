/*
Package domain contains the core domain models of the dial simulator.

It defines the instructions fed to the rotation engine and the values it produces.
This package is kept pure and free of I/O, so the parser, the engine and the
presentation layers can share it without pulling each other in.

# Key Entities

  - Direction: Which way a turn moves the dial (Right or Left).
  - Turn: One instruction, a direction plus a tick count.
  - TurnResult: The dial position after a turn and how often it crossed zero.
  - Summary: The two counters accumulated over a whole run.
  - LifecycleHooks: Callbacks fired by the engine for observability.
*/
package domain
