// Package core contains the toolkit-wide contracts and state machines.
//
// Allowed here:
// - the selection/focus/keyboard engine shared by every composite widget
// - logical input event contracts (decoupled from any terminal backend)
// - screen routing and app-level message contracts
//
// Not allowed here:
// - concrete widget rendering or per-role layout decisions
// - persistence or terminal I/O
package core
