// Package layout reads and prints boards in a plain-text grid format.
//
// # Format
//
// A layout is N lines of N characters each:
//
//	S....
//	.....
//	##.##
//	.....
//	....E
//
// The input alphabet is:
//
//   - '.': free cell
//   - '#': obstacle
//   - 'S': start (at most one)
//   - 'E': end (at most one)
//
// Blank lines and lines starting with "//" are ignored. The printed form
// produced by [Format] adds 'o' for frontier, 'x' for visited and '*' for
// path cells; [Read] accepts those as free cells so printed boards can be
// fed back in.
//
// # Applying
//
// [Layout.Apply] replays a layout through a [session.Session] as primary
// presses: the start first, the end second, then every obstacle in
// row-major order. The controller therefore enforces its usual rules, and
// a layout with obstacles must designate both a start and an end.
//
// Layouts are input only. Nothing in this module writes them to disk.
package layout
