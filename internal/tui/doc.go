// Package tui implements the interactive terminal client: a tabbed,
// keyboard-driven request editor built on Bubble Tea's model/update/view
// loop. All state mutation happens inside Update; outbound HTTP calls
// run as commands and re-enter the loop as typed messages tagged with
// the issuing tab and send generation, so stale or orphaned results are
// discarded instead of clobbering newer state.
package tui
