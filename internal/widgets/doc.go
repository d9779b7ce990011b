// Package widgets contains dumb render primitives shared by the mini-apps
// and the host: slot chrome, horizontal stacks, popup overlay and palette.
//
// Nothing here handles keys or owns state.
package widgets
