// Package dialog drives the multi-turn "set home stop" conversation.
//
// The platform keeps slot values between turns and resubmits all of them on
// every request, so the machine holds no state of its own: each turn is
// either still collecting slots (AwaitingSlots) or complete (Complete),
// decided from the request's dialog state.
//
// A complete turn resolves line, direction and the two cross streets to a
// stop id and stores it on the user's record.
package dialog
