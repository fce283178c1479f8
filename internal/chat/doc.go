// Package chat holds the state of the course assistant widget.
//
// A [Widget] is a small state machine over [Closed], [OpenIdle] and [OpenWaiting]. Submitting input appends the
// user's message and yields exactly one [Request]; the caller performs the request and reports the outcome with
// [Widget.Resolve], which appends the bot's reply (or a fixed fallback/error text) and returns to idle.
//
// Closing the widget keeps the transcript and input. A reply that arrives after the widget was closed is still
// appended.
//
// [Scroll] decides, whenever the transcript grows, whether the view follows the newest message or shows a
// "scroll to latest" affordance instead.
package chat
