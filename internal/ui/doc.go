// Package ui implements the interactive terminal interface using bubbletea's Elm architecture.
//
// The [Model] is the application shell. It routes between three views:
//  1. [LandingRoute] : category tabs, the featured course hero and the course list
//  2. [CourseRoute] : course header, the lesson playlist and the Nova launcher
//  3. [NotFoundRoute] : shown for unknown course ids, with a way back to the catalog
//
// Paths are parsed by [ParseRoute] ("/", "/courses/{id}"; anything else is the catalog).
//
// The chat panel is a single widget owned by the shell. Views ask for it by emitting a
// chat.OpenRequest message; questions run as commands against a services.Asker and their
// answers arrive as messages, so the rest of the interface stays responsive while waiting.
// Bot answers are rendered as markdown with glamour and the latest one can be copied to the
// clipboard.
//
// Playback hands videos to a playlist.Player. Session ends come back as messages tagged with
// the playlist generation, so ends from superseded sessions are ignored.
//
// Keyboard navigation uses vim-style bindings with contextual help displayed via charmbracelet/bubbles/help.
package ui
