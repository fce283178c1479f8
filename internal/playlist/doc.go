// Package playlist implements the course video playlist: the current lesson, manual selection, and autoplay
// advancement when a lesson finishes.
//
// [Playlist] is pure state. Every transition that should start playback returns a [Request], which callers hand
// to a [Player]. A [Request] carries the playlist generation it was issued under so that completion events from a
// superseded session can be discarded with [Playlist.Finished].
//
// Playback itself is delegated to an external media player process ([ExecPlayer]). A process that exits cleanly
// is treated as the natural end of the lesson.
package playlist
