// Package models defines the domain entities shared by the catalog, playlist, and chat packages.
//
// The package contains two groups of types:
//
// 1. Catalog entities, immutable once loaded:
//   - [Course] : course metadata, skill tags, and its ordered lesson videos
//   - [Video] : a single lesson with media URL and poster
//
// 2. Conversation entities, append-only:
//   - [ChatMessage] : one entry in the chat transcript
//   - [Author] : who wrote a message (user or bot)
//   - [Question], [Answer], [Source] : the request and reply exchanged with the answering service
//
// Struct tags cover every catalog format the loaders accept (TOML, YAML, JSON).
package models
