// Package chat holds the in-memory state behind the chat screen.
//
// Core types:
//   - Message: immutable record of entered text plus creation time
//   - Store: ordered, append-only sequence of Messages for one screen session
//   - Input: the single-line compose buffer and its send action
//   - Formatter: turns a Message into the "<Day> @ <HH:MM>  > <content>" display row
//
// Nothing here is safe for concurrent use; every mutation is expected to happen
// on the Bubble Tea update loop.
package chat
