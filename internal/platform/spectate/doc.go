// Package spectate provides a read-only websocket feed of running games.
//
// A central Hub keeps the set of connected spectators. Each connection gets
// a write goroutine that forwards broadcasts and keeps the link alive with
// pings, and a read goroutine that only watches for the peer going away.
// Spectators never send commands; anything they write is discarded.
//
// Spectators may narrow the feed to one run with a query parameter:
//
//	ws://host:8081/ws?run=<run-id>
//
// Without it they receive every run published to the hub.
//
// Message Protocol:
//
// Every message is a JSON object {"run_id": "...", "snapshot": {...}} where
// snapshot is whatever the game reports as its observation.
//
// Usage:
//
//	hub := spectate.NewHub(logger)
//	go hub.Run(ctx)
//	http.HandleFunc("/ws", hub.ServeWS)
//	opts := tui.Options{Publisher: hub}
package spectate
