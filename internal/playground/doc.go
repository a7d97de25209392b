// Package playground serves a websocket endpoint that parses Fynk source on
// request. Each connection is a session with its own id; requests on a
// connection are answered in order.
//
// Requests:
//
//	{"type": "parse",  "payload": {"file": "a.fy", "source": "x = 1;"}}
//	{"type": "tokens", "payload": {"source": "x = 1;"}}
//	{"type": "ping"}
//
// Replies carry type "ast", "tokens", "diagnostic", "pong" or "error".
package playground
