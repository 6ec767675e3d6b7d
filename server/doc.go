// SPDX-License-Identifier: MIT

// Package server exposes the checkout solver over HTTP and WebSocket.
//
// Routes:
//
//	GET  /              minimal page: score form plus live results over /ws
//	GET  /api/checkout  ?score=N&doubles=D20,D16&triples=T20&darts=3
//	POST /api/checkout  {"score":N,"doubles":[...],"triples":[...],"darts":3}
//	GET  /api/chart     full chart; format=json|csv|text|html
//	GET  /api/qr        PNG QR code of the page URL, for opening it on a phone
//	GET  /ws            WebSocket; {"type":"solve","payload":{...}} in,
//	                    {"type":"result","payload":{...}} out
//
// The server is a thin adapter. Scores are passed to checkout.Solve as
// received; out-of-range scores come back as impossible results with
// HTTP 200, and only malformed requests get a 4xx. Omitted doubles or
// triples fall back to Config.Preferences; an explicit empty list means no
// favourites.
//
// Every request is logged with its method, path, status, size, duration and
// an X-Request-ID, generated when the client did not send one.
package server
