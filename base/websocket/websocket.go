// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package websocket provides a WebSocket client that works on both
// native and web platforms, and a server side [Hub] that broadcasts
// messages to every connected client.
package websocket

// MessageTypes are the types of WebSocket messages, with the values
// used by the protocol.
type MessageTypes int

const (
	// TextMessage is a UTF-8 text message.
	TextMessage MessageTypes = 1

	// BinaryMessage is a binary data message.
	BinaryMessage MessageTypes = 2
)

func (mt MessageTypes) String() string {
	switch mt {
	case TextMessage:
		return "TextMessage"
	case BinaryMessage:
		return "BinaryMessage"
	}
	return "MessageTypes(?)"
}
