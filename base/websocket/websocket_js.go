// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package websocket

import (
	"syscall/js"

	"github.com/hack-pad/safejs"
)

// Client represents a WebSocket client connection.
// You can use [Connect] to create a new Client.
type Client struct {

	// ws is the underlying JavaScript WebSocket object.
	// See https://developer.mozilla.org/en-US/docs/Web/API/WebSocket
	ws safejs.Value
}

// Connect connects to a WebSocket server and returns a [Client].
// Unlike on native platforms, the connection may still be opening
// when it returns.
func Connect(url string) (*Client, error) {
	ctor, err := safejs.Global().Get("WebSocket")
	if err != nil {
		return nil, err
	}
	ws, err := ctor.New(url)
	if err != nil {
		return nil, err
	}
	if err := ws.Set("binaryType", "arraybuffer"); err != nil {
		return nil, err
	}
	return &Client{ws: ws}, nil
}

func (c *Client) on(event string, f func(ev js.Value)) {
	c.ws.Call("addEventListener", event, js.FuncOf(func(this js.Value, args []js.Value) any {
		f(args[0])
		return nil
	}))
}

// OnMessage sets a callback function to be called when a message is received.
// This function can only be called once.
func (c *Client) OnMessage(f func(typ MessageTypes, msg []byte)) {
	c.on("message", func(ev js.Value) {
		data := ev.Get("data")
		if data.Type() == js.TypeString {
			f(TextMessage, []byte(data.String()))
			return
		}
		arr := js.Global().Get("Uint8Array").New(data)
		b := make([]byte, arr.Length())
		js.CopyBytesToGo(b, arr)
		f(BinaryMessage, b)
	})
}

// Send sends a message to the WebSocket server with the given type and message.
func (c *Client) Send(typ MessageTypes, msg []byte) error {
	if typ == TextMessage {
		_, err := c.ws.Call("send", string(msg))
		return err
	}
	arr := js.Global().Get("Uint8Array").New(len(msg))
	js.CopyBytesToJS(arr, msg)
	_, err := c.ws.Call("send", arr)
	return err
}

// Close cleanly closes the WebSocket connection.
func (c *Client) Close() error {
	_, err := c.ws.Call("close", 1000)
	return err
}

// OnClose sets a callback function to be called when the connection is closed.
// This function can only be called once.
func (c *Client) OnClose(f func()) {
	c.on("close", func(js.Value) { f() })
}
