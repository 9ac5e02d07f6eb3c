// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Filipe Johansson

package cloudsocket

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client is a connected participant. Rooms hold *Client references and
// compare them by identity, so a Client must never be copied by value.
type Client struct {
	ID       string
	Conn     IWebSocketConn         // WebSocket connection (gorilla/websocket.Conn)
	UserData map[string]interface{} // user custom data

	username string
	mu       sync.RWMutex
	writeMu  sync.Mutex
}

// NewClient creates a new Client instance.
//
// An empty id is replaced with one from GenerateClientID. The username starts
// empty and is set by the handshake logic with SetUsername.
func NewClient(id string, conn IWebSocketConn) *Client {
	if id == "" {
		id = GenerateClientID()
	}
	return &Client{
		ID:       id,
		Conn:     conn,
		UserData: make(map[string]interface{}),
	}
}

func (c *Client) Username() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.username
}

func (c *Client) SetUsername(username string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.username = username
}

// Send writes data to the client as a single text frame.
//
// This method is safe to call concurrently.
func (c *Client) Send(data []byte) error {
	if len(data) == 0 {
		return ErrNoDataToSend
	}

	c.mu.RLock()
	conn := c.Conn
	c.mu.RUnlock()
	if conn == nil {
		return ErrClientConnNil
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return newSendMessageError(c.ID, err)
	}
	return nil
}

// Disconnect closes the client's connection. It returns nil if the client
// is already disconnected.
//
// This method is safe to call concurrently.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Conn == nil {
		return nil
	}
	err := c.Conn.Close()
	c.Conn = nil
	return err
}

func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Conn != nil
}

// SetUserData sets a value for a key in the client's user data map.
//
// This method is safe to call concurrently.
func (c *Client) SetUserData(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.UserData[key] = value
}

// GetUserData gets a value from the client's user data map by its key.
//
// This method is safe to call concurrently.
func (c *Client) GetUserData(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.UserData[key]
}
