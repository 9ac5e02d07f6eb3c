package cloudsocket

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWebSocketConn struct {
	mock.Mock
}

func (m *MockWebSocketConn) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockWebSocketConn) WriteMessage(messageType int, data []byte) error {
	args := m.Called(messageType, data)
	return args.Error(0)
}

func (m *MockWebSocketConn) ReadMessage() (messageType int, p []byte, err error) {
	args := m.Called()
	return args.Int(0), args.Get(1).([]byte), args.Error(2)
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		conn     IWebSocketConn
		expected func(*Client)
	}{
		{
			name: "creates client with valid parameters",
			id:   "test-client-1",
			conn: &MockWebSocketConn{},
			expected: func(c *Client) {
				assert.Equal(t, "test-client-1", c.ID)
				assert.NotNil(t, c.Conn)
				assert.NotNil(t, c.UserData)
				assert.Empty(t, c.Username())
				assert.True(t, c.IsConnected())
			},
		},
		{
			name: "creates client with nil connection",
			id:   "test-client-2",
			conn: nil,
			expected: func(c *Client) {
				assert.Equal(t, "test-client-2", c.ID)
				assert.Nil(t, c.Conn)
				assert.False(t, c.IsConnected())
			},
		},
		{
			name: "generates id when empty",
			id:   "",
			conn: &MockWebSocketConn{},
			expected: func(c *Client) {
				assert.True(t, strings.HasPrefix(c.ID, "client_"))
				assert.Greater(t, len(c.ID), len("client_"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.id, tt.conn)
			tt.expected(client)
		})
	}
}

func TestGenerateClientID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateClientID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestClient_Username(t *testing.T) {
	client := NewClient("c1", nil)

	client.SetUsername("Alice")

	assert.Equal(t, "Alice", client.Username())
}

func TestClient_Send(t *testing.T) {
	tests := []struct {
		name          string
		setupClient   func() (*Client, *MockWebSocketConn)
		message       []byte
		expectedError error
	}{
		{
			name: "sends message successfully",
			setupClient: func() (*Client, *MockWebSocketConn) {
				conn := &MockWebSocketConn{}
				conn.On("WriteMessage", websocket.TextMessage, []byte("test message")).Return(nil)
				return NewClient("test", conn), conn
			},
			message: []byte("test message"),
		},
		{
			name: "fails when connection is nil",
			setupClient: func() (*Client, *MockWebSocketConn) {
				return NewClient("test", nil), nil
			},
			message:       []byte("test message"),
			expectedError: ErrClientConnNil,
		},
		{
			name: "fails when message is empty",
			setupClient: func() (*Client, *MockWebSocketConn) {
				conn := &MockWebSocketConn{}
				return NewClient("test", conn), conn
			},
			message:       nil,
			expectedError: ErrNoDataToSend,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, conn := tt.setupClient()
			err := client.Send(tt.message)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			if conn != nil {
				conn.AssertExpectations(t)
			}
		})
	}
}

func TestClient_Send_WrapsWriteError(t *testing.T) {
	writeErr := errors.New("broken pipe")
	conn := &MockWebSocketConn{}
	conn.On("WriteMessage", websocket.TextMessage, []byte("hi")).Return(writeErr)
	client := NewClient("test", conn)

	err := client.Send([]byte("hi"))

	assert.ErrorIs(t, err, writeErr)
	assert.ErrorContains(t, err, "test")
}

func TestClient_Disconnect(t *testing.T) {
	t.Run("closes connection once", func(t *testing.T) {
		conn := &MockWebSocketConn{}
		conn.On("Close").Return(nil).Once()
		client := NewClient("test", conn)

		require.NoError(t, client.Disconnect())
		require.NoError(t, client.Disconnect())

		assert.False(t, client.IsConnected())
		conn.AssertExpectations(t)
	})

	t.Run("returns close error", func(t *testing.T) {
		closeErr := errors.New("close failed")
		conn := &MockWebSocketConn{}
		conn.On("Close").Return(closeErr)
		client := NewClient("test", conn)

		assert.ErrorIs(t, client.Disconnect(), closeErr)
		assert.False(t, client.IsConnected())
	})

	t.Run("send after disconnect fails", func(t *testing.T) {
		conn := &MockWebSocketConn{}
		conn.On("Close").Return(nil)
		client := NewClient("test", conn)
		require.NoError(t, client.Disconnect())

		assert.ErrorIs(t, client.Send([]byte("hi")), ErrClientConnNil)
	})
}

func TestClient_UserData(t *testing.T) {
	client := NewClient("test", nil)

	client.SetUserData("room", "123")

	assert.Equal(t, "123", client.GetUserData("room"))
	assert.Nil(t, client.GetUserData("missing"))
}

func TestClient_ConcurrentAccess(t *testing.T) {
	conn := &MockWebSocketConn{}
	conn.On("WriteMessage", websocket.TextMessage, mock.Anything).Return(nil)
	client := NewClient("test", conn)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_ = client.Send([]byte("ping"))
		}()
		go func() {
			defer wg.Done()
			client.SetUsername("user")
		}()
		go func() {
			defer wg.Done()
			_ = client.Username()
		}()
	}
	wg.Wait()

	conn.AssertNumberOfCalls(t, "WriteMessage", 50)
}
