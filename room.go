// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Filipe Johansson

package cloudsocket

import (
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

type RoomOption func(*Room) error

// WithRoomConfig replaces the default variable limits.
func WithRoomConfig(config RoomConfig) RoomOption {
	return func(r *Room) error {
		if err := config.validate(); err != nil {
			return err
		}
		r.config = config
		return nil
	}
}

func WithRoomLogger(logger *LoggerConfig) RoomOption {
	return func(r *Room) error {
		if logger != nil && logger.Logger != nil {
			r.logger = logger
		}
		return nil
	}
}

// Room is one session's shared state: the clients joined to it and its
// cloud variables. Every method runs as a single critical section, so
// capacity and uniqueness checks cannot race with each other.
//
// A Room never notifies clients of changes; that is up to the caller.
type Room struct {
	id        string
	config    RoomConfig
	clients   []*Client
	variables *OrderedMap[string, string]
	logger    *LoggerConfig
	mu        sync.RWMutex
}

func NewRoom(id string, options ...RoomOption) (*Room, error) {
	r := &Room{
		id:     id,
		config: DefaultRoomConfig(),
		logger: &LoggerConfig{Logger: &NullLogger{}},
	}

	for _, o := range options {
		if err := o(r); err != nil {
			return nil, err
		}
	}

	r.variables = NewOrderedMap[string, string](r.config.MaxVariables)
	return r, nil
}

func (r *Room) ID() string {
	return r.id
}

func (r *Room) Config() RoomConfig {
	return r.config
}

// ===== CLIENTS =====

// AddClient appends client to the room's members. Membership is by
// reference: the same *Client cannot join twice, but two clients with
// equal fields can.
func (r *Room) AddClient(client *Client) error {
	if client == nil {
		return ErrClientNil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if lo.Contains(r.clients, client) {
		r.log(LogTypeRoom, LogLevelWarn, "Client %s already in room %s", client.ID, r.id)
		return newDuplicateClientError(client.ID)
	}

	r.clients = append(r.clients, client)
	r.log(LogTypeRoom, LogLevelDebug, "Client %s joined room %s (total: %d)", client.ID, r.id, len(r.clients))
	return nil
}

// RemoveClient removes client, keeping the join order of the others.
func (r *Room) RemoveClient(client *Client) error {
	if client == nil {
		return ErrClientNil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := lo.IndexOf(r.clients, client)
	if i < 0 {
		return newClientNotFoundError(client.ID)
	}

	r.clients = slices.Delete(r.clients, i, i+1)
	r.log(LogTypeRoom, LogLevelDebug, "Client %s left room %s (total: %d)", client.ID, r.id, len(r.clients))
	return nil
}

// Clients returns the members in join order. The slice is a snapshot.
func (r *Room) Clients() []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.clients)
}

func (r *Room) ClientCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// HasClientWithUsername reports whether a member's username matches
// username, ignoring case.
func (r *Room) HasClientWithUsername(username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.ContainsBy(r.clients, func(c *Client) bool {
		return strings.EqualFold(c.Username(), username)
	})
}

// ===== VARIABLES =====

// Variables returns a snapshot of every variable name and value.
func (r *Room) Variables() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.variables.GetAll()
}

// VariableNames returns the variable names in creation order.
func (r *Room) VariableNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.variables.Keys()
}

func (r *Room) Variable(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.variables.Get(name)
}

func (r *Room) VariableCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.variables.Len()
}

// CreateVar adds a new variable. Checks run in a fixed order: name, value,
// existence, capacity. Nothing is stored unless all of them pass.
func (r *Room) CreateVar(name string, value any) error {
	str, err := r.checkVariable(name, value)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.variables.Has(name) {
		return newVariableExistsError(name)
	}

	if r.variables.Len() >= r.config.MaxVariables {
		r.log(LogTypeVariable, LogLevelWarn, "Room %s is full, rejected %q", r.id, name)
		return newCapacityExceededError(r.config.MaxVariables)
	}

	r.variables.Set(name, str)
	r.log(LogTypeVariable, LogLevelDebug, "Variable %q created in room %s (total: %d)", name, r.id, r.variables.Len())
	return nil
}

// Set updates an existing variable. It never creates one.
func (r *Room) Set(name string, value any) error {
	str, err := r.checkVariable(name, value)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.variables.Has(name) {
		return newVariableNotFoundError(name)
	}

	r.variables.Set(name, str)
	r.log(LogTypeVariable, LogLevelDebug, "Variable %q set in room %s", name, r.id)
	return nil
}

// IsValidVariableName reports whether name carries the variable prefix and
// fits the room's name length limit.
func (r *Room) IsValidVariableName(name any) bool {
	s, ok := name.(string)
	return ok && strings.HasPrefix(s, r.config.VariablePrefix) && utf16Len(s) < r.config.MaxNameLength
}

// IsValidVariableValue reports whether value is a string within the room's
// value length limit.
func (r *Room) IsValidVariableValue(value any) bool {
	s, ok := value.(string)
	return ok && utf16Len(s) < r.config.MaxValueLength
}

// checkVariable only reads the immutable config, so it runs outside the lock.
func (r *Room) checkVariable(name string, value any) (string, error) {
	if !r.IsValidVariableName(name) {
		r.log(LogTypeError, LogLevelDebug, "Room %s rejected name %q", r.id, name)
		return "", newInvalidNameError(name)
	}
	if !r.IsValidVariableValue(value) {
		r.log(LogTypeError, LogLevelDebug, "Room %s rejected value for %q", r.id, name)
		return "", newInvalidValueError(name, value)
	}
	return value.(string), nil
}

func (r *Room) log(logType LogType, level LogLevel, msg string, args ...interface{}) {
	lvl, ok := r.logger.Level[logType]
	if !ok {
		lvl = LogLevelNone
	}

	if level <= lvl {
		r.logger.Logger.Log(logType, level, msg, args...)
	}
}
