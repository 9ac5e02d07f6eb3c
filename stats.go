// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Filipe Johansson

package cloudsocket

type RoomStats struct {
	ID            string   `json:"id"`
	ClientCount   int      `json:"client_count"`
	Usernames     []string `json:"usernames"`
	VariableCount int      `json:"variable_count"`
	MaxVariables  int      `json:"max_variables"`
}

// Stats returns a consistent snapshot of the room's size.
func (r *Room) Stats() RoomStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	usernames := make([]string, 0, len(r.clients))
	for _, c := range r.clients {
		usernames = append(usernames, c.Username())
	}

	return RoomStats{
		ID:            r.id,
		ClientCount:   len(r.clients),
		Usernames:     usernames,
		VariableCount: r.variables.Len(),
		MaxVariables:  r.config.MaxVariables,
	}
}
