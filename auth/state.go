package auth

import "encoding/json"

// State is the payload round-tripped through the identity provider's state
// parameter. It carries the session identifier that ties a callback to the
// attempt that started it.
type State struct {
	ID string `json:"id"`
}

// EncodeState renders the state parameter value for the authorization URL.
func EncodeState(id string) string {
	b, _ := json.Marshal(State{ID: id})
	return string(b)
}

// DecodeState parses a state parameter. It never fails: the state travels
// through a third party and may come back mangled, so malformed input decodes
// to the zero State, whose empty ID matches no real session.
func DecodeState(s string) State {
	var st State
	if err := json.Unmarshal([]byte(s), &st); err != nil {
		return State{}
	}
	return st
}
