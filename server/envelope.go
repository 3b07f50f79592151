package server

// protocolVersion tags the POST response envelope. Existing callers match on
// it, so it only ever changes together with the envelope shape.
const protocolVersion = 2

// envelope is the JSON wire contract for the POST callback path.
type envelope struct {
	ProtocolVersion int    `json:"protocol_version"`
	Redirect        string `json:"redirect,omitempty"`
	Error           bool   `json:"error"`
	Message         string `json:"message,omitempty"`
}
