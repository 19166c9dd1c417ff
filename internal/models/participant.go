package models

// Participant is a connected student. Keyed by the client-generated ID, not
// the connection: a page reload rejoins with the same ID and a new connection.
type Participant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	HasAnswered bool   `json:"hasAnswered"`

	// ConnID is the connection currently serving this participant.
	ConnID string `json:"-"`
}
