package models

// Message is one entry of a conversation. Ordering is defined by the
// server-returned sequence, not by client arrival time.
type Message struct {
	ID         string  `json:"id"`
	MatchID    string  `json:"match_id"`
	SenderID   string  `json:"sender_id"`
	ReceiverID string  `json:"receiver_id"`
	Content    string  `json:"content"`
	SentAt     string  `json:"sent_at"`
	ReadAt     *string `json:"read_at"`
}

// Correspondent returns the participant of m that is not selfID.
func (m Message) Correspondent(selfID string) string {
	if m.SenderID == selfID {
		return m.ReceiverID
	}
	return m.SenderID
}

// SendMessageRequest is the body of POST /messages/send.
type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id"`
	Content    string `json:"content"`
}

// SendMessageResponse is the acknowledgement of a sent message.
type SendMessageResponse struct {
	MessageID string `json:"message_id"`
	SentAt    string `json:"sent_at"`
}

// MatchSummary is one entry of GET /matches/my-matches: the match id plus
// the other participant's profile.
type MatchSummary struct {
	MatchID   string  `json:"match_id"`
	MatchedAt string  `json:"matched_at"`
	Profile   Profile `json:"profile"`
}
