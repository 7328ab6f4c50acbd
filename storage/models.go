package storage

// Document is the single persisted state of the bot: every personal best and
// every leaderboard message binding. It is loaded once at startup and
// rewritten in full on every mutation.
type Document struct {
	// Laps maps track key -> user ID -> best lap in milliseconds.
	Laps map[string]map[string]int64 `json:"laps"`
	// Bindings maps track key -> the message rendering that leaderboard.
	Bindings map[string]MessageRef `json:"bindings"`
}

// MessageRef points at one message on the chat platform.
type MessageRef struct {
	ChannelID string `json:"channelId"`
	MessageID string `json:"messageId"`
}

// NewDocument returns an empty document with both tables allocated.
func NewDocument() *Document {
	return &Document{
		Laps:     make(map[string]map[string]int64),
		Bindings: make(map[string]MessageRef),
	}
}
