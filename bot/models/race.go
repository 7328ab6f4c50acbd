package models

// RaceRequest announces a race night. Date and time use the league's local
// notation, e.g. "20.02.2026" and "20:00".
type RaceRequest struct {
	ChannelID string `json:"channelId"`
	User      User   `json:"user"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Track     string `json:"track"`
	Info      string `json:"info,omitempty"`
}

type RaceResponse struct {
	MessageID string `json:"messageId"`
	Message   string `json:"message"`
}

// VoteRequest is the interaction webhook fired when a member presses one of
// the three attendance buttons on an announcement.
type VoteRequest struct {
	ChannelID string `json:"channelId"`
	MessageID string `json:"messageId"`
	CustomID  string `json:"customId"`
	User      User   `json:"user"`
}
