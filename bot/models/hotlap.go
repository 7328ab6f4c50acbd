package models

// HotlapRequest submits a lap time like "1:47.221" for a track.
type HotlapRequest struct {
	ChannelID string `json:"channelId"`
	User      User   `json:"user"`
	Track     string `json:"track"`
	Time      string `json:"time"`
}

// BoardRequest asks for one track's leaderboard (show or setup).
type BoardRequest struct {
	ChannelID string `json:"channelId"`
	User      User   `json:"user"`
	Track     string `json:"track"`
}

// BoardSetupAllRequest creates leaderboard messages for every catalog track.
type BoardSetupAllRequest struct {
	ChannelID string `json:"channelId"`
	User      User   `json:"user"`
}

type BoardSetupResponse struct {
	Track     string `json:"track"`
	MessageID string `json:"messageId"`
}
