package models

// User identifies the platform member behind a command or interaction.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ReplyResponse carries the text the platform adapter shows the user as an
// ephemeral reply.
type ReplyResponse struct {
	Message string `json:"message"`
}
