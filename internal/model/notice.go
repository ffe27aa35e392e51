package model

// Notice is a standalone reminder/announcement, unrelated to customers.
type Notice struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"` // RFC3339
}
