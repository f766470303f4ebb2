package models

// ChatResponse represents the reply from the recommendation or support endpoint
type ChatResponse struct {
	Reply string `json:"reply"`
}
