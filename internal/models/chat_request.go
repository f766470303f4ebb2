package models

// RecommendRequest represents the request body for game recommendations
type RecommendRequest struct {
	UserMessage string `json:"userMessage" binding:"required"`
}

// SupportRequest represents the request body for support chat
type SupportRequest struct {
	Message string `json:"message" binding:"required"`
}
