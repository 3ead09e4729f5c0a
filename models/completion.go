package models

// CompletionRequest is the payload posted to the completion endpoint
type CompletionRequest struct {
	UserInput string `json:"userInput"`
}
