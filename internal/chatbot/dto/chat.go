package dto

// ChatResponse is the body of a successful /chatbot call.
type ChatResponse struct {
	Response string `json:"response"`
}
