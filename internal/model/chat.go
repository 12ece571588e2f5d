package model

// Chat roles, matching the wire contract of the completion endpoint.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a conversation. A conversation is an ordered
// slice of messages: system first, then alternating user/assistant turns.
// Turns are appended, never mutated.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// System, User and Assistant are shorthand constructors for the three roles.
func System(content string) ChatMessage {
	return ChatMessage{Role: RoleSystem, Content: content}
}

func User(content string) ChatMessage {
	return ChatMessage{Role: RoleUser, Content: content}
}

func Assistant(content string) ChatMessage {
	return ChatMessage{Role: RoleAssistant, Content: content}
}
