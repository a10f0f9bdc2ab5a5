// Package chat defines the envelope for the conversational channel. Unlike
// the one-shot AI endpoints, replies here always arrive wrapped with a
// sender, a timestamp, and a message type so clients can render system
// notices and errors inline with the conversation.
package chat

import "time"

// MessageType classifies a chat envelope.
type MessageType string

const (
	TypeChat   MessageType = "CHAT"
	TypeSystem MessageType = "SYSTEM"
	TypeError  MessageType = "ERROR"
)

// Well-known senders.
const (
	SenderAssistant = "AI Assistant"
	SenderSystem    = "System"
)

// ClearAck is the system notice confirming a cleared conversation.
const ClearAck = "Conversation history cleared."

// Message is an incoming chat message.
type Message struct {
	Content string `json:"content"`
}

// Response is the envelope for every outgoing chat message.
type Response struct {
	Content   string      `json:"content"`
	Sender    string      `json:"sender"`
	Timestamp time.Time   `json:"timestamp"`
	Type      MessageType `json:"type"`
}

// NewChatResponse wraps an assistant reply.
func NewChatResponse(content string) Response {
	return Response{
		Content:   content,
		Sender:    SenderAssistant,
		Timestamp: time.Now(),
		Type:      TypeChat,
	}
}

// NewSystemResponse wraps a system notice.
func NewSystemResponse(content string) Response {
	return Response{
		Content:   content,
		Sender:    SenderSystem,
		Timestamp: time.Now(),
		Type:      TypeSystem,
	}
}

// NewErrorResponse wraps a failure notice.
func NewErrorResponse(content string) Response {
	return Response{
		Content:   content,
		Sender:    SenderSystem,
		Timestamp: time.Now(),
		Type:      TypeError,
	}
}
