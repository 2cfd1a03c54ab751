package dto

import (
	"time"

	"onemore-backend/internal/entity"
)

type ConversationSummary struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updatedAt"`
	Preview   string    `json:"preview"`
}

type ListConversationsResponse struct {
	Conversations []ConversationSummary `json:"conversations"`
}

type CreateConversationRequest struct {
	Title string `json:"title"`
}

type CreateConversationResponse struct {
	Conversation entity.Conversation `json:"conversation"`
}

type RenameConversationRequest struct {
	Title string `json:"title"`
}

type RenameConversationResponse struct {
	Conversation entity.Conversation `json:"conversation"`
}

type DeleteConversationResponse struct {
	Deleted            bool   `json:"deleted"`
	NextConversationId string `json:"nextConversationId"`
}

type GetMessagesResponse struct {
	ConversationId string               `json:"conversationId"`
	Messages       []entity.ChatMessage `json:"messages"`
}

type ChatRequest struct {
	Message        string `json:"message" validate:"required"`
	ConversationId string `json:"conversationId"`
}

type ChatResponse struct {
	ConversationId string               `json:"conversationId"`
	Message        entity.ChatMessage   `json:"message"`
	Messages       []entity.ChatMessage `json:"messages"`
}

type MessageSearchHit struct {
	ConversationId    string    `json:"conversationId"`
	ConversationTitle string    `json:"conversationTitle"`
	MessageId         string    `json:"messageId"`
	Role              string    `json:"role"`
	Text              string    `json:"text"`
	CreatedAt         time.Time `json:"createdAt"`
}

type SearchMessagesResponse struct {
	Results []MessageSearchHit `json:"results"`
}
