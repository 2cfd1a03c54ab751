package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"onemore-backend/internal/constant"
	"onemore-backend/internal/dto"
	"onemore-backend/internal/entity"
	"onemore-backend/internal/pkg/apperror"
	"onemore-backend/internal/pkg/logger"
	"onemore-backend/internal/repository"
	"onemore-backend/pkg/llm"

	"github.com/google/uuid"
)

type IChatbotService interface {
	ListConversations(ctx context.Context, user entity.User) (*dto.ListConversationsResponse, error)
	CreateConversation(ctx context.Context, user entity.User, req *dto.CreateConversationRequest) (*dto.CreateConversationResponse, error)
	RenameConversation(ctx context.Context, user entity.User, conversationId string, req *dto.RenameConversationRequest) (*dto.RenameConversationResponse, error)
	DeleteConversation(ctx context.Context, user entity.User, conversationId string) (*dto.DeleteConversationResponse, error)
	GetMessages(ctx context.Context, user entity.User, conversationId string) (*dto.GetMessagesResponse, error)
	Chat(ctx context.Context, user entity.User, req *dto.ChatRequest) (*dto.ChatResponse, error)
	SearchMessages(ctx context.Context, user entity.User, query string) (*dto.SearchMessagesResponse, error)
}

type chatbotService struct {
	store       *repository.DocumentStore
	llmProvider llm.LLMProvider // nil when remote generation is disabled
	llmTimeout  time.Duration
	log         logger.ILogger
}

func NewChatbotService(store *repository.DocumentStore, llmProvider llm.LLMProvider, llmTimeout time.Duration, log logger.ILogger) IChatbotService {
	return &chatbotService{
		store:       store,
		llmProvider: llmProvider,
		llmTimeout:  llmTimeout,
		log:         log,
	}
}

// seedConversation builds the default conversation every user falls back
// to, greeting them by name. This is the invariant-restoring constructor
// behind "a conversation list is never empty".
func seedConversation(user entity.User) entity.Conversation {
	now := time.Now()
	return entity.Conversation{
		Id:        uuid.NewString(),
		Title:     constant.DefaultConversationTitle,
		CreatedAt: now,
		UpdatedAt: now,
		Messages: []entity.ChatMessage{{
			Id:        uuid.NewString(),
			Role:      entity.ChatMessageRoleAssistant,
			Text:      constant.GreetingMessage(user.Name),
			CreatedAt: now,
		}},
	}
}

// conversationsFor returns the user's list, repairing an absent or empty
// one with the default conversation. Reports whether it changed the
// document.
func conversationsFor(doc *entity.Document, user entity.User) ([]entity.Conversation, bool) {
	list, ok := doc.AiConversations[user.Id]
	changed := false
	if !ok || list == nil {
		list = []entity.Conversation{}
		changed = true
	}
	if len(list) == 0 {
		list = append(list, seedConversation(user))
		changed = true
	}
	if changed {
		doc.AiConversations[user.Id] = list
	}
	return list, changed
}

func findConversation(list []entity.Conversation, conversationId string) *entity.Conversation {
	for i := range list {
		if list[i].Id == conversationId {
			return &list[i]
		}
	}
	return nil
}

func (s *chatbotService) ListConversations(ctx context.Context, user entity.User) (*dto.ListConversationsResponse, error) {
	var summaries []dto.ConversationSummary
	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		list, changed := conversationsFor(doc, user)

		sorted := make([]entity.Conversation, len(list))
		copy(sorted, list)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
		})

		summaries = make([]dto.ConversationSummary, 0, len(sorted))
		for i := range sorted {
			preview := ""
			if last := sorted[i].LastMessage(); last != nil {
				preview = last.Text
			}
			summaries = append(summaries, dto.ConversationSummary{
				Id:        sorted[i].Id,
				Title:     sorted[i].Title,
				UpdatedAt: sorted[i].UpdatedAt,
				Preview:   preview,
			})
		}
		return changed, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.ListConversationsResponse{Conversations: summaries}, nil
}

func (s *chatbotService) CreateConversation(ctx context.Context, user entity.User, req *dto.CreateConversationRequest) (*dto.CreateConversationResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = constant.NewConversationTitle
	}

	now := time.Now()
	conversation := entity.Conversation{
		Id:        uuid.NewString(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
		Messages: []entity.ChatMessage{{
			Id:        uuid.NewString(),
			Role:      entity.ChatMessageRoleAssistant,
			Text:      constant.NewThreadMessage(user.Name),
			CreatedAt: now,
		}},
	}

	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		list, _ := conversationsFor(doc, user)
		// Most-recent-first ordering: new threads go to the front.
		doc.AiConversations[user.Id] = append([]entity.Conversation{conversation}, list...)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateConversationResponse{Conversation: conversation}, nil
}

func (s *chatbotService) RenameConversation(ctx context.Context, user entity.User, conversationId string, req *dto.RenameConversationRequest) (*dto.RenameConversationResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperror.Validation("Conversation title cannot be empty.")
	}

	var renamed entity.Conversation
	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		list, changed := conversationsFor(doc, user)
		conversation := findConversation(list, conversationId)
		if conversation == nil {
			return changed, apperror.NotFound("Conversation not found.")
		}
		conversation.Title = title
		conversation.UpdatedAt = time.Now()
		renamed = *conversation
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.RenameConversationResponse{Conversation: renamed}, nil
}

func (s *chatbotService) DeleteConversation(ctx context.Context, user entity.User, conversationId string) (*dto.DeleteConversationResponse, error) {
	var nextId string
	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		list, changed := conversationsFor(doc, user)

		idx := -1
		for i := range list {
			if list[i].Id == conversationId {
				idx = i
				break
			}
		}
		if idx < 0 {
			return changed, apperror.NotFound("Conversation not found.")
		}

		list = append(list[:idx], list[idx+1:]...)
		if len(list) == 0 {
			list = append(list, seedConversation(user))
		}
		doc.AiConversations[user.Id] = list
		nextId = list[0].Id
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.DeleteConversationResponse{Deleted: true, NextConversationId: nextId}, nil
}

func (s *chatbotService) GetMessages(ctx context.Context, user entity.User, conversationId string) (*dto.GetMessagesResponse, error) {
	var res *dto.GetMessagesResponse
	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		list, changed := conversationsFor(doc, user)
		conversation := &list[0]
		if conversationId != "" {
			if found := findConversation(list, conversationId); found != nil {
				conversation = found
			}
		}
		messages := make([]entity.ChatMessage, len(conversation.Messages))
		copy(messages, conversation.Messages)
		res = &dto.GetMessagesResponse{ConversationId: conversation.Id, Messages: messages}
		return changed, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Chat appends the user's message, produces an assistant reply (remote
// when configured, local fallback on any remote failure), and persists
// both turns. An unknown conversation id falls back to the user's first
// conversation rather than failing.
func (s *chatbotService) Chat(ctx context.Context, user entity.User, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, apperror.Validation("Message cannot be empty.")
	}

	userMessage := entity.ChatMessage{
		Id:        uuid.NewString(),
		Role:      entity.ChatMessageRoleUser,
		Text:      text,
		CreatedAt: time.Now(),
	}

	// Phase 1: append the user turn and snapshot the prior history. The
	// remote call must not run under the document lock.
	var targetId string
	var history []entity.ChatMessage
	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		list, _ := conversationsFor(doc, user)
		conversation := &list[0]
		if req.ConversationId != "" {
			if found := findConversation(list, req.ConversationId); found != nil {
				conversation = found
			}
		}

		history = make([]entity.ChatMessage, len(conversation.Messages))
		copy(history, conversation.Messages)

		conversation.Messages = append(conversation.Messages, userMessage)
		conversation.UpdatedAt = userMessage.CreatedAt
		targetId = conversation.Id
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	assistantText := s.generateReply(ctx, user, history, text)

	assistantMessage := entity.ChatMessage{
		Id:        uuid.NewString(),
		Role:      entity.ChatMessageRoleAssistant,
		Text:      assistantText,
		CreatedAt: time.Now(),
	}

	// Phase 2: append the reply and retitle while the thread is young.
	var res *dto.ChatResponse
	err = s.store.Update(func(doc *entity.Document) (bool, error) {
		list, _ := conversationsFor(doc, user)
		conversation := findConversation(list, targetId)
		if conversation == nil {
			// Deleted mid-flight; land the exchange in the first thread.
			conversation = &list[0]
			conversation.Messages = append(conversation.Messages, userMessage)
		}

		conversation.Messages = append(conversation.Messages, assistantMessage)
		conversation.UpdatedAt = assistantMessage.CreatedAt

		if conversation.Title == constant.DefaultConversationTitle && len(conversation.Messages) <= constant.AutoTitleMessageLimit {
			conversation.Title = constant.TitleFromMessage(text)
		}

		messages := make([]entity.ChatMessage, len(conversation.Messages))
		copy(messages, conversation.Messages)
		res = &dto.ChatResponse{
			ConversationId: conversation.Id,
			Message:        assistantMessage,
			Messages:       messages,
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// generateReply asks the remote model when one is configured and falls
// back to the local coach on any failure. Remote errors are logged and
// swallowed; the caller always gets usable text.
func (s *chatbotService) generateReply(ctx context.Context, user entity.User, history []entity.ChatMessage, text string) string {
	if s.llmProvider == nil {
		return fallbackReply(text)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	reply, err := s.llmProvider.Chat(callCtx, buildChatHistory(user, history, text))
	if err != nil {
		s.log.Warn("chatbot", "remote generation failed, using local fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return fallbackReply(text)
	}
	return reply
}

// buildChatHistory maps the conversation onto the two-role remote
// schema: persona, profile note, the last non-empty turns, then the new
// user turn.
func buildChatHistory(user entity.User, history []entity.ChatMessage, text string) []llm.Message {
	messages := []llm.Message{
		{Role: "system", Content: constant.CoachSystemPrompt},
		{Role: "system", Content: constant.UserProfilePrompt(user.Name)},
	}

	recent := history
	if len(recent) > constant.MaxHistoryMessages {
		recent = recent[len(recent)-constant.MaxHistoryMessages:]
	}
	for _, m := range recent {
		if strings.TrimSpace(m.Text) == "" {
			continue
		}
		role := "user"
		if m.Role == entity.ChatMessageRoleAssistant {
			role = "assistant"
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Text})
	}

	return append(messages, llm.Message{Role: "user", Content: text})
}

func (s *chatbotService) SearchMessages(ctx context.Context, user entity.User, query string) (*dto.SearchMessagesResponse, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	results := []dto.MessageSearchHit{}
	if q == "" {
		return &dto.SearchMessagesResponse{Results: results}, nil
	}

	err := s.store.Update(func(doc *entity.Document) (bool, error) {
		list, changed := conversationsFor(doc, user)
		for i := range list {
			for _, m := range list[i].Messages {
				if len(results) >= constant.MaxSearchResults {
					return changed, nil
				}
				if strings.Contains(strings.ToLower(m.Text), q) {
					results = append(results, dto.MessageSearchHit{
						ConversationId:    list[i].Id,
						ConversationTitle: list[i].Title,
						MessageId:         m.Id,
						Role:              m.Role,
						Text:              m.Text,
						CreatedAt:         m.CreatedAt,
					})
				}
			}
		}
		return changed, nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.SearchMessagesResponse{Results: results}, nil
}
