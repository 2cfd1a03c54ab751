package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"onemore-backend/internal/constant"
	"onemore-backend/internal/dto"
	"onemore-backend/internal/entity"
	"onemore-backend/internal/pkg/apperror"
	"onemore-backend/internal/pkg/logger"
	"onemore-backend/internal/repository"
	"onemore-backend/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	reply   string
	err     error
	calls   int
	history []llm.Message
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	s.calls++
	s.history = history
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newChatbotService(t *testing.T, provider llm.LLMProvider) (IChatbotService, *repository.DocumentStore) {
	t.Helper()
	store := newTestStore(t)
	svc := NewChatbotService(store, provider, 25*time.Second, logger.NewNop())
	return svc, store
}

func TestListConversationsSeedsDefault(t *testing.T) {
	ctx := context.Background()
	svc, store := newChatbotService(t, nil)
	user := testUser("u1", "Ana")

	res, err := svc.ListConversations(ctx, user)
	require.NoError(t, err)
	require.Len(t, res.Conversations, 1)
	assert.Equal(t, constant.DefaultConversationTitle, res.Conversations[0].Title)
	assert.Equal(t, constant.GreetingMessage("Ana"), res.Conversations[0].Preview)

	// The seeded conversation is persisted, not just projected.
	store.View(func(doc *entity.Document) {
		require.Len(t, doc.AiConversations["u1"], 1)
		require.Len(t, doc.AiConversations["u1"][0].Messages, 1)
		assert.Equal(t, entity.ChatMessageRoleAssistant, doc.AiConversations["u1"][0].Messages[0].Role)
	})
}

func TestCreateConversation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatbotService(t, nil)
	user := testUser("u1", "Ana")

	res, err := svc.CreateConversation(ctx, user, &dto.CreateConversationRequest{Title: "  "})
	require.NoError(t, err)
	assert.Equal(t, constant.NewConversationTitle, res.Conversation.Title)
	require.Len(t, res.Conversation.Messages, 1)
	assert.Equal(t, constant.NewThreadMessage("Ana"), res.Conversation.Messages[0].Text)

	named, err := svc.CreateConversation(ctx, user, &dto.CreateConversationRequest{Title: "Cutting plan"})
	require.NoError(t, err)
	assert.Equal(t, "Cutting plan", named.Conversation.Title)

	// Newest thread goes to the front of the list.
	list, err := svc.ListConversations(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, list.Conversations)
	assert.Equal(t, named.Conversation.Id, list.Conversations[0].Id)
}

func TestRenameConversation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatbotService(t, nil)
	user := testUser("u1", "Ana")

	created, err := svc.CreateConversation(ctx, user, &dto.CreateConversationRequest{Title: "Old"})
	require.NoError(t, err)

	res, err := svc.RenameConversation(ctx, user, created.Conversation.Id, &dto.RenameConversationRequest{Title: "New name"})
	require.NoError(t, err)
	assert.Equal(t, "New name", res.Conversation.Title)

	_, err = svc.RenameConversation(ctx, user, created.Conversation.Id, &dto.RenameConversationRequest{Title: "   "})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperror.From(err).Code)

	_, err = svc.RenameConversation(ctx, user, "missing-id", &dto.RenameConversationRequest{Title: "X"})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperror.From(err).Code)
}

func TestDeleteConversationReseedsWhenLastOneGoes(t *testing.T) {
	ctx := context.Background()
	svc, store := newChatbotService(t, nil)
	user := testUser("u1", "Ana")

	list, err := svc.ListConversations(ctx, user)
	require.NoError(t, err)
	require.Len(t, list.Conversations, 1)
	onlyId := list.Conversations[0].Id

	res, err := svc.DeleteConversation(ctx, user, onlyId)
	require.NoError(t, err)
	assert.True(t, res.Deleted)
	assert.NotEmpty(t, res.NextConversationId)
	assert.NotEqual(t, onlyId, res.NextConversationId)

	// The list never goes empty: a fresh default takes its place.
	store.View(func(doc *entity.Document) {
		require.Len(t, doc.AiConversations["u1"], 1)
		assert.Equal(t, res.NextConversationId, doc.AiConversations["u1"][0].Id)
		assert.Equal(t, constant.DefaultConversationTitle, doc.AiConversations["u1"][0].Title)
	})

	_, err = svc.DeleteConversation(ctx, user, "missing-id")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperror.From(err).Code)
}

func TestGetMessagesFallsBackToFirstConversation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatbotService(t, nil)
	user := testUser("u1", "Ana")

	res, err := svc.GetMessages(ctx, user, "")
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, constant.GreetingMessage("Ana"), res.Messages[0].Text)

	// Unknown ids resolve to the first conversation instead of failing.
	byUnknown, err := svc.GetMessages(ctx, user, "not-a-real-id")
	require.NoError(t, err)
	assert.Equal(t, res.ConversationId, byUnknown.ConversationId)
}

func TestChatWithoutProviderUsesLocalCoach(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatbotService(t, nil)
	user := testUser("u1", "Ana")

	res, err := svc.Chat(ctx, user, &dto.ChatRequest{Message: "How's my sleep and recovery?"})
	require.NoError(t, err)
	assert.Equal(t, entity.ChatMessageRoleAssistant, res.Message.Role)
	assert.Contains(t, res.Message.Text, "Recovery baseline")

	// Greeting + user turn + assistant reply.
	require.Len(t, res.Messages, 3)
	assert.Equal(t, "How's my sleep and recovery?", res.Messages[1].Text)
}

func TestChatRetitlesYoungDefaultConversation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatbotService(t, nil)
	user := testUser("u1", "Ana")

	longMessage := "please build me a twelve week hypertrophy block"
	res, err := svc.Chat(ctx, user, &dto.ChatRequest{Message: longMessage})
	require.NoError(t, err)

	list, err := svc.ListConversations(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, list.Conversations)

	title := list.Conversations[0].Title
	assert.Equal(t, constant.TitleFromMessage(longMessage), title)
	assert.LessOrEqual(t, len([]rune(title)), constant.ConversationTitleLength)

	// A second exchange pushes the thread past the retitle window, so the
	// title sticks even though it no longer matches the latest message.
	_, err = svc.Chat(ctx, user, &dto.ChatRequest{Message: "different topic entirely", ConversationId: res.ConversationId})
	require.NoError(t, err)

	list, err = svc.ListConversations(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, title, list.Conversations[0].Title)
}

func TestChatDoesNotRetitleCustomTitledConversation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatbotService(t, nil)
	user := testUser("u1", "Ana")

	created, err := svc.CreateConversation(ctx, user, &dto.CreateConversationRequest{Title: "My plan"})
	require.NoError(t, err)

	_, err = svc.Chat(ctx, user, &dto.ChatRequest{Message: "leg day ideas", ConversationId: created.Conversation.Id})
	require.NoError(t, err)

	list, err := svc.ListConversations(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "My plan", list.Conversations[0].Title)
}

func TestChatUsesRemoteProviderWhenConfigured(t *testing.T) {
	ctx := context.Background()
	provider := &stubProvider{reply: "Remote coach says hi."}
	svc, _ := newChatbotService(t, provider)
	user := testUser("u1", "Ana")

	res, err := svc.Chat(ctx, user, &dto.ChatRequest{Message: "what should I train today?"})
	require.NoError(t, err)
	assert.Equal(t, "Remote coach says hi.", res.Message.Text)
	assert.Equal(t, 1, provider.calls)

	// Persona and profile lead the prompt; the new turn closes it.
	require.GreaterOrEqual(t, len(provider.history), 3)
	assert.Equal(t, "system", provider.history[0].Role)
	assert.Equal(t, constant.CoachSystemPrompt, provider.history[0].Content)
	assert.Equal(t, "system", provider.history[1].Role)
	assert.Equal(t, constant.UserProfilePrompt("Ana"), provider.history[1].Content)
	last := provider.history[len(provider.history)-1]
	assert.Equal(t, "user", last.Role)
	assert.Equal(t, "what should I train today?", last.Content)
}

func TestChatFallsBackWhenProviderFails(t *testing.T) {
	ctx := context.Background()
	provider := &stubProvider{err: errors.New("upstream 503")}
	svc, _ := newChatbotService(t, provider)
	user := testUser("u1", "Ana")

	res, err := svc.Chat(ctx, user, &dto.ChatRequest{Message: "diet tips?"})
	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
	assert.Contains(t, res.Message.Text, "protein")
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatbotService(t, nil)

	_, err := svc.Chat(ctx, testUser("u1", "Ana"), &dto.ChatRequest{Message: "   "})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperror.From(err).Code)
}

func TestChatHistoryCapsReplayedTurns(t *testing.T) {
	user := testUser("u1", "Ana")

	history := make([]entity.ChatMessage, 0, 20)
	for i := 0; i < 20; i++ {
		role := entity.ChatMessageRoleUser
		if i%2 == 1 {
			role = entity.ChatMessageRoleAssistant
		}
		history = append(history, entity.ChatMessage{Id: "m", Role: role, Text: "turn"})
	}
	history = append(history, entity.ChatMessage{Id: "blank", Role: entity.ChatMessageRoleUser, Text: "   "})

	messages := buildChatHistory(user, history, "new question")

	// 2 system prompts + at most MaxHistoryMessages turns + the new turn;
	// the blank turn is dropped.
	assert.LessOrEqual(t, len(messages), 2+constant.MaxHistoryMessages+1)
	for _, m := range messages {
		assert.NotEqual(t, "", strings.TrimSpace(m.Content))
	}
	assert.Equal(t, "new question", messages[len(messages)-1].Content)
}

func TestSearchMessages(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatbotService(t, nil)
	user := testUser("u1", "Ana")

	_, err := svc.Chat(ctx, user, &dto.ChatRequest{Message: "Thinking about LEG day volume"})
	require.NoError(t, err)

	res, err := svc.SearchMessages(ctx, user, "  leg DAY  ")
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, "Thinking about LEG day volume", res.Results[0].Text)
	assert.NotEmpty(t, res.Results[0].ConversationId)
	assert.NotEmpty(t, res.Results[0].ConversationTitle)

	empty, err := svc.SearchMessages(ctx, user, "   ")
	require.NoError(t, err)
	assert.Empty(t, empty.Results)

	miss, err := svc.SearchMessages(ctx, user, "no such phrase anywhere")
	require.NoError(t, err)
	assert.Empty(t, miss.Results)
}

func TestFallbackReplyKeywordPriority(t *testing.T) {
	cases := []struct {
		input   string
		keyword string
	}{
		{"squat depth check", "leg day"},
		{"what about my meal timing", "protein"},
		{"How's my sleep and recovery?", "Recovery baseline"},
		{"build me a weekly plan", "Weekly template"},
		{"anything else", "progressive overload"},
	}
	for _, tc := range cases {
		reply := fallbackReply(tc.input)
		assert.NotEmpty(t, reply)
		assert.Contains(t, reply, tc.keyword, "input=%q", tc.input)
	}

	// Same input, same answer.
	assert.Equal(t, fallbackReply("leg day"), fallbackReply("leg day"))
}
