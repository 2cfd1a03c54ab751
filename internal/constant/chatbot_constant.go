package constant

import (
	"fmt"
	"strings"
)

const (
	DefaultConversationTitle = "General Coaching"
	NewConversationTitle     = "New Chat"

	// CoachSystemPrompt fixes the assistant persona and safety posture
	// for every remote generation call.
	CoachSystemPrompt = "You are OneMore AI, a practical fitness coach. Give clear, safe, concise training and nutrition guidance. " +
		"If details are missing, ask 1-2 focused follow-up questions. Avoid medical diagnosis."

	// MaxHistoryMessages caps how many prior turns are replayed to the
	// remote model.
	MaxHistoryMessages = 12

	// ConversationTitleLength is how much of the user's message becomes
	// an automatic conversation title.
	ConversationTitleLength = 28

	// AutoTitleMessageLimit: a conversation is only auto-retitled while
	// it still carries the default title and holds at most this many
	// messages. Product heuristic, kept as-is.
	AutoTitleMessageLimit = 4

	// MaxSearchResults caps conversation search hits.
	MaxSearchResults = 100
)

func GreetingMessage(userName string) string {
	return fmt.Sprintf("Hi %s, I am your OneMore AI coach. Ask me about training, recovery, or nutrition.", userName)
}

func NewThreadMessage(userName string) string {
	return fmt.Sprintf("Started a new plan thread, %s. What is your training goal?", userName)
}

func UserProfilePrompt(userName string) string {
	if userName == "" {
		userName = "User"
	}
	return fmt.Sprintf("User profile: name=%s, app=OneMore fitness assistant.", userName)
}

// TitleFromMessage derives an automatic conversation title from the
// leading runes of a user message.
func TitleFromMessage(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) > ConversationTitleLength {
		runes = runes[:ConversationTitleLength]
	}
	return string(runes)
}
