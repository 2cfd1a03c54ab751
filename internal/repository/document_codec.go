package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"onemore-backend/internal/constant"
	"onemore-backend/internal/entity"

	"github.com/google/uuid"
)

// rawDocument defers decoding of each top-level collection so a single
// malformed collection (or hand-edited entry) never invalidates the
// whole document. Only a top-level syntax error counts as corruption.
type rawDocument struct {
	Users              json.RawMessage `json:"users"`
	Sessions           json.RawMessage `json:"sessions"`
	Exercises          json.RawMessage `json:"exercises"`
	Foods              json.RawMessage `json:"foods"`
	Records            json.RawMessage `json:"records"`
	WorkoutLogs        json.RawMessage `json:"workoutLogs"`
	DailyNutritionLogs json.RawMessage `json:"dailyNutritionLogs"`
	Posts              json.RawMessage `json:"posts"`
	AiConversations    json.RawMessage `json:"aiConversations"`
}

func decodeDocument(data []byte) (*entity.Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	doc := defaultDocument()
	decodeCollection(raw.Users, &doc.Users)
	decodeCollection(raw.Sessions, &doc.Sessions)
	decodeCollection(raw.Exercises, &doc.Exercises)
	decodeCollection(raw.Foods, &doc.Foods)
	decodeCollection(raw.Records, &doc.Records)
	decodeCollection(raw.WorkoutLogs, &doc.WorkoutLogs)
	decodeCollection(raw.DailyNutritionLogs, &doc.DailyNutritionLogs)
	doc.Posts = decodePosts(raw.Posts)
	doc.AiConversations = decodeConversationMap(raw.AiConversations)

	normalizeDocument(doc)
	return doc, nil
}

// decodeCollection replaces the default only when the raw value decodes
// cleanly; anything else keeps the empty default.
func decodeCollection[T any](raw json.RawMessage, dst *T) {
	if len(raw) == 0 {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return
	}
	*dst = v
}

// rawPost tolerates malformed likes/comments: both are repaired to empty
// arrays rather than rejecting the post.
type rawPost struct {
	Id           string          `json:"id"`
	UserId       string          `json:"userId"`
	AuthorName   string          `json:"authorName"`
	AuthorAvatar string          `json:"authorAvatar"`
	Content      string          `json:"content"`
	Image        *string         `json:"image"`
	Likes        json.RawMessage `json:"likes"`
	Comments     json.RawMessage `json:"comments"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func decodePosts(raw json.RawMessage) []entity.Post {
	posts := []entity.Post{}
	if len(raw) == 0 {
		return posts
	}

	var rawPosts []json.RawMessage
	if err := json.Unmarshal(raw, &rawPosts); err != nil {
		return posts
	}

	for _, item := range rawPosts {
		var rp rawPost
		if err := json.Unmarshal(item, &rp); err != nil {
			continue
		}
		post := entity.Post{
			Id:           rp.Id,
			UserId:       rp.UserId,
			AuthorName:   rp.AuthorName,
			AuthorAvatar: rp.AuthorAvatar,
			Content:      rp.Content,
			Image:        rp.Image,
			Likes:        []string{},
			Comments:     []entity.Comment{},
			CreatedAt:    rp.CreatedAt,
		}
		decodeCollection(rp.Likes, &post.Likes)
		decodeCollection(rp.Comments, &post.Comments)
		if post.Likes == nil {
			post.Likes = []string{}
		}
		if post.Comments == nil {
			post.Comments = []entity.Comment{}
		}
		posts = append(posts, post)
	}
	return posts
}

// conversationShape is the tagged variant a per-user value resolves to,
// exactly once, at load time.
type conversationShape int

const (
	shapeEmpty conversationShape = iota
	shapeLegacyMessages
	shapeConversationList
)

func decodeConversationMap(raw json.RawMessage) map[string][]entity.Conversation {
	out := map[string][]entity.Conversation{}
	if len(raw) == 0 {
		return out
	}

	var perUser map[string]json.RawMessage
	if err := json.Unmarshal(raw, &perUser); err != nil {
		return out
	}

	for userId, value := range perUser {
		out[userId] = resolveConversationList(value)
	}
	return out
}

func resolveConversationList(raw json.RawMessage) []entity.Conversation {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
		return []entity.Conversation{}
	}

	switch classifyConversationList(items[0]) {
	case shapeLegacyMessages:
		return foldLegacyMessages(items)
	case shapeConversationList:
		return decodeConversations(items)
	default:
		return []entity.Conversation{}
	}
}

// classifyConversationList probes the first element: a legacy entry is a
// bare message (role + text, no messages array), anything with a
// messages field is already a conversation.
func classifyConversationList(first json.RawMessage) conversationShape {
	var probe struct {
		Role     *string         `json:"role"`
		Text     *string         `json:"text"`
		Messages json.RawMessage `json:"messages"`
	}
	if err := json.Unmarshal(first, &probe); err != nil {
		return shapeEmpty
	}
	if len(probe.Messages) == 0 && probe.Role != nil && probe.Text != nil {
		return shapeLegacyMessages
	}
	return shapeConversationList
}

// foldLegacyMessages converts the pre-conversation flat message list
// into a single synthesized conversation. The title comes from the first
// user-authored message; timestamps span the earliest and latest message.
func foldLegacyMessages(items []json.RawMessage) []entity.Conversation {
	messages := make([]entity.ChatMessage, 0, len(items))
	for _, item := range items {
		var m entity.ChatMessage
		if err := json.Unmarshal(item, &m); err != nil {
			continue
		}
		if m.Role == "" || m.Text == "" {
			continue
		}
		if m.Id == "" {
			m.Id = uuid.NewString()
		}
		messages = append(messages, m)
	}
	if len(messages) == 0 {
		return []entity.Conversation{}
	}

	createdAt := messages[0].CreatedAt
	updatedAt := messages[0].CreatedAt
	title := ""
	for _, m := range messages {
		if m.CreatedAt.Before(createdAt) {
			createdAt = m.CreatedAt
		}
		if m.CreatedAt.After(updatedAt) {
			updatedAt = m.CreatedAt
		}
		if title == "" && m.Role == entity.ChatMessageRoleUser {
			title = constant.TitleFromMessage(m.Text)
		}
	}
	if title == "" {
		title = constant.DefaultConversationTitle
	}

	return []entity.Conversation{{
		Id:        uuid.NewString(),
		Title:     title,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		Messages:  messages,
	}}
}

func decodeConversations(items []json.RawMessage) []entity.Conversation {
	out := make([]entity.Conversation, 0, len(items))
	for _, item := range items {
		var c entity.Conversation
		if err := json.Unmarshal(item, &c); err != nil {
			continue
		}
		if c.Messages == nil {
			c.Messages = []entity.ChatMessage{}
		}
		out = append(out, c)
	}
	return out
}

// normalizeDocument restores the container invariants: every collection
// non-nil, every post with array-typed likes/comments, every
// conversation list with non-nil message slices.
func normalizeDocument(doc *entity.Document) {
	if doc.Users == nil {
		doc.Users = []entity.User{}
	}
	if doc.Sessions == nil {
		doc.Sessions = map[string]entity.Session{}
	}
	if doc.Exercises == nil {
		doc.Exercises = []entity.Exercise{}
	}
	if doc.Foods == nil {
		doc.Foods = []entity.Food{}
	}
	if doc.Records == nil {
		doc.Records = []entity.Record{}
	}
	if doc.WorkoutLogs == nil {
		doc.WorkoutLogs = []entity.WorkoutLog{}
	}
	if doc.DailyNutritionLogs == nil {
		doc.DailyNutritionLogs = []entity.DailyNutritionLog{}
	}
	if doc.Posts == nil {
		doc.Posts = []entity.Post{}
	}
	for i := range doc.Posts {
		if doc.Posts[i].Likes == nil {
			doc.Posts[i].Likes = []string{}
		}
		if doc.Posts[i].Comments == nil {
			doc.Posts[i].Comments = []entity.Comment{}
		}
	}
	if doc.AiConversations == nil {
		doc.AiConversations = map[string][]entity.Conversation{}
	}
	for userId, list := range doc.AiConversations {
		if list == nil {
			doc.AiConversations[userId] = []entity.Conversation{}
			continue
		}
		for i := range list {
			if list[i].Messages == nil {
				list[i].Messages = []entity.ChatMessage{}
			}
		}
	}
}
