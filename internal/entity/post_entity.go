package entity

import "time"

type Comment struct {
	Id         string    `json:"id"`
	UserId     string    `json:"userId"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Post struct {
	Id           string    `json:"id"`
	UserId       string    `json:"userId"`
	AuthorName   string    `json:"authorName"`
	AuthorAvatar string    `json:"authorAvatar"`
	Content      string    `json:"content"`
	Image        *string   `json:"image"`
	Likes        []string  `json:"likes"`
	Comments     []Comment `json:"comments"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (p *Post) LikedBy(userId string) bool {
	for _, id := range p.Likes {
		if id == userId {
			return true
		}
	}
	return false
}
