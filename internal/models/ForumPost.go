package models

type ForumPost struct {
	Base
	Title     string `gorm:"not null" json:"title"`
	Content   string `gorm:"type:text;not null" json:"content"`
	Category  string `gorm:"index;not null" json:"category"`
	Upvotes   int    `gorm:"not null" json:"upvotes"`
	Downvotes int    `gorm:"not null" json:"downvotes"`
	IsPinned  bool   `gorm:"index;not null" json:"isPinned"`

	AuthorID string         `gorm:"type:uuid;index;not null" json:"authorId"`
	Author   *User          `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author,omitempty"`
	Comments []ForumComment `gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CommentCount int64 `gorm:"->;-:migration" json:"-"`
}

// NetVotes is upvotes minus downvotes.
func (p ForumPost) NetVotes() int {
	return p.Upvotes - p.Downvotes
}

type ForumComment struct {
	Base
	Content string `gorm:"type:text;not null" json:"content"`

	PostID   string `gorm:"type:uuid;index;not null" json:"postId"`
	AuthorID string `gorm:"type:uuid;index;not null" json:"authorId"`
	Author   *User  `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author,omitempty"`
}
