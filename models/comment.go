package models

import "microblog/db"

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	UserID    uint64
	User      User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PostID    uint64
	Post      Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text      string `gorm:"type:text"`
}

func CommentCreate(postID, userID uint64, text string) (c Comment, err error) {
	c.PostID = postID
	c.UserID = userID
	c.Text = text
	err = db.Instance.Create(&c).Error
	return
}

// PostComments returns a post's comments in the order they were written
func PostComments(postID uint64) (comments []Comment, err error) {
	err = db.Instance.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return
}
