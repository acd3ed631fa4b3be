package models

import (
	"microblog/db"

	"gorm.io/gorm/clause"
)

// Follow is a directed edge from a follower to a followed author.
// The pair is unique; a second identical insert is absorbed by the index.
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64 `gorm:"index:uniq_follow,priority:1,unique"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"index:uniq_follow,priority:2,unique"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FollowCreate adds the edge if missing. A concurrent duplicate lands on the
// unique index and is treated as done, not as an error.
func FollowCreate(userID, authorID uint64) error {
	follow := Follow{UserID: userID, AuthorID: authorID}
	return db.Instance.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&follow).Error
}

// FollowDelete removes the edge; deleting a missing edge is a no-op
func FollowDelete(userID, authorID uint64) error {
	return db.Instance.
		Where("user_id = ? and author_id = ?", userID, authorID).
		Delete(&Follow{}).Error
}

func Following(userID, authorID uint64) bool {
	var count int64
	db.Instance.Model(&Follow{}).
		Where("user_id = ? and author_id = ?", userID, authorID).
		Count(&count)
	return count > 0
}
