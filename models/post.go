package models

import (
	"microblog/db"
	"microblog/utils"

	"gorm.io/gorm"
)

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"index"`
	UpdatedAt int64
	UserID    uint64
	User      User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64
	Group     *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Text      string `gorm:"type:text"`
	Image     string `gorm:"type:varchar(200)"`
}

// ThumbPath points at the bounded thumbnail written next to the image
func (p *Post) ThumbPath() string {
	if p.Image == "" {
		return ""
	}
	return p.Image + ".thumb.jpg"
}

func PostCreate(post *Post) error {
	return db.Instance.Create(post).Error
}

// PostUpdate persists text, group and image changes; creation time stays as is
func PostUpdate(post *Post) error {
	return db.Instance.Model(post).Updates(map[string]interface{}{
		"text":     post.Text,
		"group_id": post.GroupID,
		"image":    post.Image,
	}).Error
}

func PostByID(id uint64) (post Post, err error) {
	err = db.Instance.Preload("User").Preload("Group").First(&post, id).Error
	return
}

// Feed builders. Each returns a fresh query that PostPage can count and window.

func AllPosts() *gorm.DB {
	return db.Instance.Model(&Post{})
}

func GroupFeed(groupID uint64) *gorm.DB {
	return db.Instance.Model(&Post{}).Where("group_id = ?", groupID)
}

func AuthorFeed(userID uint64) *gorm.DB {
	return db.Instance.Model(&Post{}).Where("user_id = ?", userID)
}

// FollowFeed selects posts whose author the given user follows
func FollowFeed(userID uint64) *gorm.DB {
	return db.Instance.Model(&Post{}).
		Joins("join follows on follows.author_id = posts.user_id").
		Where("follows.user_id = ?", userID)
}

// PostPage clamps the requested page number against the feed size and loads
// that window, most recent posts first
func PostPage(feed *gorm.DB, requestedPage string, perPage int) (utils.Page, []Post, error) {
	var total int64
	if err := feed.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return utils.Page{}, nil, err
	}
	page := utils.Paginate(total, perPage, requestedPage)
	var posts []Post
	err := feed.Session(&gorm.Session{}).
		Preload("User").Preload("Group").
		Order("posts.created_at DESC, posts.id DESC").
		Offset(page.Offset()).Limit(page.PerPage).
		Find(&posts).Error
	return page, posts, err
}
