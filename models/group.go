package models

import (
	"strconv"

	"microblog/db"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Title       string `gorm:"type:varchar(200)"`
	Slug        string `gorm:"type:varchar(100);index:uniq_slug,unique"`
	Description string `gorm:"type:text"`
}

const slugMaxLength = 100

// BeforeCreate derives the slug from the title when none was given
func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.Slug != "" {
		return nil
	}
	g.Slug = uniqueSlug(tx, g.Title)
	return nil
}

// uniqueSlug transliterates and truncates the title, then suffixes -2, -3, ...
// until the result is free
func uniqueSlug(tx *gorm.DB, title string) string {
	base := slug.Make(title)
	if base == "" {
		base = "group"
	}
	if len(base) > slugMaxLength {
		base = trimSlug(base, slugMaxLength)
	}
	candidate := base
	for n := 2; slugTaken(tx, candidate); n++ {
		suffix := "-" + strconv.Itoa(n)
		candidate = trimSlug(base, slugMaxLength-len(suffix)) + suffix
	}
	return candidate
}

func trimSlug(s string, max int) string {
	if len(s) <= max {
		return s
	}
	s = s[:max]
	// never end on the separator
	for len(s) > 0 && s[len(s)-1] == '-' {
		s = s[:len(s)-1]
	}
	return s
}

func slugTaken(tx *gorm.DB, candidate string) bool {
	var count int64
	tx.Model(&Group{}).Where("slug = ?", candidate).Count(&count)
	return count > 0
}

func GroupCreate(title, description string) (g Group, err error) {
	g.Title = title
	g.Description = description
	err = db.Instance.Create(&g).Error
	return
}

func GroupBySlug(groupSlug string) (g Group, err error) {
	err = db.Instance.First(&g, "slug = ?", groupSlug).Error
	return
}

func GroupList() (groups []Group, err error) {
	err = db.Instance.Order("title ASC").Find(&groups).Error
	return
}

func GroupByID(id uint64) (g Group, err error) {
	err = db.Instance.First(&g, id).Error
	return
}

// GroupDelete removes the group; its posts survive without a group
func GroupDelete(id uint64) error {
	return db.Instance.Delete(&Group{}, id).Error
}
