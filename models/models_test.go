package models

import (
	"fmt"
	"sync/atomic"
	"testing"

	"microblog/db"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int64

// setupTestDB points db.Instance at a fresh in-memory SQLite database with
// foreign keys enforced, so cascade rules behave like production
func setupTestDB(t *testing.T) {
	dsn := fmt.Sprintf("file:models_test_%d?mode=memory&cache=shared&_foreign_keys=on",
		atomic.AddInt64(&testDBCounter, 1))
	tdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	db.Instance = tdb
	Init()
	t.Cleanup(func() {
		sqlDB, err := tdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
}

func createTestUser(t *testing.T, username string) User {
	user, err := UserCreate(username, username, username+"@example.com", "password123")
	require.NoError(t, err)
	return user
}

func createTestPost(t *testing.T, user User, groupID *uint64, text string) Post {
	post := Post{UserID: user.ID, GroupID: groupID, Text: text}
	require.NoError(t, PostCreate(&post))
	return post
}
