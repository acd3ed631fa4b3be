package db

import (
	"microblog/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

func Init() {
	var err error
	gormConfig := &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}
	if config.MYSQL_DSN != "" {
		Instance, err = gorm.Open(mysql.Open(config.MYSQL_DSN), gormConfig)
	} else {
		Instance, err = gorm.Open(sqlite.Open(config.SQLITE_FILE), gormConfig)
	}
	if err != nil || Instance == nil {
		panic(err)
	}
}
