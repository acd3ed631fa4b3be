package models

import (
	"errors"

	"microblog/db"
	"microblog/utils"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Username  string `gorm:"type:varchar(150);index:uniq_username,unique"`
	Name      string `gorm:"type:varchar(100)"`
	Email     string `gorm:"type:varchar(150);index:uniq_email,unique"`
	Password  string `gorm:"type:varchar(128)"`
	PassSalt  string `gorm:"type:varchar(200)"`
}

const saltSize = 60

func UserCreate(username, name, email, plainTextPassword string) (u User, err error) {
	u.Username = username
	u.Name = name
	u.Email = email
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
	err = db.Instance.Create(&u).Error
	return
}

func UserLogin(username, plainTextPassword string) (u User, err error) {
	if db.Instance.First(&u, "username = ?", username).Error != nil {
		return User{}, errors.New("invalid username or password")
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, errors.New("invalid username or password")
	}
	return u, nil
}

func UserByUsername(username string) (u User, err error) {
	err = db.Instance.First(&u, "username = ?", username).Error
	return
}

// PostCount returns the number of posts authored by the user
func (u *User) PostCount() int64 {
	var count int64
	db.Instance.Model(&Post{}).Where("user_id = ?", u.ID).Count(&count)
	return count
}

// UserDelete removes the account; posts and comments go with it
func UserDelete(id uint64) error {
	return db.Instance.Delete(&User{}, id).Error
}
