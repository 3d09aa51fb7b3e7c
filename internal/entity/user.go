package entity

type User struct {
	Base

	Username string `gorm:"unique"`
	Password string
	Email    string `gorm:"unique"`
	FullName string
	Country  string

	IsAdmin                bool `gorm:"default:false"`
	SubscribedToNewsletter bool `gorm:"default:false"`
}
