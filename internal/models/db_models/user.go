package db_models

type User struct {
	BaseModel
	Email             string `gorm:"uniqueIndex"`
	PasswordHash      string
	Role              string `gorm:"type:varchar(16);default:user"`
	PreferredLanguage string `gorm:"type:varchar(8);default:en"`
	Theme             Theme  `gorm:"type:varchar(8);default:light"`
	ProfilePhoto      *string
}
