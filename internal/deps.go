package internal

import (
	"contacts-api/config"
	"contacts-api/internal/service"

	"gorm.io/gorm"
)

// Deps is the dependency container handed to every handler.
type Deps struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Users    *service.UserService
	Contacts *service.ContactService
	Mail     *service.MailQueue
}
