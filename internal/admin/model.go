package admin

import (
	"time"

	"gorm.io/gorm"
)

// Admin é quem atende as fichas. Nome é o que fica gravado em admin_responsavel.
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"size:255;not null;unique" json:"nome"`
	Email     string    `gorm:"size:255;not null;unique" json:"email"`
	Senha     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Admin) TableName() string {
	return "admins"
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Admin{})
}
