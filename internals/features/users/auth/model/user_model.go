package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Username string         `gorm:"size:180;unique;not null" json:"username"`
	Email    string         `gorm:"size:255;unique;not null" json:"email"`
	// hash bcrypt, tidak pernah keluar lewat JSON
	Password string         `gorm:"not null" json:"-"`
	Roles    datatypes.JSON `gorm:"not null" json:"roles"`
	Enabled  bool           `gorm:"not null;default:true" json:"enabled"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate: generate id di sisi aplikasi supaya tidak bergantung
// extension database (gen_random_uuid tidak ada di semua engine).
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
