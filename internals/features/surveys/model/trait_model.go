// internals/features/surveys/model/trait_model.go
package model

import "time"

// Field bersama antar entity, dipakai lewat komposisi (embed by value),
// bukan inheritance.

// Timestamps: kolom created/updated otomatis.
type Timestamps struct {
	Created time.Time `gorm:"column:created;autoCreateTime" json:"created"`
	Updated time.Time `gorm:"column:updated;autoUpdateTime" json:"updated"`
}

// BaseEntity: pasangan order/active yang dishare Question dan Response.
type BaseEntity struct {
	Order  int  `gorm:"column:order" json:"order"`
	Active bool `gorm:"column:is_active;not null;default:false" json:"active"`
}
