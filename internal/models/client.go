package models

import "time"

// Cliente do CRM, sem login próprio, sempre vinculado a um tenant.
// A coluna "user_id" é herança do schema legado: semanticamente é o tenant.
type Client struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	TenantID uint `gorm:"column:user_id;not null;index" json:"tenant_id"`

	Name string `gorm:"size:100;not null" json:"name"`

	// Campos opcionais como ponteiros: ausente vira NULL no banco,
	// nunca string vazia.
	Phone     *string `gorm:"size:20" json:"phone"`
	Email     *string `gorm:"size:100" json:"email"`
	Notes     *string `gorm:"type:text" json:"notes"`
	BirthDate *string `gorm:"column:birth_date;type:date" json:"birth_date"`
	Gender    *string `gorm:"size:20" json:"gender"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
