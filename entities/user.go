package entities

import (
	"time"

	"github.com/google/uuid"
)

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp" json:"updated_at"`
}

type User struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string     `json:"name"`
	Email      string     `gorm:"uniqueIndex" json:"email"`
	Password   string     `json:"-"`
	IsAdmin    bool       `json:"is_admin"`
	IsVerified bool       `json:"is_verified"`
	IsPremium  bool       `json:"is_premium"`
	PremiumAt  *time.Time `json:"premium_at,omitempty"`

	Household *Household `gorm:"foreignKey:OwnerID"`
	Timestamp
}

type Transaction struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID  `json:"user_id"`
	OrderID  string     `gorm:"uniqueIndex" json:"order_id"`
	Amount   float64    `json:"amount"`
	Currency string     `json:"currency"`
	Status   string     `json:"status"` // Pending, Settlement, Expired, Cancelled
	PlanName string     `json:"plan_name"`
	PaidAt   *time.Time `json:"paid_at,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
