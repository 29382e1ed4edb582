package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string    `gorm:"primaryKey;type:char(36)"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:ux_users_email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(32);not null;default:'staff'"`
	CreatedAt    time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt    time.Time `gorm:"type:datetime(3);not null"`
}

func (User) TableName() string { return "users" }

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) GetByEmail(email string) (*User, error) {
	var u User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) GetByID(id string) (*User, error) {
	var u User
	if err := r.db.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) Create(u *User) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return r.db.Create(u).Error
}
