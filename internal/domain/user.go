package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser       Role = "user"
	RoleHotelOwner Role = "hotelOwner"
)

// MaxRecentCities ограничивает историю поиска пользователя.
const MaxRecentCities = 5

type User struct {
	ID                   string    `json:"id"`
	FullName             string    `json:"full_name"`
	Email                string    `json:"email"`
	PasswordHash         string    `json:"-"`
	Image                string    `json:"image"`
	Role                 Role      `json:"role"`
	TelegramChatID       *int64    `json:"telegram_chat_id"`
	RecentSearchedCities []string  `json:"recent_searched_cities"`
	CreatedAt            time.Time `json:"created_at"`
}

// RememberCity puts city in front of the search history, dropping
// case-insensitive duplicates and trimming to MaxRecentCities.
func (u *User) RememberCity(city string) {
	cities := make([]string, 0, MaxRecentCities)
	cities = append(cities, city)
	for _, c := range u.RecentSearchedCities {
		if strings.EqualFold(c, city) {
			continue
		}
		cities = append(cities, c)
	}
	if len(cities) > MaxRecentCities {
		cities = cities[:MaxRecentCities]
	}
	u.RecentSearchedCities = cities
}

type RegisterUserInput struct {
	FullName       string `validate:"required,max=120"`
	Email          string `validate:"required,email"`
	Password       string `validate:"required,min=6"`
	Image          string `validate:"omitempty,url"`
	TelegramChatID *int64
}

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type AuthResult struct {
	Token string
	User  *User
}

// Identity is the authenticated caller extracted from a bearer token.
type Identity struct {
	UserID string
	Email  string
	Role   Role
}
