package ports

import "github.com/stpnv0/HotelBooker/internal/domain"

type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}
