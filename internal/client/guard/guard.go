package guard

import "github.com/iudanet/thalassemiacare/internal/client/session"

// Location описывает раздел приложения
type Location int

const (
	// LocationSign — экраны входа и регистрации
	LocationSign Location = iota
	// LocationHome — защищенный раздел
	LocationHome
)

// String returns a human readable location name
func (l Location) String() string {
	switch l {
	case LocationSign:
		return "sign"
	case LocationHome:
		return "home"
	default:
		return "unknown"
	}
}

// Redirect решает, нужно ли перенаправить пользователя из текущего
// раздела, исходя из состояния сессии. Пока сессия восстанавливается,
// перенаправлений нет. Функция чистая: повторный вызов с тем же
// состоянием дает тот же результат.
func Redirect(state session.State, loc Location) (Location, bool) {
	switch state {
	case session.StateAuthenticated:
		if loc == LocationSign {
			return LocationHome, true
		}
	case session.StateUnauthenticated:
		if loc == LocationHome {
			return LocationSign, true
		}
	}
	return loc, false
}
