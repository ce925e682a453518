// Package identity реализует сопоставление пары (номер телефона, почта)
// с записью пользователя. Это не граница безопасности, а ключ поиска:
// номер сравнивается точно, почта — без учёта регистра.
package identity

import (
	"errors"
	"strings"

	"github.com/magabrotheeeer/examprep-backend/internal/models"
)

// ErrNotFound возвращается, когда ни одна запись не совпала с парой учётных
// данных. На границе входа не раскрывается, какое именно поле не совпало.
var ErrNotFound = errors.New("user not found")

// Resolve находит пользователя по номеру телефона и почте среди переданных
// записей. Оба значения обрезаются по краям, почта приводится к нижнему
// регистру. Номера уникальны по инварианту хранилища, поэтому возвращается
// первое совпадение.
func Resolve(mobile, email string, users []*models.User) (*models.User, error) {
	mobile = strings.TrimSpace(mobile)
	email = strings.ToLower(strings.TrimSpace(email))

	for _, u := range users {
		if u.Mobile == mobile && strings.ToLower(u.Email) == email {
			return u, nil
		}
	}
	return nil, ErrNotFound
}
