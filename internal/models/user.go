// Package models содержит доменные структуры сервиса: учётные записи
// пользователей, тарифные планы и типы для приёма данных из JSON-запросов.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// PasswordHash никогда не попадает во внешние представления — наружу
// уходит только UserInfo.
type User struct {
	UID          string    // Уникальный идентификатор, назначается базой данных
	Username     string    // Имя пользователя (уникальное)
	Email        string    // Электронная почта (уникальная)
	FullName     *string   // Полное имя, необязательное поле
	PasswordHash string    // Bcrypt-хэш пароля
	PlanID       int       // Ссылка на тарифный план
	CreatedAt    time.Time // Дата создания, выставляется один раз
	UpdatedAt    time.Time // Дата последнего изменения
}

// DummyUser используется для приёма данных регистрации из JSON-запроса,
// прежде чем конвертировать их в User.
type DummyUser struct {
	Username string `json:"username" validate:"required,min=3,max=50"` // Имя пользователя
	Email    string `json:"email" validate:"required,email"`           // Электронная почта
	Password string `json:"password" validate:"required,min=6"`        // Пароль в открытом виде
	FullName string `json:"full_name" validate:"omitempty,max=100"`    // Полное имя (опционально)
}

// UpdateUser описывает частичное обновление профиля. Поля-указатели
// отличают «поле не передано» (nil) от «передано пустое значение»:
// применяются только явно присутствующие поля. Email, пароль и тариф
// через этот тип изменить нельзя.
type UpdateUser struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	FullName *string `json:"full_name" validate:"omitempty,max=100"`
}

// UserInfo — внешнее представление пользователя. Хэш пароля сюда
// не копируется.
type UserInfo struct {
	UID       string    `json:"uid"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	PlanName  string    `json:"plan_name"`
	CreatedAt time.Time `json:"created_at"`
}
