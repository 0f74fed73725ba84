package models

import "errors"

// Ошибки доменного уровня. Хранилище и сервисы возвращают их (возможно,
// обёрнутыми через %w), HTTP-обработчики сопоставляют через errors.Is
// и переводят в код ответа.
var (
	// ErrUserNotFound — пользователь с таким идентификатором не существует.
	ErrUserNotFound = errors.New("user not found")

	// ErrPlanNotFound — тарифный план с таким идентификатором не существует.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrEmailTaken — электронная почта уже зарегистрирована.
	// Возвращается как предварительной проверкой, так и при нарушении
	// уникального ограничения users_email_key.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUsernameTaken — имя пользователя уже занято.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrDefaultPlanMissing — в базе нет тарифа Free. Это не ошибка
	// пользователя, а отсутствие seed-данных при деплое.
	ErrDefaultPlanMissing = errors.New("default plan is missing")
)
