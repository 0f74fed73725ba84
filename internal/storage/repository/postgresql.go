// Package repository реализует хранилище данных на основе PostgreSQL
// для управления пользователями и тарифными планами. Уникальные
// ограничения таблицы users служат финальным арбитром уникальности:
// нарушение транслируется в доменную ошибку по имени ограничения.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями и тарифами.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// Ready проверяет готовность базы данных: таблицы users и plans
// должны существовать после применения миграций.
func (s *Storage) Ready() error {
	var exists bool
	err := s.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'users'
    ) AND EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'plans'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required tables users/plans missing or query error: %w", err)
	}
	return nil
}
