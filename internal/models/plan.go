package models

// DefaultPlanName — тариф, который назначается каждому новому пользователю.
// Строка с таким именем должна существовать в таблице plans (seed-данные).
const DefaultPlanName = "Free"

// Plan представляет тарифный план. Планы создаются миграциями или
// администратором, пользовательские операции их не изменяют.
type Plan struct {
	ID                  int     `json:"id"`                               // Уникальный идентификатор
	Name                string  `json:"name"`                             // Название (уникальное, до 50 символов)
	Description         string  `json:"description,omitempty"`            // Описание, свободный текст
	Price               float64 `json:"price"`                            // Цена в месяц, неотрицательная
	MaxRequestsPerMonth *int    `json:"max_requests_per_month,omitempty"` // Лимит запросов, nil — без лимита
}
