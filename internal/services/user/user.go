// Package services содержит бизнес-логику управления учётными записями:
// регистрацию, частичное обновление профиля, смену тарифа и удаление.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/user-plans/internal/lib/password"
	"github.com/magabrotheeeer/user-plans/internal/lib/sl"
	"github.com/magabrotheeeer/user-plans/internal/models"
)

// cacheTTL — время жизни кешированного представления пользователя.
const cacheTTL = time.Hour

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	// При нарушении уникальности возвращает ErrEmailTaken/ErrUsernameTaken.
	CreateUser(ctx context.Context, user models.User) (string, error)
	// GetUser возвращает пользователя по UID или ErrUserNotFound.
	GetUser(ctx context.Context, uid string) (*models.User, error)
	// GetUserInfo возвращает внешнее представление с названием тарифа.
	GetUserInfo(ctx context.Context, uid string) (*models.UserInfo, error)
	// ExistsUserByEmail проверяет, зарегистрирована ли почта.
	ExistsUserByEmail(ctx context.Context, email string) (bool, error)
	// ExistsUserByUsername проверяет, занято ли имя.
	ExistsUserByUsername(ctx context.Context, username string) (bool, error)
	// UpdateUserProfile сохраняет username/full_name, возвращает число строк.
	UpdateUserProfile(ctx context.Context, user models.User) (int64, error)
	// UpdateUserPlan переводит пользователя на тариф, возвращает число строк.
	UpdateUserPlan(ctx context.Context, uid string, planID int) (int64, error)
	// DeleteUser удаляет пользователя, возвращает число строк.
	DeleteUser(ctx context.Context, uid string) (int64, error)
}

// PlanRepository описывает контракт для чтения тарифных планов.
type PlanRepository interface {
	// GetPlanByName возвращает тариф по названию или ErrPlanNotFound.
	GetPlanByName(ctx context.Context, name string) (*models.Plan, error)
	// GetPlanByID возвращает тариф по идентификатору или ErrPlanNotFound.
	GetPlanByID(ctx context.Context, id int) (*models.Plan, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// UserService реализует бизнес-логику работы с пользователями.
type UserService struct {
	users UserRepository
	plans PlanRepository
	cache Cache
	log   *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(users UserRepository, plans PlanRepository, cache Cache, log *slog.Logger) *UserService {
	return &UserService{
		users: users,
		plans: plans,
		cache: cache,
		log:   log,
	}
}

func userCacheKey(uid string) string {
	return fmt.Sprintf("user:%s", uid)
}

// Register создает нового пользователя на тарифе Free.
//
// Порядок шагов: проверка почты, проверка имени, поиск тарифа Free,
// хэширование пароля, запись. Предварительные проверки — быстрый отказ
// для клиента; финальный арбитр уникальности — ограничения базы, поэтому
// ошибка вставки с нарушением уникальности тоже приходит как
// ErrEmailTaken/ErrUsernameTaken. До записи никаких побочных эффектов нет.
func (s *UserService) Register(ctx context.Context, req models.DummyUser) (*models.UserInfo, error) {
	emailTaken, err := s.users.ExistsUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, models.ErrEmailTaken
	}

	usernameTaken, err := s.users.ExistsUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if usernameTaken {
		return nil, models.ErrUsernameTaken
	}

	freePlan, err := s.plans.GetPlanByName(ctx, models.DefaultPlanName)
	if err != nil {
		if errors.Is(err, models.ErrPlanNotFound) {
			// отсутствие seed-данных — проблема деплоя, не клиента
			s.log.Error("default plan is missing in storage", sl.Err(err))
			return nil, models.ErrDefaultPlanMissing
		}
		return nil, err
	}

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
		PlanID:       freePlan.ID,
	}
	if req.FullName != "" {
		user.FullName = &req.FullName
	}

	uid, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	s.log.Info("registered new user", sl.UID(uid))

	info, err := s.users.GetUserInfo(ctx, uid)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(userCacheKey(uid), info, cacheTTL); err != nil {
		s.log.Warn("failed to cache user", slog.String("key", userCacheKey(uid)), sl.Err(err))
	}
	return info, nil
}

// Get возвращает внешнее представление пользователя, используя кеш
// или хранилище.
func (s *UserService) Get(ctx context.Context, uid string) (*models.UserInfo, error) {
	var cached *models.UserInfo
	found, err := s.cache.Get(userCacheKey(uid), &cached)
	if err != nil {
		return nil, err
	}
	if found {
		return cached, nil
	}

	info, err := s.users.GetUserInfo(ctx, uid)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(userCacheKey(uid), info, cacheTTL); err != nil {
		s.log.Warn("failed to cache user", slog.String("key", userCacheKey(uid)), sl.Err(err))
	}
	return info, nil
}

// Update применяет частичное обновление профиля: меняются только поля,
// явно присутствующие в запросе. Почта, пароль, тариф и created_at
// этим путём недостижимы. Смена имени на собственное текущее значение —
// не конфликт.
func (s *UserService) Update(ctx context.Context, uid string, req models.UpdateUser) (*models.UserInfo, error) {
	user, err := s.users.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	if req.Username != nil && *req.Username != user.Username {
		taken, err := s.users.ExistsUserByUsername(ctx, *req.Username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, models.ErrUsernameTaken
		}
		user.Username = *req.Username
	}
	if req.FullName != nil {
		user.FullName = req.FullName
	}

	if _, err := s.users.UpdateUserProfile(ctx, *user); err != nil {
		return nil, err
	}
	s.log.Info("updated user profile", sl.UID(uid))

	if err := s.cache.Invalidate(userCacheKey(uid)); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", userCacheKey(uid)), sl.Err(err))
	}

	return s.users.GetUserInfo(ctx, uid)
}

// ChangePlan переводит пользователя на другой тариф. Биллинга и перерасчётов
// нет — меняется только ссылка на план.
func (s *UserService) ChangePlan(ctx context.Context, uid string, planID int) (*models.UserInfo, error) {
	if _, err := s.users.GetUser(ctx, uid); err != nil {
		return nil, err
	}

	plan, err := s.plans.GetPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.UpdateUserPlan(ctx, uid, plan.ID); err != nil {
		return nil, err
	}
	s.log.Info("changed user plan", sl.UID(uid), slog.Int("plan_id", plan.ID))

	if err := s.cache.Invalidate(userCacheKey(uid)); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", userCacheKey(uid)), sl.Err(err))
	}

	return s.users.GetUserInfo(ctx, uid)
}

// Delete удаляет пользователя безвозвратно. Повторное удаление того же
// UID вернёт ErrUserNotFound.
func (s *UserService) Delete(ctx context.Context, uid string) error {
	count, err := s.users.DeleteUser(ctx, uid)
	if err != nil {
		return err
	}
	if count == 0 {
		return models.ErrUserNotFound
	}
	s.log.Info("deleted user", sl.UID(uid))

	if err := s.cache.Invalidate(userCacheKey(uid)); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", userCacheKey(uid)), sl.Err(err))
	}
	return nil
}

// EmailExists проверяет, зарегистрирована ли почта. Побочных эффектов нет.
func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.users.ExistsUserByEmail(ctx, email)
}

// UsernameExists проверяет, занято ли имя пользователя. Побочных эффектов нет.
func (s *UserService) UsernameExists(ctx context.Context, username string) (bool, error) {
	return s.users.ExistsUserByUsername(ctx, username)
}
