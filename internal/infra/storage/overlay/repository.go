package overlay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/internal/infra/storage/kvstore"
)

// Prefix префикс всех ключей Event Overlay Store
const Prefix = "overlay:"

// KVStore интерфейс key/value коллаборатора персистентности
type KVStore = kvstore.Store

// record сериализуемое представление аннотации даты
type record struct {
	Name             *string   `json:"name,omitempty"`
	Price            *float64  `json:"price,omitempty"`
	IsPrivateEvent   bool      `json:"is_private_event"`
	IsSpecialPricing bool      `json:"is_special_pricing"`
	CreatedAt        time.Time `json:"created_at"`
	CreatedBy        int64     `json:"created_by"`
}

// Repository Event Overlay Store: аннотации дат (приватные события,
// специальное ценообразование) поверх key/value хранилища.
// Аннотации не зависят от статусов юнитов и не меняются при их записи.
type Repository struct {
	store KVStore
}

// NewRepository создает новый экземпляр Event Overlay Store
func NewRepository(store KVStore) *Repository {
	return &Repository{store: store}
}

func overlayKey(date time.Time) string {
	return Prefix + date.Format(domain.DateFormat)
}

// Get возвращает аннотацию даты. ErrOverlayNotFound, если её нет.
func (r *Repository) Get(ctx context.Context, date time.Time) (*domain.EventOverlay, error) {
	date = domain.DateOnly(date)
	value, err := r.store.Get(ctx, overlayKey(date))
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, ErrOverlayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get: %v", ErrStore, err)
	}

	var rec record
	if err := json.Unmarshal(value, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &domain.EventOverlay{
		Date:             date,
		Name:             rec.Name,
		Price:            rec.Price,
		IsPrivateEvent:   rec.IsPrivateEvent,
		IsSpecialPricing: rec.IsSpecialPricing,
		CreatedAt:        rec.CreatedAt,
		CreatedBy:        rec.CreatedBy,
	}, nil
}

// Set записывает аннотацию даты (существующая перезаписывается)
func (r *Repository) Set(ctx context.Context, o *domain.EventOverlay) error {
	date := domain.DateOnly(o.Date)

	createdAt := o.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	value, err := json.Marshal(record{
		Name:             o.Name,
		Price:            o.Price,
		IsPrivateEvent:   o.IsPrivateEvent,
		IsSpecialPricing: o.IsSpecialPricing,
		CreatedAt:        createdAt,
		CreatedBy:        o.CreatedBy,
	})
	if err != nil {
		return fmt.Errorf("%w: Set: %v", ErrEncode, err)
	}

	if err := r.store.Set(ctx, overlayKey(date), value); err != nil {
		return fmt.Errorf("%w: Set: %v", ErrStore, err)
	}

	return nil
}

// Remove удаляет аннотацию даты. ErrOverlayNotFound, если её не было.
func (r *Repository) Remove(ctx context.Context, date time.Time) error {
	date = domain.DateOnly(date)
	err := r.store.Delete(ctx, overlayKey(date))
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return ErrOverlayNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Remove: %v", ErrStore, err)
	}
	return nil
}
