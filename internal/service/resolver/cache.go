package resolver

import (
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Cache снапшот-кэш результатов разрешения статусов по датам.
// Явный объект, внедряемый в resolver; каждая мутирующая операция обязана
// синхронно инвалидировать его (read-after-write в рамках одной операции).
type Cache struct {
	mu     sync.RWMutex
	byDate map[string]map[string]domain.CellStatus
}

// NewCache создает пустой кэш
func NewCache() *Cache {
	return &Cache{byDate: make(map[string]map[string]domain.CellStatus)}
}

func dateKey(date time.Time) string {
	return date.Format(domain.DateFormat)
}

func unitKey(unitID *int64) string {
	if unitID == nil {
		return "day"
	}
	return fmt.Sprintf("unit:%d", *unitID)
}

// Get возвращает закэшированный статус, если он есть
func (c *Cache) Get(date time.Time, unitID *int64) (domain.CellStatus, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	day, ok := c.byDate[dateKey(date)]
	if !ok {
		return "", false
	}
	status, ok := day[unitKey(unitID)]
	return status, ok
}

// Set сохраняет разрешённый статус
func (c *Cache) Set(date time.Time, unitID *int64, status domain.CellStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dk := dateKey(date)
	day, ok := c.byDate[dk]
	if !ok {
		day = make(map[string]domain.CellStatus)
		c.byDate[dk] = day
	}
	day[unitKey(unitID)] = status
}

// InvalidateDate сбрасывает все записи одной даты
func (c *Cache) InvalidateDate(date time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.byDate, dateKey(date))
}

// InvalidateAll полностью очищает кэш
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byDate = make(map[string]map[string]domain.CellStatus)
}
