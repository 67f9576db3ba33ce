package cellstatus

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Prefix префикс всех ключей Cell Status Store
const Prefix = "cell:"

// cellKey собирает ключ вида cell:<date>:<unit_id>:<part>.
// Дата идет первой, чтобы ListByPrefix по дате выбирал все юниты дня.
func cellKey(date time.Time, unitID int64, part domain.DayPart) string {
	return fmt.Sprintf("%s%s:%d:%s", Prefix, date.Format(domain.DateFormat), unitID, part)
}

// datePrefix префикс всех ключей одной даты
func datePrefix(date time.Time) string {
	return fmt.Sprintf("%s%s:", Prefix, date.Format(domain.DateFormat))
}

// parseCellKey разбирает ключ обратно в (date, unit_id, part)
func parseCellKey(key string) (time.Time, int64, domain.DayPart, error) {
	rest, ok := strings.CutPrefix(key, Prefix)
	if !ok {
		return time.Time{}, 0, "", fmt.Errorf("%w: unexpected key %q", ErrDecode, key)
	}

	parts := strings.SplitN(rest, ":", 3)
	if len(parts) != 3 {
		return time.Time{}, 0, "", fmt.Errorf("%w: malformed key %q", ErrDecode, key)
	}

	date, err := time.ParseInLocation(domain.DateFormat, parts[0], time.UTC)
	if err != nil {
		return time.Time{}, 0, "", fmt.Errorf("%w: bad date in key %q: %v", ErrDecode, key, err)
	}

	unitID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, 0, "", fmt.Errorf("%w: bad unit id in key %q: %v", ErrDecode, key, err)
	}

	part := domain.DayPart(parts[2])
	if !part.IsValid() {
		return time.Time{}, 0, "", fmt.Errorf("%w: bad day part in key %q", ErrDecode, key)
	}

	return date, unitID, part, nil
}
