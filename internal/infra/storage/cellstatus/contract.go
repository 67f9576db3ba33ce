package cellstatus

import (
	"github.com/m04kA/SMC-CalendarService/internal/infra/storage/kvstore"
)

// KVStore интерфейс key/value коллаборатора персистентности
type KVStore = kvstore.Store
