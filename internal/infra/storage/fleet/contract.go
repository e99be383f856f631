package fleet

import (
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
