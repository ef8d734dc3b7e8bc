package reservation

import (
	"github.com/m04kA/wedding-reservation-service/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
// Поддерживает *sql.DB, *dbmetrics.DB и транзакцию из контекста
type DBExecutor = dbmetrics.DBExecutor
