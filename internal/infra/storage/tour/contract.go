package tour

import "github.com/avdmit/HTS-TourService/pkg/txmanager"

// Переиспользуем интерфейс исполнителя запросов из txmanager,
// чтобы репозиторий работал и с *sql.DB, и с транзакцией из контекста
type DBExecutor = txmanager.DBExecutor
