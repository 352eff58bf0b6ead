package assign_master

import "time"

// Request модель запроса на подбор мастера под конкретный интервал
type Request struct {
	SalonID   int64     // ID салона
	ServiceID int64     // ID услуги
	Start     time.Time // Начало запрошенного интервала
	End       time.Time // Конец запрошенного интервала
	BranchID  *int64    // Фильтр по филиалу (опционально)
}

// Response результат подбора мастера.
// Found=false - валидный результат "никто не доступен", не ошибка:
// вызывающая сторона обязана отличать его от сбоя.
type Response struct {
	Found    bool
	MasterID int64 // заполнен только при Found=true
}
