package get_group_slots

import "time"

// Request модель запроса на получение слотов салона по услуге
type Request struct {
	SalonID         int64     // ID салона
	ServiceID       int64     // ID услуги
	Date            time.Time // Дата, на которую запрашиваются слоты
	DurationMinutes int       // Длительность услуги в минутах
	BranchID        *int64    // Фильтр по филиалу (опционально)
}

// Response модель ответа со списком слотов салона.
// Идентичность мастера наружу не отдается: клиент видит только времена.
type Response struct {
	SalonID   int64
	ServiceID int64
	Date      time.Time
	Slots     []Slot
}

// Slot бронируемый интервал ровно запрошенной длительности
type Slot struct {
	Start time.Time
	End   time.Time
}
