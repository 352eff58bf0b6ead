package get_slots

import "time"

// Request модель запроса на получение доступных слотов мастера
type Request struct {
	MasterID        int64     // ID мастера
	Date            time.Time // Дата, на которую запрашиваются слоты (без времени)
	DurationMinutes int       // Длительность услуги в минутах
	SalonID         *int64    // Салонный контекст (nil = личный календарь мастера)
	BranchID        *int64    // Фильтр по филиалу (только вместе с SalonID)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	MasterID int64
	Date     time.Time
	Slots    []Slot
}

// Slot бронируемый интервал ровно запрошенной длительности
type Slot struct {
	Start time.Time
	End   time.Time
}
