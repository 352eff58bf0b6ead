package create_booking

import "time"

// Request модель запроса на создание бронирования.
// Ресурс задаётся комбинацией MasterID / SalonID, как и в domain.Booking.
type Request struct {
	ClientID  int64     // ID клиента
	MasterID  *int64    // ID мастера (опционально)
	SalonID   *int64    // ID салона (опционально)
	BranchID  *int64    // ID филиала (только вместе с SalonID)
	ServiceID int64     // ID услуги
	Start     time.Time // Начало интервала (UTC)
	End       time.Time // Конец интервала (UTC)
	Comment   *string   // Комментарий клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	ClientID  int64
	MasterID  *int64
	SalonID   *int64
	BranchID  *int64
	ServiceID int64
	Start     time.Time
	End       time.Time
	Status    string

	// Денормализованные данные услуги
	ServiceName  string
	ServicePrice float64
	Comment      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
