package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusCreated              BookingStatus = "created"
	StatusAwaitingConfirmation BookingStatus = "awaiting_confirmation"
	StatusAwaitingPayment      BookingStatus = "awaiting_payment"
	StatusCompleted            BookingStatus = "completed"
	StatusCancelled            BookingStatus = "cancelled"
	StatusCancelledByClient    BookingStatus = "cancelled_by_client"
	StatusCancelledBySalon     BookingStatus = "cancelled_by_salon"
	StatusPaymentExpired       BookingStatus = "payment_expired"
)

// Booking represents a committed reservation of a resource for a time interval.
// Ресурс задаётся комбинацией MasterID / SalonID:
// - только MasterID: запись к независимому мастеру
// - только SalonID: запись в салон без выбора мастера
// - оба: запись к конкретному мастеру внутри салона
type Booking struct {
	ID        int64
	ClientID  int64
	MasterID  *int64
	SalonID   *int64
	BranchID  *int64 // ID филиала салона (опционально)
	ServiceID int64

	// Полные timestamp'ы начала и конца, хранятся в UTC. Инвариант: StartTime < EndTime.
	StartTime time.Time
	EndTime   time.Time

	Status BookingStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	Comment      *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its time interval.
// Отменённые и просроченные по оплате бронирования слот не занимают.
func (b *Booking) IsActive() bool {
	switch b.Status {
	case StatusCancelled, StatusCancelledByClient, StatusCancelledBySalon, StatusPaymentExpired:
		return false
	default:
		return true
	}
}

// IsCancelled returns true if the booking belongs to the cancelled family
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled ||
		b.Status == StatusCancelledByClient ||
		b.Status == StatusCancelledBySalon
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusCreated ||
		b.Status == StatusAwaitingConfirmation ||
		b.Status == StatusAwaitingPayment
}

// DurationMinutes возвращает длительность бронирования в минутах
func (b *Booking) DurationMinutes() int {
	return int(b.EndTime.Sub(b.StartTime) / time.Minute)
}

// SalonBookingsFilter фильтр для получения бронирований салона
type SalonBookingsFilter struct {
	SalonID         int64          // Обязательный параметр
	BranchID        *int64         // Фильтр по филиалу (опционально)
	MasterID        *int64         // Фильтр по мастеру (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
