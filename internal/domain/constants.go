package domain

// SlotStepMinutes шаг сетки слотов, единый для всей платформы.
// Общая константа для генератора сетки и дедупликации при групповом подборе:
// гарантирует выравнивание слотов разных мастеров между собой.
const SlotStepMinutes = 30

// Business validation constants
const (
	MinServiceDurationMinutes   = 1
	MaxServiceDurationMinutes   = 480 // 8 часов
	MaxCommentLength            = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слот.
// Используется при фильтрации бронирований для проверки конфликтов.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCancelledByClient,
	StatusCancelledBySalon,
	StatusPaymentExpired,
}
