package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// BookingResponse модель бронирования для ответа сервиса
type BookingResponse struct {
	ID           int64
	ClientID     int64
	MasterID     *int64
	SalonID      *int64
	BranchID     *int64
	ServiceID    int64
	StartTime    time.Time
	EndTime      time.Time
	Status       string
	ServiceName  string
	ServicePrice float64
	Comment      *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse
	Total    int
}

// GetClientBookingsRequest запрос истории бронирований клиента
type GetClientBookingsRequest struct {
	ClientID int64
	Status   *string
}

// GetSalonBookingsRequest запрос бронирований салона (для менеджеров)
type GetSalonBookingsRequest struct {
	SalonID         int64
	UserID          int64 // инициатор запроса, проверяется на права менеджера
	BranchID        *int64
	MasterID        *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// CancelBookingRequest запрос отмены бронирования
type CancelBookingRequest struct {
	UserID int64
	Reason string
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *GetSalonBookingsRequest) ToDomainFilter() (domain.SalonBookingsFilter, error) {
	filter := domain.SalonBookingsFilter{
		SalonID:         r.SalonID,
		BranchID:        r.BranchID,
		MasterID:        r.MasterID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.SalonBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	switch status {
	case domain.StatusCreated,
		domain.StatusAwaitingConfirmation,
		domain.StatusAwaitingPayment,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusCancelledByClient,
		domain.StatusCancelledBySalon,
		domain.StatusPaymentExpired:
		return status, nil
	default:
		return "", fmt.Errorf("unknown booking status %q", s)
	}
}

// FromDomainBooking конвертирует domain бронирование в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		ClientID:           b.ClientID,
		MasterID:           b.MasterID,
		SalonID:            b.SalonID,
		BranchID:           b.BranchID,
		ServiceID:          b.ServiceID,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		Status:             string(b.Status),
		ServiceName:        b.ServiceName,
		ServicePrice:       b.ServicePrice,
		Comment:            b.Comment,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
