package create_booking

import "errors"

var (
	// ErrMasterNotFound возвращается, когда мастер не найден
	ErrMasterNotFound = errors.New("create_booking: master not found")

	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("create_booking: salon not found")

	// ErrBranchNotFound возвращается, когда филиал не найден в салоне
	ErrBranchNotFound = errors.New("create_booking: branch not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrMasterNotInSalon возвращается, когда мастер не принадлежит указанному салону
	ErrMasterNotInSalon = errors.New("create_booking: master does not belong to this salon")

	// ErrMasterNotWorking возвращается, когда мастер не работает на запрошенном интервале
	ErrMasterNotWorking = errors.New("create_booking: master is not working at this time")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с активным бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrBookingInPast возвращается при попытке создать бронирование в прошлом
	ErrBookingInPast = errors.New("create_booking: booking starts in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
