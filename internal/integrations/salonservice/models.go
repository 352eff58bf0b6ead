package salonservice

// Salon модель салона из SalonService
type Salon struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Branches   []Branch `json:"branches"`
	ManagerIDs []int64  `json:"manager_ids"`
}

// IsManager проверяет, что пользователь является менеджером салона
func (s *Salon) IsManager(userID int64) bool {
	for _, id := range s.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Branch филиал (физическая точка) салона
type Branch struct {
	ID      int64  `json:"id"`
	Address string `json:"address"`
}

// HasBranch проверяет, что филиал принадлежит салону
func (s *Salon) HasBranch(branchID int64) bool {
	for _, b := range s.Branches {
		if b.ID == branchID {
			return true
		}
	}
	return false
}

// Master модель мастера из SalonService
type Master struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	SalonID *int64 `json:"salon_id"` // nil = независимый мастер
}

// Service модель услуги из SalonService
type Service struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Price           *float64 `json:"price"`
	DurationMinutes *int     `json:"duration_minutes"`
}

// ErrorResponse модель ошибки от SalonService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
