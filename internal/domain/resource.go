package domain

// ResourceKind тег варианта селектора ресурса
type ResourceKind string

const (
	// KindMaster независимый мастер (личный календарь)
	KindMaster ResourceKind = "master"
	// KindSalon салон как агрегат: его занятость складывается из записей на сам салон
	// и записей на каждого аффилированного мастера
	KindSalon ResourceKind = "salon"
	// KindMasterInSalon конкретный мастер внутри салона
	KindMasterInSalon ResourceKind = "master_in_salon"
)

// ResourceSelector полиморфный селектор ресурса для проверки конфликтов.
// Явный sum type с тегом вместо duck typing по nullable полям:
// каждый вариант несёт только нужные ему идентификаторы.
type ResourceSelector struct {
	Kind     ResourceKind
	MasterID int64 // заполнен для KindMaster и KindMasterInSalon
	SalonID  int64 // заполнен для KindSalon и KindMasterInSalon

	// MemberIDs мастера, аффилированные с салоном на момент проверки.
	// Заполняется вызывающей стороной для KindSalon: запись на салон и запись
	// к его мастеру на пересекающееся время взаимоисключающие.
	MemberIDs []int64
}

// MasterSelector селектор независимого мастера
func MasterSelector(masterID int64) ResourceSelector {
	return ResourceSelector{Kind: KindMaster, MasterID: masterID}
}

// SalonSelector селектор салона-агрегата со списком его мастеров
func SalonSelector(salonID int64, memberIDs []int64) ResourceSelector {
	return ResourceSelector{Kind: KindSalon, SalonID: salonID, MemberIDs: memberIDs}
}

// MasterInSalonSelector селектор мастера внутри салона
func MasterInSalonSelector(masterID, salonID int64) ResourceSelector {
	return ResourceSelector{Kind: KindMasterInSalon, MasterID: masterID, SalonID: salonID}
}

// WorkContext различает работу мастера в салоне/филиале и независимую работу.
// Мастер может вести два независимых календаря (салонный и личный),
// которые нельзя смешивать при проверке занятости.
type WorkContext struct {
	SalonID  *int64 // nil = личный календарь мастера
	BranchID *int64 // опциональное уточнение филиала внутри салона
}

// PersonalContext контекст личного календаря мастера
func PersonalContext() WorkContext {
	return WorkContext{}
}

// SalonContext контекст работы мастера в салоне
func SalonContext(salonID int64, branchID *int64) WorkContext {
	return WorkContext{SalonID: &salonID, BranchID: branchID}
}
