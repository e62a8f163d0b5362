package agenda

import (
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

const upcomingOnDashboard = 5

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// Entry запись вместе с данными услуги для отображения
type Entry struct {
	Appointment *domain.Appointment
	ServiceName string // пусто, если услуга удалена
	Price       float64
}

// Stats показатели панели администратора
type Stats struct {
	UniqueClients     int     // разные email среди предстоящих записей
	ScheduledUpcoming int     // предстоящие записи со статусом scheduled
	ActiveServices    int     // услуги, доступные для записи
	ExpectedRevenue   float64 // сумма цен запланированных на сегодня записей
}

// Dashboard данные главного экрана
type Dashboard struct {
	Date     time.Time
	Summary  string
	Stats    Stats
	Today    []Entry
	Upcoming []Entry
}

// Day день месяца с записями
type Day struct {
	Day          int
	Date         time.Time
	Appointments []Entry
}

// Month сетка календаря. LeadingBlanks = день недели 1-го числа (0 = воскресенье).
type Month struct {
	Year          int
	Month         time.Month
	Name          string
	LeadingBlanks int
	Days          []Day
}
