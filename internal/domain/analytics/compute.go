// Package analytics agrega los datos de la clínica en un snapshot
// único para el panel de administración. Todas las métricas de una
// corrida salen del mismo conjunto de datos, así los números cierran
// entre sí.
package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/auth"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/clinic"
)

// Inputs es el dataset completo sobre el que se calcula un Snapshot.
type Inputs struct {
	Bookings []clinic.ServiceBooking
	Services []clinic.Service
	Pets     []clinic.Pet
	Users    []auth.User
	Records  []clinic.MedicalRecord
}

const (
	topDiagnosesLimit    = 5
	popularServicesLimit = 10
	recentActivityLimit  = 15
	trendMonths          = 6
	activityDays         = 7
)

// isPaid marca los estados que cuentan como ingreso. CONFIRMED paga
// por adelantado, igual que COMPLETED.
func isPaid(s clinic.BookingStatus) bool {
	return s == clinic.BookingCompleted || s == clinic.BookingConfirmed
}

// onOrAfterMonth: ¿cae t en el mes calendario de now o después?
func onOrAfterMonth(t, now time.Time) bool {
	if t.Year() != now.Year() {
		return t.Year() > now.Year()
	}
	return t.Month() >= now.Month()
}

// Compute es pura: mismo dataset y mismo instante, mismo snapshot.
func Compute(in Inputs, now time.Time) Snapshot {
	priceByService := make(map[int64]clinic.Service, len(in.Services))
	for _, s := range in.Services {
		priceByService[s.ID] = s
	}

	var snap Snapshot
	snap.TotalBookings = len(in.Bookings)
	snap.TotalPets = len(in.Pets)
	snap.TotalMedicalRecords = len(in.Records)

	for _, b := range in.Bookings {
		switch b.Status {
		case clinic.BookingCompleted:
			snap.CompletedBookings++
		case clinic.BookingPending:
			snap.PendingBookings++
		}

		if !isPaid(b.Status) {
			continue
		}
		price := priceByService[b.ServiceID].Price
		snap.TotalRevenue += price

		// Comparación por campos de calendario, no por instante: las
		// fechas del wire se parsean en UTC y un corte por instante en
		// una zona al oeste dejaría afuera el día 1 (el borde es
		// inclusivo).
		if t, ok := parseDate(b.StartDate); ok && onOrAfterMonth(t, now) {
			snap.MonthlyRevenue += price
		}
	}
	snap.ProjectedYearlyRevenue = snap.MonthlyRevenue * 12

	if snap.TotalBookings > 0 {
		snap.CompletionRate = float64(snap.CompletedBookings) / float64(snap.TotalBookings) * 100
	}

	for _, u := range in.Users {
		if u.Roles == auth.RoleOwner {
			snap.TotalCustomers++
		}
	}
	if snap.TotalCustomers > 0 {
		snap.AvgPetsPerCustomer = float64(snap.TotalPets) / float64(snap.TotalCustomers)
	}

	snap.TopDiagnoses = topDiagnoses(in.Records)
	snap.PopularServices, snap.ServicesByCategory = serviceStats(in.Bookings, in.Services)
	speciesLabels := make([]string, 0, len(in.Pets))
	genderLabels := make([]string, 0, len(in.Pets))
	for _, p := range in.Pets {
		speciesLabels = append(speciesLabels, p.Species)
		genderLabels = append(genderLabels, string(p.Gender))
	}
	roleLabels := make([]string, 0, len(in.Users))
	for _, u := range in.Users {
		roleLabels = append(roleLabels, string(u.Roles))
	}
	statusLabels := make([]string, 0, len(in.Bookings))
	for _, b := range in.Bookings {
		statusLabels = append(statusLabels, string(b.Status))
	}
	snap.PetSpeciesDistribution = distribution(speciesLabels)
	snap.PetGenderDistribution = distribution(genderLabels)
	snap.UserRoleDistribution = distribution(roleLabels)
	snap.BookingStatusDistribution = distribution(statusLabels)
	snap.MonthlyTrend = monthlyTrend(in.Bookings, priceByService, now)
	snap.WeeklyActivity = weeklyActivity(in.Bookings, in.Records, now)
	snap.RecentActivity = recentActivity(in, now)

	return snap
}

// topDiagnoses normaliza a minúsculas y sin espacios sobrantes para que
// "Otitis" y "otitis " cuenten como el mismo diagnóstico.
func topDiagnoses(records []clinic.MedicalRecord) []DiagnosisCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		d := strings.ToLower(strings.TrimSpace(r.Diagnosis))
		if d == "" {
			continue
		}
		if _, seen := counts[d]; !seen {
			order = append(order, d)
		}
		counts[d]++
	}

	out := make([]DiagnosisCount, 0, len(order))
	for _, d := range order {
		out = append(out, DiagnosisCount{Diagnosis: d, Count: counts[d]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if len(out) > topDiagnosesLimit {
		out = out[:topDiagnosesLimit]
	}
	return out
}

// serviceStats calcula las dos vistas de servicios sobre el dataset
// completo; el top-N se recorta recién al final para que el agrupado
// por categoría no quede subreportado.
func serviceStats(bookings []clinic.ServiceBooking, services []clinic.Service) ([]ServiceStats, []CategoryStats) {
	stats := make(map[int64]*ServiceStats)
	var order []int64
	for _, s := range services {
		stats[s.ID] = &ServiceStats{ID: s.ID, Name: s.ServiceName, Category: s.Category}
		order = append(order, s.ID)
	}

	// Solo reservas pagas agrupan: el ranking mide ingresos, no demanda.
	for _, b := range bookings {
		st, ok := stats[b.ServiceID]
		if !ok || !isPaid(b.Status) {
			continue
		}
		st.Count++
		st.Revenue += priceOf(services, b.ServiceID)
	}

	full := make([]ServiceStats, 0, len(order))
	for _, id := range order {
		st := *stats[id]
		if st.Count > 0 {
			st.AvgPrice = st.Revenue / float64(st.Count)
		}
		full = append(full, st)
	}

	catTotals := make(map[string]*CategoryStats)
	var catOrder []string
	for _, st := range full {
		ct, ok := catTotals[st.Category]
		if !ok {
			ct = &CategoryStats{Category: st.Category}
			catTotals[st.Category] = ct
			catOrder = append(catOrder, st.Category)
		}
		ct.Count += st.Count
		ct.Revenue += st.Revenue
	}
	categories := make([]CategoryStats, 0, len(catOrder))
	for _, c := range catOrder {
		categories = append(categories, *catTotals[c])
	}

	popular := make([]ServiceStats, 0, len(full))
	for _, st := range full {
		if st.Revenue > 0 {
			popular = append(popular, st)
		}
	}
	sort.SliceStable(popular, func(i, j int) bool { return popular[i].Revenue > popular[j].Revenue })
	if len(popular) > popularServicesLimit {
		popular = popular[:popularServicesLimit]
	}

	return popular, categories
}

func priceOf(services []clinic.Service, id int64) float64 {
	for _, s := range services {
		if s.ID == id {
			return s.Price
		}
	}
	return 0
}

// distribution cuenta por etiqueta y reparte porcentajes sobre el total
// del grupo. Orden de inserción como desempate, luego descendente.
func distribution(labels []string) []Distribution {
	counts := make(map[string]int)
	var order []string
	for _, label := range labels {
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	total := len(labels)
	out := make([]Distribution, 0, len(order))
	for _, label := range order {
		d := Distribution{Label: label, Count: counts[label]}
		if total > 0 {
			d.Percentage = float64(d.Count) / float64(total) * 100
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// monthlyTrend cubre los últimos seis meses incluido el actual. Las
// reservas con fecha no parseable no entran en ningún bucket.
func monthlyTrend(bookings []clinic.ServiceBooking, priceByService map[int64]clinic.Service, now time.Time) []MonthBucket {
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	buckets := make([]MonthBucket, trendMonths)
	index := make(map[string]int, trendMonths)
	for i := 0; i < trendMonths; i++ {
		m := thisMonth.AddDate(0, i-(trendMonths-1), 0)
		label := m.Format("Jan 2006")
		buckets[i] = MonthBucket{Month: label}
		index[label] = i
	}

	for _, b := range bookings {
		t, ok := parseDate(b.StartDate)
		if !ok {
			continue
		}
		i, ok := index[t.Format("Jan 2006")]
		if !ok {
			continue
		}
		buckets[i].Count++
		if isPaid(b.Status) {
			buckets[i].Revenue += priceByService[b.ServiceID].Price
		}
	}
	return buckets
}

// weeklyActivity cubre los últimos siete días incluido hoy.
func weeklyActivity(bookings []clinic.ServiceBooking, records []clinic.MedicalRecord, now time.Time) []DayBucket {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	buckets := make([]DayBucket, activityDays)
	index := make(map[string]int, activityDays)
	for i := 0; i < activityDays; i++ {
		d := today.AddDate(0, 0, i-(activityDays-1))
		buckets[i] = DayBucket{Day: d.Format("Mon")}
		index[d.Format("2006-01-02")] = i
	}

	for _, b := range bookings {
		if t, ok := parseDate(b.StartDate); ok {
			if i, ok := index[t.Format("2006-01-02")]; ok {
				buckets[i].Bookings++
			}
		}
	}
	for _, r := range records {
		if t, ok := parseDate(r.RecordDate); ok {
			if i, ok := index[t.Format("2006-01-02")]; ok {
				buckets[i].Records++
			}
		}
	}
	return buckets
}

type datedActivity struct {
	Activity
	when time.Time
}

// recentActivity arma el feed mezclando las cuatro fuentes: cada una
// aporta sus entradas más recientes y el resultado final se ordena de
// nuevo y se corta en recentActivityLimit.
func recentActivity(in Inputs, now time.Time) []Activity {
	serviceNames := make(map[int64]string, len(in.Services))
	for _, s := range in.Services {
		serviceNames[s.ID] = s.ServiceName
	}

	var feed []datedActivity

	bookings := make([]datedActivity, 0, len(in.Bookings))
	for _, b := range in.Bookings {
		name := serviceNames[b.ServiceID]
		if name == "" {
			name = "Unknown Service"
		}
		bookings = append(bookings, datedActivity{
			Activity: Activity{
				Type:        "booking",
				Title:       "New Booking",
				Description: "Booking for " + name,
				Date:        b.StartDate,
			},
			when: parsedOrZero(b.StartDate),
		})
	}
	feed = append(feed, takeRecent(bookings, 5)...)

	records := make([]datedActivity, 0, len(in.Records))
	for _, r := range in.Records {
		records = append(records, datedActivity{
			Activity: Activity{
				Type:        "record",
				Title:       "Medical Record",
				Description: "New medical record created",
				Date:        r.RecordDate,
			},
			when: parsedOrZero(r.RecordDate),
		})
	}
	feed = append(feed, takeRecent(records, 5)...)

	pets := make([]datedActivity, 0, len(in.Pets))
	for _, p := range in.Pets {
		date := p.CreatedAt
		if date == "" {
			date = p.BirthDate
		}
		pets = append(pets, datedActivity{
			Activity: Activity{
				Type:        "pet",
				Title:       "New Pet",
				Description: fmt.Sprintf("%s (%s) registered", p.Name, p.Species),
				Date:        date,
			},
			when: parsedOrZero(date),
		})
	}
	feed = append(feed, takeRecent(pets, 3)...)

	customers := make([]datedActivity, 0)
	for _, u := range in.Users {
		if u.Roles != auth.RoleOwner {
			continue
		}
		date := u.CreatedAt
		when := parsedOrZero(date)
		if date == "" {
			date = now.Format(time.RFC3339)
			when = now
		}
		customers = append(customers, datedActivity{
			Activity: Activity{
				Type:        "customer",
				Title:       "New Customer",
				Description: u.UserName + " joined",
				Date:        date,
			},
			when: when,
		})
	}
	feed = append(feed, takeRecent(customers, 3)...)

	sortRecent(feed)
	if len(feed) > recentActivityLimit {
		feed = feed[:recentActivityLimit]
	}

	out := make([]Activity, 0, len(feed))
	for _, a := range feed {
		out = append(out, a.Activity)
	}
	return out
}

func takeRecent(items []datedActivity, n int) []datedActivity {
	sortRecent(items)
	if len(items) > n {
		items = items[:n]
	}
	return items
}

// sortRecent ordena de más nueva a más vieja; las fechas no parseables
// (time cero) quedan al final.
func sortRecent(items []datedActivity) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].when.After(items[j].when)
	})
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parsedOrZero(s string) time.Time {
	t, _ := parseDate(s)
	return t
}
