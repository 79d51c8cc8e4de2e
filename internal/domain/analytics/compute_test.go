package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/auth"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/clinic"
)

var testNow = time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestComputeEmptyInputs(t *testing.T) {
	snap := Compute(Inputs{}, testNow)

	if snap.TotalBookings != 0 || snap.TotalRevenue != 0 || snap.TotalPets != 0 {
		t.Fatalf("expected zero totals, got %+v", snap)
	}
	// Ninguna división por cero puede colarse como NaN.
	for name, v := range map[string]float64{
		"completion_rate":       snap.CompletionRate,
		"avg_pets_per_customer": snap.AvgPetsPerCustomer,
		"monthly_revenue":       snap.MonthlyRevenue,
	} {
		if math.IsNaN(v) || v != 0 {
			t.Fatalf("%s should be 0, got %v", name, v)
		}
	}

	if len(snap.MonthlyTrend) != trendMonths {
		t.Fatalf("expected %d month buckets, got %d", trendMonths, len(snap.MonthlyTrend))
	}
	if len(snap.WeeklyActivity) != activityDays {
		t.Fatalf("expected %d day buckets, got %d", activityDays, len(snap.WeeklyActivity))
	}
	if len(snap.RecentActivity) != 0 {
		t.Fatalf("expected empty feed, got %d", len(snap.RecentActivity))
	}
}

func TestRevenueCountsPaidStatusesOnly(t *testing.T) {
	in := Inputs{
		Services: []clinic.Service{{ID: 1, ServiceName: "Bath", Price: 50}},
		Bookings: []clinic.ServiceBooking{
			{ID: 1, ServiceID: 1, Status: clinic.BookingCompleted, StartDate: "2026-08-10"},
			{ID: 2, ServiceID: 1, Status: clinic.BookingConfirmed, StartDate: "2026-08-11"},
			{ID: 3, ServiceID: 1, Status: clinic.BookingPending, StartDate: "2026-08-12"},
			{ID: 4, ServiceID: 1, Status: clinic.BookingCancelled, StartDate: "2026-08-13"},
		},
	}

	snap := Compute(in, testNow)

	if !almostEqual(snap.TotalRevenue, 100) {
		t.Fatalf("expected revenue 100 (completed+confirmed), got %v", snap.TotalRevenue)
	}
	if snap.CompletedBookings != 1 || snap.PendingBookings != 1 {
		t.Fatalf("unexpected counters: %+v", snap)
	}
	if !almostEqual(snap.CompletionRate, 25) {
		t.Fatalf("expected completion rate 25, got %v", snap.CompletionRate)
	}
}

func TestMonthlyRevenueBoundaryIsInclusive(t *testing.T) {
	in := Inputs{
		Services: []clinic.Service{{ID: 1, ServiceName: "Bath", Price: 10}},
		Bookings: []clinic.ServiceBooking{
			// Justo el primer instante del mes: cuenta.
			{ID: 1, ServiceID: 1, Status: clinic.BookingCompleted, StartDate: "2026-08-01"},
			// Último día del mes anterior: no cuenta para el mes.
			{ID: 2, ServiceID: 1, Status: clinic.BookingCompleted, StartDate: "2026-07-31"},
		},
	}

	// El corte del día 1 debe aguantar cualquier zona horaria del
	// proceso: las fechas del wire se comparan por calendario, no por
	// instante.
	zones := []*time.Location{
		time.UTC,
		time.FixedZone("UTC-5", -5*60*60),
		time.FixedZone("UTC+13", 13*60*60),
	}
	for _, zone := range zones {
		snap := Compute(in, testNow.In(zone))

		if !almostEqual(snap.MonthlyRevenue, 10) {
			t.Fatalf("%s: expected monthly revenue 10, got %v", zone, snap.MonthlyRevenue)
		}
		if !almostEqual(snap.TotalRevenue, 20) {
			t.Fatalf("%s: expected total revenue 20, got %v", zone, snap.TotalRevenue)
		}
		if !almostEqual(snap.ProjectedYearlyRevenue, 120) {
			t.Fatalf("%s: expected projection 120, got %v", zone, snap.ProjectedYearlyRevenue)
		}
	}
}

func TestCustomersAndAvgPets(t *testing.T) {
	in := Inputs{
		Users: []auth.User{
			{ID: 1, Roles: auth.RoleOwner},
			{ID: 2, Roles: auth.RoleOwner},
			{ID: 3, Roles: auth.RoleAdmin},
			{ID: 4, Roles: auth.RoleDoctor},
		},
		Pets: []clinic.Pet{{ID: 1}, {ID: 2}, {ID: 3}},
	}

	snap := Compute(in, testNow)

	if snap.TotalCustomers != 2 {
		t.Fatalf("only OWNER counts as customer, got %d", snap.TotalCustomers)
	}
	if !almostEqual(snap.AvgPetsPerCustomer, 1.5) {
		t.Fatalf("expected 1.5 pets per customer, got %v", snap.AvgPetsPerCustomer)
	}
}

func TestTopDiagnosesNormalized(t *testing.T) {
	in := Inputs{
		Records: []clinic.MedicalRecord{
			{Diagnosis: "Otitis"},
			{Diagnosis: " otitis "},
			{Diagnosis: "OTITIS"},
			{Diagnosis: "Dermatitis"},
			{Diagnosis: "  "},
			{Diagnosis: ""},
		},
	}

	snap := Compute(in, testNow)

	if len(snap.TopDiagnoses) != 2 {
		t.Fatalf("expected 2 diagnoses, got %+v", snap.TopDiagnoses)
	}
	if snap.TopDiagnoses[0].Diagnosis != "otitis" || snap.TopDiagnoses[0].Count != 3 {
		t.Fatalf("expected otitis x3 first, got %+v", snap.TopDiagnoses[0])
	}
	if snap.TopDiagnoses[1].Diagnosis != "dermatitis" || snap.TopDiagnoses[1].Count != 1 {
		t.Fatalf("expected dermatitis x1, got %+v", snap.TopDiagnoses[1])
	}
}

func TestPopularServicesAndCategories(t *testing.T) {
	in := Inputs{
		Services: []clinic.Service{
			{ID: 1, ServiceName: "Bath", Category: "GROOMING", Price: 30},
			{ID: 2, ServiceName: "Surgery", Category: "MEDICAL", Price: 500},
			{ID: 3, ServiceName: "Vaccine", Category: "MEDICAL", Price: 40},
			{ID: 4, ServiceName: "Idle", Category: "OTHER", Price: 10},
		},
		Bookings: []clinic.ServiceBooking{
			{ID: 1, ServiceID: 1, Status: clinic.BookingCompleted},
			{ID: 2, ServiceID: 1, Status: clinic.BookingCompleted},
			{ID: 3, ServiceID: 1, Status: clinic.BookingPending}, // impaga: fuera del ranking
			{ID: 4, ServiceID: 2, Status: clinic.BookingConfirmed},
			{ID: 5, ServiceID: 3, Status: clinic.BookingCancelled},
		},
	}

	snap := Compute(in, testNow)

	// Solo servicios con ingresos entran al ranking.
	if len(snap.PopularServices) != 2 {
		t.Fatalf("expected 2 popular services, got %+v", snap.PopularServices)
	}
	if snap.PopularServices[0].Name != "Surgery" {
		t.Fatalf("expected Surgery first by revenue, got %+v", snap.PopularServices[0])
	}
	bath := snap.PopularServices[1]
	if bath.Count != 2 || !almostEqual(bath.Revenue, 60) || !almostEqual(bath.AvgPrice, 30) {
		t.Fatalf("unexpected Bath stats: %+v", bath)
	}

	// Las categorías agregan el dataset completo, no el top recortado.
	var medical CategoryStats
	for _, c := range snap.ServicesByCategory {
		if c.Category == "MEDICAL" {
			medical = c
		}
	}
	if medical.Count != 1 || !almostEqual(medical.Revenue, 500) {
		t.Fatalf("unexpected MEDICAL aggregate: %+v", medical)
	}
}

func TestSpeciesDistribution(t *testing.T) {
	in := Inputs{
		Pets: []clinic.Pet{
			{ID: 1, Species: "Dog"},
			{ID: 2, Species: "Dog"},
			{ID: 3, Species: "Cat"},
		},
	}

	snap := Compute(in, testNow)

	d := snap.PetSpeciesDistribution
	if len(d) != 2 {
		t.Fatalf("expected 2 species, got %+v", d)
	}
	if d[0].Label != "Dog" || !almostEqual(d[0].Percentage, 66.67) {
		t.Fatalf("expected Dog ~66.67%%, got %+v", d[0])
	}
	if d[1].Label != "Cat" || !almostEqual(d[1].Percentage, 33.33) {
		t.Fatalf("expected Cat ~33.33%%, got %+v", d[1])
	}
}

func TestGenderAndRoleDistributions(t *testing.T) {
	in := Inputs{
		Pets: []clinic.Pet{
			{ID: 1, Gender: clinic.GenderMale},
			{ID: 2, Gender: clinic.GenderMale},
			{ID: 3, Gender: clinic.GenderFemale},
			{ID: 4, Gender: clinic.GenderFemale},
		},
		Users: []auth.User{
			{ID: 1, Roles: auth.RoleOwner},
			{ID: 2, Roles: auth.RoleOwner},
			{ID: 3, Roles: auth.RoleAdmin},
		},
	}

	snap := Compute(in, testNow)

	g := snap.PetGenderDistribution
	if len(g) != 2 || !almostEqual(g[0].Percentage, 50) || !almostEqual(g[1].Percentage, 50) {
		t.Fatalf("expected 50/50 genders, got %+v", g)
	}
	// Empate: gana el orden de aparición.
	if g[0].Label != "MALE" {
		t.Fatalf("expected MALE first on tie, got %+v", g)
	}

	r := snap.UserRoleDistribution
	if len(r) != 2 || r[0].Label != "OWNER" || r[0].Count != 2 {
		t.Fatalf("unexpected role distribution: %+v", r)
	}
	if !almostEqual(r[1].Percentage, 33.33) {
		t.Fatalf("expected ADMIN ~33.33%%, got %+v", r[1])
	}
}

func TestMonthlyTrendBuckets(t *testing.T) {
	in := Inputs{
		Services: []clinic.Service{{ID: 1, ServiceName: "Bath", Price: 10}},
		Bookings: []clinic.ServiceBooking{
			{ID: 1, ServiceID: 1, Status: clinic.BookingCompleted, StartDate: "2026-08-02"},
			{ID: 2, ServiceID: 1, Status: clinic.BookingPending, StartDate: "2026-06-20"},
			// Fuera de ventana (7 meses atrás) y fecha rota: fuera de buckets.
			{ID: 3, ServiceID: 1, Status: clinic.BookingCompleted, StartDate: "2026-01-02"},
			{ID: 4, ServiceID: 1, Status: clinic.BookingCompleted, StartDate: "someday"},
		},
	}

	snap := Compute(in, testNow)

	if len(snap.MonthlyTrend) != trendMonths {
		t.Fatalf("expected %d buckets, got %d", trendMonths, len(snap.MonthlyTrend))
	}
	first, last := snap.MonthlyTrend[0], snap.MonthlyTrend[trendMonths-1]
	if first.Month != "Mar 2026" || last.Month != "Aug 2026" {
		t.Fatalf("unexpected window: %s .. %s", first.Month, last.Month)
	}
	if last.Count != 1 || !almostEqual(last.Revenue, 10) {
		t.Fatalf("unexpected current month bucket: %+v", last)
	}

	var june MonthBucket
	for _, b := range snap.MonthlyTrend {
		if b.Month == "Jun 2026" {
			june = b
		}
	}
	if june.Count != 1 || june.Revenue != 0 {
		t.Fatalf("pending booking counts but pays nothing: %+v", june)
	}

	// El total sí retiene la reserva de fecha rota.
	if !almostEqual(snap.TotalRevenue, 30) {
		t.Fatalf("unparseable dates stay in totals, got %v", snap.TotalRevenue)
	}
}

func TestWeeklyActivityBuckets(t *testing.T) {
	in := Inputs{
		Bookings: []clinic.ServiceBooking{
			{ID: 1, StartDate: "2026-08-15", Status: clinic.BookingPending},
			{ID: 2, StartDate: "2026-08-09", Status: clinic.BookingPending},
			{ID: 3, StartDate: "2026-08-08", Status: clinic.BookingPending}, // fuera de ventana
		},
		Records: []clinic.MedicalRecord{
			{ID: 1, RecordDate: "2026-08-15"},
		},
	}

	snap := Compute(in, testNow)

	last := snap.WeeklyActivity[activityDays-1]
	if last.Day != "Sat" || last.Bookings != 1 || last.Records != 1 {
		t.Fatalf("unexpected today bucket: %+v", last)
	}
	first := snap.WeeklyActivity[0]
	if first.Day != "Sun" || first.Bookings != 1 {
		t.Fatalf("unexpected oldest bucket: %+v", first)
	}
}

func TestRecentActivityFeed(t *testing.T) {
	in := Inputs{
		Services: []clinic.Service{{ID: 1, ServiceName: "Bath", Price: 10}},
		Bookings: []clinic.ServiceBooking{
			{ID: 1, ServiceID: 1, StartDate: "2026-08-14", Status: clinic.BookingPending},
			{ID: 2, ServiceID: 9, StartDate: "2026-08-13", Status: clinic.BookingPending},
		},
		Records: []clinic.MedicalRecord{
			{ID: 1, RecordDate: "2026-08-12"},
		},
		Pets: []clinic.Pet{
			{ID: 1, Name: "Rex", Species: "Dog", CreatedAt: "2026-08-11"},
			{ID: 2, Name: "Misu", Species: "Cat", BirthDate: "2020-01-01"},
		},
		Users: []auth.User{
			{ID: 1, UserName: "ana", Roles: auth.RoleOwner, CreatedAt: "2026-08-10"},
			{ID: 2, UserName: "root", Roles: auth.RoleAdmin, CreatedAt: "2026-08-15"},
		},
	}

	snap := Compute(in, testNow)

	feed := snap.RecentActivity
	if len(feed) != 6 {
		t.Fatalf("expected 6 entries (2 bookings, 1 record, 2 pets, 1 customer), got %d", len(feed))
	}

	// Orden descendente por fecha; el admin no aparece como customer.
	if feed[0].Title != "New Booking" || feed[0].Description != "Booking for Bath" {
		t.Fatalf("unexpected head: %+v", feed[0])
	}
	if feed[1].Description != "Booking for Unknown Service" {
		t.Fatalf("expected unknown service fallback, got %+v", feed[1])
	}
	for _, a := range feed {
		if a.Type == "customer" && a.Description != "ana joined" {
			t.Fatalf("unexpected customer entry: %+v", a)
		}
	}

	// La mascota sin created_at cae a birth_date y queda última.
	tail := feed[len(feed)-1]
	if tail.Type != "pet" || tail.Description != "Misu (Cat) registered" {
		t.Fatalf("unexpected tail: %+v", tail)
	}
}

func TestRecentActivityCap(t *testing.T) {
	var in Inputs
	for i := 0; i < 30; i++ {
		in.Bookings = append(in.Bookings, clinic.ServiceBooking{
			ID: int64(i), ServiceID: 1, StartDate: "2026-08-14", Status: clinic.BookingPending,
		})
		in.Records = append(in.Records, clinic.MedicalRecord{ID: int64(i), RecordDate: "2026-08-13"})
		in.Pets = append(in.Pets, clinic.Pet{ID: int64(i), Name: "p", Species: "Dog", CreatedAt: "2026-08-12"})
		in.Users = append(in.Users, auth.User{ID: int64(i), UserName: "u", Roles: auth.RoleOwner, CreatedAt: "2026-08-11"})
	}

	snap := Compute(in, testNow)

	// 5 reservas + 5 registros + 3 mascotas + 3 clientes = 16, cap 15.
	if len(snap.RecentActivity) != recentActivityLimit {
		t.Fatalf("expected cap %d, got %d", recentActivityLimit, len(snap.RecentActivity))
	}
}
