package analytics

// Snapshot es el resultado completo de una corrida del agregador. Todo
// se calcula de una vez sobre el mismo conjunto de datos.
type Snapshot struct {
	TotalBookings          int     `json:"total_bookings"`
	CompletedBookings      int     `json:"completed_bookings"`
	PendingBookings        int     `json:"pending_bookings"`
	CompletionRate         float64 `json:"completion_rate"`
	TotalRevenue           float64 `json:"total_revenue"`
	MonthlyRevenue         float64 `json:"monthly_revenue"`
	ProjectedYearlyRevenue float64 `json:"projected_yearly_revenue"`
	TotalCustomers         int     `json:"total_customers"`
	TotalPets              int     `json:"total_pets"`
	AvgPetsPerCustomer     float64 `json:"avg_pets_per_customer"`
	TotalMedicalRecords    int     `json:"total_medical_records"`

	TopDiagnoses              []DiagnosisCount `json:"top_diagnoses"`
	PopularServices           []ServiceStats   `json:"popular_services"`
	ServicesByCategory        []CategoryStats  `json:"services_by_category"`
	PetSpeciesDistribution    []Distribution   `json:"pet_species_distribution"`
	PetGenderDistribution     []Distribution   `json:"pet_gender_distribution"`
	UserRoleDistribution      []Distribution   `json:"user_role_distribution"`
	BookingStatusDistribution []Distribution   `json:"booking_status_distribution"`
	MonthlyTrend              []MonthBucket    `json:"monthly_trend"`
	WeeklyActivity            []DayBucket      `json:"weekly_activity"`
	RecentActivity            []Activity       `json:"recent_activity"`
}

type DiagnosisCount struct {
	Diagnosis string `json:"diagnosis"`
	Count     int    `json:"count"`
}

type ServiceStats struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Count    int     `json:"count"`
	Revenue  float64 `json:"revenue"`
	AvgPrice float64 `json:"avg_price"`
	Category string  `json:"category"`
}

type CategoryStats struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Revenue  float64 `json:"revenue"`
}

type Distribution struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type MonthBucket struct {
	Month   string  `json:"month"` // "Jan 2006"
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type DayBucket struct {
	Day      string `json:"day"` // "Mon"
	Bookings int    `json:"bookings"`
	Records  int    `json:"records"`
}

type Activity struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}
