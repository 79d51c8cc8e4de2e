package clinic

// BookingStatus es parte del contrato wire (case-sensitive).
// @Enum PENDING, CONFIRMED, CANCELLED, COMPLETED
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// Gender de mascota según el wire.
// @Enum MALE, FEMALE
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// CageStatus según el wire.
// @Enum AVAILABLE, OCCUPIED, CLEANING, MAINTENANCE
type CageStatus string

const (
	CageAvailable   CageStatus = "AVAILABLE"
	CageOccupied    CageStatus = "OCCUPIED"
	CageCleaning    CageStatus = "CLEANING"
	CageMaintenance CageStatus = "MAINTENANCE"
)

// Las fechas quedan como strings del wire: el backend no garantiza un único
// formato y el aggregator decide qué hacer con fechas no parseables.

type Pet struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	BirthDate  string `json:"birth_date"`
	Gender     Gender `json:"gender"`
	Species    string `json:"species"`
	Color      string `json:"color"`
	HealthInfo string `json:"health_info"`
	UserID     int64  `json:"user_id"`
	CreatedAt  string `json:"created_at,omitempty"`
}

type Service struct {
	ID          int64   `json:"id"`
	ServiceName string  `json:"service_name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ServiceBooking: el backend no incluye pet_id en sus respuestas de forma
// consistente; por eso existe el cache de asociaciones booking->mascota.
type ServiceBooking struct {
	ID        int64         `json:"id"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date,omitempty"`
	Notes     string        `json:"notes"`
	Status    BookingStatus `json:"status"`
	UserID    int64         `json:"user_id"`
	ServiceID int64         `json:"service_id"`
	PetID     int64         `json:"pet_id,omitempty"`
}

type MedicalRecord struct {
	ID              int64  `json:"id"`
	Diagnosis       string `json:"diagnosis"`
	Prescription    string `json:"prescription"`
	Notes           string `json:"notes"`
	NextMeetingDate string `json:"next_meeting_date"`
	RecordDate      string `json:"record_date"`
	PetID           int64  `json:"pet_id"`
	UserID          int64  `json:"user_id"`
}

type Cage struct {
	ID        int64      `json:"id"`
	Type      string     `json:"type"`
	Size      string     `json:"size"`
	Status    CageStatus `json:"status"`
	StartDate string     `json:"start_date,omitempty"`
	EndDate   string     `json:"end_date,omitempty"`
	PetID     int64      `json:"pet_id,omitempty"`
}
