package patient

import "time"

// Status is where a patient currently sits in care. No transitions are
// modeled here; the discharge workflow lives outside the admin console.
type Status string

const (
	StatusInpatient  Status = "inpatient"
	StatusOutpatient Status = "outpatient"
	StatusDischarged Status = "discharged"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Patient struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Age           int       `json:"age"`
	Gender        Gender    `json:"gender"`
	RoomNumber    string    `json:"room_number,omitempty"`
	AdmissionDate time.Time `json:"admission_date"`
	Diagnosis     string    `json:"diagnosis"`
	PrimaryDoctor string    `json:"primary_doctor"`
	Status        Status    `json:"status"`
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p *Patient) Clone() *Patient {
	clone := *p
	return &clone
}
