// Package seed synthesizes a full fake dataset for the clinic schema:
// clinics, nurses, doctors, patients, shifts, appointments, prescriptions,
// observations and the bookable slot calendar.
package seed

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/bdist/saude-api/model"
	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"
)

var (
	localities  = []string{"Lisboa", "Cascais", "Sintra", "Amadora"}
	specialties = []string{"ClinicaGeral", "Ortopedia", "Cardiologia", "Dermatologia", "Pediatria"}
)

const (
	clinicCount        = 5
	doctorsPerBand     = 20
	minDoctorsPerDay   = 8
	maxDailyPerClinic  = 20
	maxStreakPerDoctor = 2
	prescriptionRate   = 0.8
)

// Options configures dataset generation.
type Options struct {
	Patients int
	Start    time.Time
	End      time.Time
	Seed     uint64
}

// Dataset holds one generated dataset, in insertion order.
type Dataset struct {
	Clinics       []model.Clinic
	Nurses        []model.Nurse
	Doctors       []model.Doctor
	Patients      []model.Patient
	Shifts        []model.Shift
	TimeSlots     []model.TimeSlot
	Appointments  []model.Appointment
	Prescriptions []model.Prescription
	Observations  []model.Observation
}

type generator struct {
	f    *gofakeit.Faker
	r    *rand.Rand
	used map[string]map[string]struct{}
}

func newGenerator(seed uint64) *generator {
	return &generator{
		f:    gofakeit.New(seed),
		r:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		used: map[string]map[string]struct{}{},
	}
}

// cleanText keeps alphanumerics and spaces only, matching what the database
// expects for names and addresses.
func cleanText(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == ' ' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (g *generator) unique(kind, value string) bool {
	set, ok := g.used[kind]
	if !ok {
		set = map[string]struct{}{}
		g.used[kind] = set
	}
	if _, taken := set[value]; taken {
		return false
	}
	set[value] = struct{}{}
	return true
}

// digits returns a fresh unique string of n random digits for the given
// namespace (nif, ssn, phone, sns).
func (g *generator) digits(kind string, n int) string {
	for {
		b := make([]byte, n)
		for i := range b {
			b[i] = byte('0' + g.r.IntN(10))
		}
		if g.unique(kind, string(b)) {
			return string(b)
		}
	}
}

func (g *generator) uniqueName() string {
	for {
		name := cleanText(g.f.Name())
		if g.unique("name", name) {
			return name
		}
	}
}

func (g *generator) address() string {
	return cleanText(g.f.Address().Address)
}

func (g *generator) clinics() []model.Clinic {
	clinics := make([]model.Clinic, 0, clinicCount)
	for i := 0; i < clinicCount; i++ {
		clinics = append(clinics, model.Clinic{
			Name:    fmt.Sprintf("Clinica%d", i+1),
			Phone:   g.digits("phone", 11),
			Address: fmt.Sprintf("%s, %s", g.address(), localities[g.r.IntN(len(localities))]),
		})
	}
	return clinics
}

func (g *generator) nurses(clinics []model.Clinic) []model.Nurse {
	var nurses []model.Nurse
	for _, clinic := range clinics {
		n := 5 + g.r.IntN(2)
		for i := 0; i < n; i++ {
			nurses = append(nurses, model.Nurse{
				NIF:        g.digits("nif", 9),
				Name:       g.uniqueName(),
				Phone:      g.digits("phone", 11),
				Address:    g.address(),
				ClinicName: clinic.Name,
			})
		}
	}
	return nurses
}

// doctors generates three bands of twenty doctors: general practice, a mix
// of orthopedics and cardiology, and dermatology.
func (g *generator) doctors() []model.Doctor {
	pick := func() string { return specialties[0] }
	bands := []func() string{
		pick,
		func() string { return specialties[1+g.r.IntN(2)] },
		func() string { return specialties[3] },
	}

	var doctors []model.Doctor
	for _, specialty := range bands {
		for i := 0; i < doctorsPerBand; i++ {
			doctors = append(doctors, model.Doctor{
				NIF:       g.digits("nif", 9),
				Name:      g.uniqueName(),
				Phone:     g.digits("phone", 11),
				Address:   g.address(),
				Specialty: specialty(),
			})
		}
	}
	return doctors
}

func (g *generator) patients(n int) []model.Patient {
	patients := make([]model.Patient, 0, n)
	now := time.Now()
	for i := 0; i < n; i++ {
		patients = append(patients, model.Patient{
			SSN:       g.digits("ssn", 11),
			NIF:       g.digits("nif", 9),
			Name:      cleanText(g.f.Name()),
			Phone:     g.digits("phone", 11),
			Address:   g.address(),
			BirthDate: g.f.DateRange(now.AddDate(-100, 0, 0), now),
		})
	}
	return patients
}

// rosters assigns every doctor to two distinct clinics, then tops every
// clinic up to the minimum roster size.
func (g *generator) rosters(doctors []model.Doctor, clinics []model.Clinic) map[string][]string {
	roster := map[string][]string{}
	assigned := map[string]map[string]struct{}{}
	add := func(clinic, nif string) bool {
		set, ok := assigned[clinic]
		if !ok {
			set = map[string]struct{}{}
			assigned[clinic] = set
		}
		if _, dup := set[nif]; dup {
			return false
		}
		set[nif] = struct{}{}
		roster[clinic] = append(roster[clinic], nif)
		return true
	}

	for _, doctor := range doctors {
		first := g.r.IntN(len(clinics))
		second := g.r.IntN(len(clinics) - 1)
		if second >= first {
			second++
		}
		add(clinics[first].Name, doctor.NIF)
		add(clinics[second].Name, doctor.NIF)
	}

	for _, clinic := range clinics {
		for len(roster[clinic.Name]) < minDoctorsPerDay {
			add(clinic.Name, doctors[g.r.IntN(len(doctors))].NIF)
		}
	}
	return roster
}

// shifts schedules eight doctors per clinic per weekday. A doctor works at
// most one clinic on any given weekday; when a roster runs dry because its
// doctors are already booked elsewhere that day, the slot is filled from the
// remaining free doctors.
func (g *generator) shifts(roster map[string][]string, doctors []model.Doctor, clinics []model.Clinic) []model.Shift {
	var shifts []model.Shift
	for day := 0; day < 7; day++ {
		busy := map[string]struct{}{}
		for _, clinic := range clinics {
			candidates := append([]string(nil), roster[clinic.Name]...)
			g.r.Shuffle(len(candidates), func(i, j int) {
				candidates[i], candidates[j] = candidates[j], candidates[i]
			})

			picked := 0
			for _, nif := range candidates {
				if picked == minDoctorsPerDay {
					break
				}
				if _, taken := busy[nif]; taken {
					continue
				}
				busy[nif] = struct{}{}
				shifts = append(shifts, model.Shift{DoctorNIF: nif, Day: day, ClinicName: clinic.Name})
				picked++
			}
			for _, doctor := range doctors {
				if picked == minDoctorsPerDay {
					break
				}
				if _, taken := busy[doctor.NIF]; taken {
					continue
				}
				busy[doctor.NIF] = struct{}{}
				shifts = append(shifts, model.Shift{DoctorNIF: doctor.NIF, Day: day, ClinicName: clinic.Name})
				picked++
			}
		}
	}
	return shifts
}

// slotClock is one bookable half-hour: 08:00-12:30 and 14:00-18:30.
func slotClocks() []string {
	var clocks []string
	for hour := 8; hour <= 12; hour++ {
		clocks = append(clocks, fmt.Sprintf("%02d:00:00", hour), fmt.Sprintf("%02d:30:00", hour))
	}
	for hour := 14; hour <= 18; hour++ {
		clocks = append(clocks, fmt.Sprintf("%02d:00:00", hour), fmt.Sprintf("%02d:30:00", hour))
	}
	return clocks
}

func (g *generator) timeSlots(start, end time.Time) []model.TimeSlot {
	clocks := slotClocks()
	var slots []model.TimeSlot
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		for _, clock := range clocks {
			slots = append(slots, model.TimeSlot{Date: date, Time: clock})
		}
	}
	return slots
}

type slotKey struct {
	date  string
	clock string
}

// appointments books up to twenty consultations per clinic per day, at most
// two in a row per doctor, never double-booking a doctor or a patient at
// the same date and time.
func (g *generator) appointments(
	patients []model.Patient,
	clinics []model.Clinic,
	shifts []model.Shift,
	start, end time.Time,
) ([]model.Appointment, []model.Prescription) {
	onDuty := map[string]map[int][]string{}
	for _, shift := range shifts {
		if onDuty[shift.ClinicName] == nil {
			onDuty[shift.ClinicName] = map[int][]string{}
		}
		onDuty[shift.ClinicName][shift.Day] = append(onDuty[shift.ClinicName][shift.Day], shift.DoctorNIF)
	}

	clocks := slotClocks()
	patientBusy := map[string]map[slotKey]struct{}{}
	doctorBusy := map[string]map[slotKey]struct{}{}

	var appointments []model.Appointment
	var prescriptions []model.Prescription
	id := uint(1)

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		day := int(date.Weekday())
		for _, clinic := range clinics {
			available := onDuty[clinic.Name][day]
			if len(available) == 0 {
				continue
			}

			booked := 0
			// Bounded attempts so a fully congested day cannot loop forever.
			for attempt := 0; booked < maxDailyPerClinic && attempt < maxDailyPerClinic*10; attempt++ {
				nif := available[g.r.IntN(len(available))]
				for streak := 0; streak < maxStreakPerDoctor && booked < maxDailyPerClinic; streak++ {
					clock := clocks[g.r.IntN(len(clocks))]
					key := slotKey{date.Format("2006-01-02"), clock}

					if doctorBusy[nif] == nil {
						doctorBusy[nif] = map[slotKey]struct{}{}
					}
					if _, taken := doctorBusy[nif][key]; taken {
						continue
					}

					patient := patients[g.r.IntN(len(patients))]
					if patient.NIF == nif {
						continue
					}
					if patientBusy[patient.SSN] == nil {
						patientBusy[patient.SSN] = map[slotKey]struct{}{}
					}
					if _, taken := patientBusy[patient.SSN][key]; taken {
						continue
					}

					doctorBusy[nif][key] = struct{}{}
					patientBusy[patient.SSN][key] = struct{}{}

					code := g.digits("sns", 12)
					appointments = append(appointments, model.Appointment{
						ID:         id,
						PatientSSN: patient.SSN,
						DoctorNIF:  nif,
						ClinicName: clinic.Name,
						Date:       date,
						Time:       clock,
						SNSCode:    code,
					})
					prescriptions = append(prescriptions, g.prescriptions(code)...)

					id++
					booked++
				}
			}
		}
	}
	return appointments, prescriptions
}

// prescriptions writes one to six medication lines for roughly four out of
// five appointments.
func (g *generator) prescriptions(snsCode string) []model.Prescription {
	if g.r.Float64() >= prescriptionRate {
		return nil
	}
	var lines []model.Prescription
	seen := map[string]struct{}{}
	n := 1 + g.r.IntN(6)
	for i := 0; i < n; i++ {
		medication := cleanText(g.f.Word())
		if _, dup := seen[medication]; dup {
			continue
		}
		seen[medication] = struct{}{}
		lines = append(lines, model.Prescription{
			SNSCode:    snsCode,
			Medication: medication,
			Quantity:   1 + g.r.IntN(3),
		})
	}
	return lines
}

// observations records one to five symptoms and up to three metrics per
// appointment. Symptoms have no value, metrics carry one in [1, 100).
func (g *generator) observations(appointments []model.Appointment) []model.Observation {
	symptoms := make([]string, 50)
	for i := range symptoms {
		symptoms[i] = fmt.Sprintf("Sintoma%d", i+1)
	}
	metrics := make([]string, 20)
	for i := range metrics {
		metrics[i] = fmt.Sprintf("Metrica%d", i+1)
	}

	var observations []model.Observation
	for _, appointment := range appointments {
		seen := map[string]struct{}{}
		for _, parameter := range g.sample(symptoms, 1+g.r.IntN(5)) {
			if _, dup := seen[parameter]; dup {
				continue
			}
			seen[parameter] = struct{}{}
			observations = append(observations, model.Observation{
				AppointmentID: appointment.ID,
				Parameter:     parameter,
			})
		}
		for _, parameter := range g.sample(metrics, g.r.IntN(4)) {
			if _, dup := seen[parameter]; dup {
				continue
			}
			seen[parameter] = struct{}{}
			value := 1.0 + g.r.Float64()*99.0
			observations = append(observations, model.Observation{
				AppointmentID: appointment.ID,
				Parameter:     parameter,
				Value:         &value,
			})
		}
	}
	return observations
}

// sample returns n distinct elements of values.
func (g *generator) sample(values []string, n int) []string {
	if n > len(values) {
		n = len(values)
	}
	shuffled := append([]string(nil), values...)
	g.r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

// Generate builds a complete dataset for the given options.
func Generate(opts Options) (*Dataset, error) {
	if opts.Patients <= 0 {
		return nil, fmt.Errorf("patient count must be positive, got %d", opts.Patients)
	}
	if opts.End.Before(opts.Start) {
		return nil, fmt.Errorf("end date %s precedes start date %s",
			opts.End.Format("2006-01-02"), opts.Start.Format("2006-01-02"))
	}

	g := newGenerator(opts.Seed)

	clinics := g.clinics()
	nurses := g.nurses(clinics)
	doctors := g.doctors()
	patients := g.patients(opts.Patients)
	roster := g.rosters(doctors, clinics)
	shifts := g.shifts(roster, doctors, clinics)
	timeSlots := g.timeSlots(opts.Start, opts.End)
	appointments, prescriptions := g.appointments(patients, clinics, shifts, opts.Start, opts.End)
	observations := g.observations(appointments)

	return &Dataset{
		Clinics:       clinics,
		Nurses:        nurses,
		Doctors:       doctors,
		Patients:      patients,
		Shifts:        shifts,
		TimeSlots:     timeSlots,
		Appointments:  appointments,
		Prescriptions: prescriptions,
		Observations:  observations,
	}, nil
}

const insertBatchSize = 500

// Insert writes the dataset in dependency order and advances the
// appointment id sequence past the explicitly assigned ids.
func (d *Dataset) Insert(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			rows interface{}
			len  int
		}{
			{d.Clinics, len(d.Clinics)},
			{d.Nurses, len(d.Nurses)},
			{d.Doctors, len(d.Doctors)},
			{d.Patients, len(d.Patients)},
			{d.Shifts, len(d.Shifts)},
			{d.TimeSlots, len(d.TimeSlots)},
			{d.Appointments, len(d.Appointments)},
			{d.Prescriptions, len(d.Prescriptions)},
			{d.Observations, len(d.Observations)},
		}
		for _, step := range steps {
			if step.len == 0 {
				continue
			}
			if err := tx.CreateInBatches(step.rows, insertBatchSize).Error; err != nil {
				return err
			}
		}
		if len(d.Appointments) > 0 {
			return tx.Exec(
				"SELECT setval(pg_get_serial_sequence('consulta', 'id'), (SELECT MAX(id) FROM consulta))",
			).Error
		}
		return nil
	})
}
