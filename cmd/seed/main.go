// Command seed fills the clinic database with a synthetic dataset:
// clinics, nurses, doctors, patients, shifts, two years of appointments
// with prescriptions and observations, and the bookable slot calendar.
package main

import (
	"flag"
	"time"

	"github.com/bdist/saude-api/config"
	"github.com/bdist/saude-api/seed"
	"github.com/bdist/saude-api/util"
)

func main() {
	log := util.Log()

	patients := flag.Int("patients", 5000, "number of patients to generate")
	start := flag.String("start", "2023-01-01", "first appointment date (YYYY-MM-DD)")
	end := flag.String("end", "2024-12-31", "last appointment date (YYYY-MM-DD)")
	randSeed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	flag.Parse()

	startDate, err := time.Parse("2006-01-02", *start)
	if err != nil {
		log.Fatalf("invalid -start: %v", err)
	}
	endDate, err := time.Parse("2006-01-02", *end)
	if err != nil {
		log.Fatalf("invalid -end: %v", err)
	}

	dataset, err := seed.Generate(seed.Options{
		Patients: *patients,
		Start:    startDate,
		End:      endDate,
		Seed:     *randSeed,
	})
	if err != nil {
		log.Fatalf("generate dataset: %v", err)
	}
	log.Infof("generated %d patients, %d doctors, %d shifts, %d appointments, %d prescriptions, %d observations",
		len(dataset.Patients), len(dataset.Doctors), len(dataset.Shifts),
		len(dataset.Appointments), len(dataset.Prescriptions), len(dataset.Observations))

	db, err := config.ConnectPostgres()
	if err != nil {
		log.Fatalf("Error connecting to Postgres: %v", err)
	}

	started := time.Now()
	if err := dataset.Insert(db); err != nil {
		log.Fatalf("insert dataset: %v", err)
	}
	log.Infof("dataset inserted in %s", time.Since(started).Round(time.Millisecond))
}
