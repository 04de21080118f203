package endpoint

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/bdist/saude-api/middleware"
	"github.com/bdist/saude-api/model"
	"github.com/bdist/saude-api/util"
	"github.com/bdist/saude-api/validate"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// snsCodeAttempts bounds the random SNS code search. With 10^12 possible
// codes exhaustion only happens when the table is pathologically full.
const snsCodeAttempts = 10

var (
	errSlotTaken           = errors.New("doctor or patient already booked at that date and time")
	errAppointmentNotFound = errors.New("appointment not found")
)

type appointmentRequest struct {
	SSN  string `json:"ssn" example:"12345678901"`
	NIF  string `json:"nif" example:"123456789"`
	Date string `json:"data" example:"2024-05-25"`
	Time string `json:"hora" example:"10:30:00"`
}

func patientExists(db *gorm.DB, ssn string) (bool, error) {
	var count int64
	if err := db.Model(&model.Patient{}).Where("ssn = ?", ssn).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func doctorExists(db *gorm.DB, nif string) (bool, error) {
	var count int64
	if err := db.Model(&model.Doctor{}).Where("nif = ?", nif).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// checkAppointmentRequest validates the request in a fixed order: missing
// fields, then ssn (format before existence), then nif, then date, then
// time. The first failure is reported and later checks never run, so a
// malformed ssn is never confused with an unknown one. Returns false after
// writing the error response.
func checkAppointmentRequest(c *gin.Context, db *gorm.DB, req appointmentRequest) bool {
	var missing []string
	if req.SSN == "" {
		missing = append(missing, "ssn")
	}
	if req.NIF == "" {
		missing = append(missing, "nif")
	}
	if req.Date == "" {
		missing = append(missing, "data")
	}
	if req.Time == "" {
		missing = append(missing, "hora")
	}
	if len(missing) > 0 {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Missing required fields",
			Err: fmt.Errorf("missing: %s", strings.Join(missing, ", ")),
		})
		return false
	}

	if !validate.SSN(req.SSN) {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid SSN",
			Err: fmt.Errorf("ssn must be exactly 11 digits"),
		})
		return false
	}
	exists, err := patientExists(db, req.SSN)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to check patient",
			Err: err,
		})
		return false
	}
	if !exists {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "SSN not found",
			Err: fmt.Errorf("no patient with ssn %s", req.SSN),
		})
		return false
	}

	if !validate.TaxID(req.NIF) {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid NIF",
			Err: fmt.Errorf("nif must be exactly 9 digits"),
		})
		return false
	}
	exists, err = doctorExists(db, req.NIF)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to check doctor",
			Err: err,
		})
		return false
	}
	if !exists {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "NIF not found",
			Err: fmt.Errorf("no doctor with nif %s", req.NIF),
		})
		return false
	}

	if !validate.Date(req.Date) {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid date",
			Err: fmt.Errorf("data must be YYYY-MM-DD with year 2023 or 2024"),
		})
		return false
	}
	if !validate.Clock(req.Time) {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid time",
			Err: fmt.Errorf("hora must be HH:MM:SS"),
		})
		return false
	}

	return true
}

func randomSNSCode() string {
	digits := make([]byte, 12)
	for i := range digits {
		digits[i] = byte('0' + rand.IntN(10))
	}
	return string(digits)
}

// generateSNSCode samples random 12-digit codes until one is unused,
// giving up after a bounded number of attempts.
func generateSNSCode(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < snsCodeAttempts; attempt++ {
		code := randomSNSCode()
		var count int64
		if err := tx.Model(&model.Appointment{}).Where("codigo_sns = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", fmt.Errorf("no unique sns code found after %d attempts", snsCodeAttempts)
}

// slotTaken reports whether the doctor or the patient already holds an
// appointment at the given date and time.
func slotTaken(tx *gorm.DB, ssn, nif string, date time.Time, clock string) (bool, error) {
	var count int64
	err := tx.Model(&model.Appointment{}).
		Where("data = ? AND hora = ? AND (nif = ? OR ssn = ?)", date, clock, nif, ssn).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// RegisterAppointment godoc
// @Summary      Book an appointment at a clinic
// @Description  Books the given doctor for the given patient, date and time, assigning a fresh SNS code
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Param        clinica path string true "Clinic name"
// @Param        request body appointmentRequest true "Booking details"
// @Success      200 {object} util.APIResponse{data=model.Appointment} "Appointment registered"
// @Failure      400 {object} util.APIResponse "Invalid input or slot already taken"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /a/{clinica}/registar/ [post]
func RegisterAppointment(c *gin.Context) {
	clinic := c.Param("clinica")

	req := appointmentRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}

	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database connection not available",
			Err: fmt.Errorf("db is nil"),
		})
		return
	}

	if !checkAppointmentRequest(c, db, req) {
		return
	}

	date, err := validate.ParseDate(req.Date)
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid date",
			Err: err,
		})
		return
	}

	appointment := model.Appointment{
		PatientSSN: req.SSN,
		DoctorNIF:  req.NIF,
		ClinicName: clinic,
		Date:       date,
		Time:       req.Time,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		taken, err := slotTaken(tx, req.SSN, req.NIF, date, req.Time)
		if err != nil {
			return err
		}
		if taken {
			return errSlotTaken
		}

		code, err := generateSNSCode(tx)
		if err != nil {
			return err
		}
		appointment.SNSCode = code

		if err := tx.Create(&appointment).Error; err != nil {
			// The unique booking indexes are the last line of defense
			// against a concurrent insert between the check and here.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errSlotTaken
			}
			return err
		}
		return nil
	})
	if errors.Is(err, errSlotTaken) {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Slot already taken",
			Err: err,
		})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to register appointment",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointment registered",
		Data: appointment,
	})
}

// CancelAppointment godoc
// @Summary      Cancel an appointment at a clinic
// @Description  Removes the appointment matching patient, doctor, date and time, along with its prescriptions and observations
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Param        clinica path string true "Clinic name"
// @Param        request body appointmentRequest true "Appointment to cancel"
// @Success      200 {object} util.APIResponse "Appointment cancelled"
// @Failure      400 {object} util.APIResponse "Invalid input or appointment not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /a/{clinica}/cancelar/ [post]
func CancelAppointment(c *gin.Context) {
	clinic := c.Param("clinica")

	req := appointmentRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}

	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database connection not available",
			Err: fmt.Errorf("db is nil"),
		})
		return
	}

	if !checkAppointmentRequest(c, db, req) {
		return
	}

	date, err := validate.ParseDate(req.Date)
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid date",
			Err: err,
		})
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var appointment model.Appointment
		err := tx.Where("nome = ? AND ssn = ? AND nif = ? AND data = ? AND hora = ?",
			clinic, req.SSN, req.NIF, date, req.Time).
			First(&appointment).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errAppointmentNotFound
		}
		if err != nil {
			return err
		}

		// The schema does not cascade, so prescriptions and observations
		// referencing the appointment go with it.
		if err := tx.Where("codigo_sns = ?", appointment.SNSCode).Delete(&model.Prescription{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", appointment.ID).Delete(&model.Observation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Appointment{}, appointment.ID).Error
	})
	if errors.Is(err, errAppointmentNotFound) {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Appointment not found",
			Err: err,
		})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to cancel appointment",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointment cancelled",
		Data: nil,
	})
}
