package endpoint

import (
	"fmt"

	"github.com/bdist/saude-api/middleware"
	"github.com/bdist/saude-api/model"
	"github.com/bdist/saude-api/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type clinicListEntry struct {
	Name    string `json:"nome" gorm:"column:nome"`
	Address string `json:"morada" gorm:"column:morada"`
}

// ListClinics godoc
// @Summary      List all clinics
// @Description  Get the name and address of every clinic
// @Tags         Clinic
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]clinicListEntry} "Clinics retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       / [get]
func ListClinics(c *gin.Context) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database connection not available",
			Err: fmt.Errorf("db is nil"),
		})
		return
	}

	var clinics []clinicListEntry
	if err := db.Model(&model.Clinic{}).Select("nome", "morada").Order("nome").Find(&clinics).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve clinics",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Clinics retrieved",
		Data: clinics,
	})
}

func fetchSpecialties(db *gorm.DB, clinic string) ([]string, error) {
	var specialties []string
	query := db.Model(&model.Doctor{}).
		Distinct().
		Joins("JOIN trabalha ON trabalha.nif = medico.nif").
		Where("trabalha.nome = ?", clinic).
		Order("especialidade")
	if err := query.Pluck("especialidade", &specialties).Error; err != nil {
		return nil, err
	}
	return specialties, nil
}

// ListSpecialties godoc
// @Summary      List specialties offered at a clinic
// @Tags         Clinic
// @Produce      json
// @Param        clinica path string true "Clinic name"
// @Success      200 {object} util.APIResponse{data=[]string} "Specialties retrieved"
// @Failure      400 {object} util.APIResponse "No specialties for this clinic"
// @Router       /c/{clinica}/ [get]
func ListSpecialties(c *gin.Context) {
	clinic := c.Param("clinica")

	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database connection not available",
			Err: fmt.Errorf("db is nil"),
		})
		return
	}

	specialties, err := fetchSpecialties(db, clinic)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve specialties",
			Err: err,
		})
		return
	}
	if len(specialties) == 0 {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "No specialties for this clinic",
			Err: fmt.Errorf("no doctor works at clinic %q", clinic),
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Specialties retrieved",
		Data: specialties,
	})
}

// doctorSlot is one upcoming appointment of a doctor, as produced by the
// availability query.
type doctorSlot struct {
	NIF    string `json:"nif" gorm:"column:nif"`
	Doctor string `json:"medico" gorm:"column:medico"`
	Date   string `json:"data" gorm:"column:data"`
	Time   string `json:"hora" gorm:"column:hora"`
}

// availabilityQuery ranks each doctor's appointments after the current date
// by (date, time) and keeps the first three per doctor.
const availabilityQuery = `
WITH proximas_consultas AS (
    SELECT
        m.nif,
        m.nome AS medico,
        c.data,
        c.hora,
        ROW_NUMBER() OVER (PARTITION BY m.nif ORDER BY c.data, c.hora) AS row_num
    FROM medico m
    JOIN consulta c ON c.nif = m.nif
    WHERE
        m.especialidade = ? AND
        c.nome = ? AND
        c.data > CURRENT_DATE
)
SELECT
    nif,
    medico,
    to_char(data, 'YYYY-MM-DD') AS data,
    to_char(hora, 'HH24:MI:SS') AS hora
FROM proximas_consultas
WHERE row_num <= 3
ORDER BY nif, data, hora`

func fetchDoctorSlots(db *gorm.DB, clinic, specialty string) ([]doctorSlot, error) {
	var slots []doctorSlot
	if err := db.Raw(availabilityQuery, specialty, clinic).Scan(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// ListAvailability godoc
// @Summary      List doctors of a specialty at a clinic with their next three upcoming slots
// @Tags         Clinic
// @Produce      json
// @Param        clinica path string true "Clinic name"
// @Param        especialidade path string true "Specialty"
// @Success      200 {object} util.APIResponse{data=[]doctorSlot} "Availability retrieved"
// @Failure      400 {object} util.APIResponse "No availability"
// @Router       /c/{clinica}/{especialidade}/ [get]
func ListAvailability(c *gin.Context) {
	clinic := c.Param("clinica")
	specialty := c.Param("especialidade")

	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database connection not available",
			Err: fmt.Errorf("db is nil"),
		})
		return
	}

	slots, err := fetchDoctorSlots(db, clinic, specialty)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve availability",
			Err: err,
		})
		return
	}
	if len(slots) == 0 {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "No availability",
			Err: fmt.Errorf("no %s doctor at clinic %q has upcoming slots", specialty, clinic),
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Availability retrieved",
		Data: slots,
	})
}
