package model

// Shift assigns a doctor to a clinic on a weekday (0 = Sunday .. 6 =
// Saturday). A doctor holds at most one shift per weekday.
type Shift struct {
	DoctorNIF  string `json:"nif" gorm:"column:nif;primaryKey;size:9"`
	Day        int    `json:"dia_da_semana" gorm:"column:dia_da_semana;primaryKey"`
	ClinicName string `json:"nome" gorm:"column:nome;not null"`
}

func (Shift) TableName() string {
	return "trabalha"
}
