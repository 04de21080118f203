package model

import "time"

// Appointment represents a booked consultation. The id is generated by the
// database; the SNS code links prescriptions to the appointment. The unique
// indexes keep a doctor and a patient from holding two appointments at the
// same date and time.
type Appointment struct {
	ID         uint      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	PatientSSN string    `json:"ssn" gorm:"column:ssn;not null;size:11;uniqueIndex:idx_consulta_paciente_slot"`
	DoctorNIF  string    `json:"nif" gorm:"column:nif;not null;size:9;uniqueIndex:idx_consulta_medico_slot"`
	ClinicName string    `json:"nome" gorm:"column:nome;not null"`
	Date       time.Time `json:"data" gorm:"column:data;type:date;not null;uniqueIndex:idx_consulta_paciente_slot;uniqueIndex:idx_consulta_medico_slot"`
	Time       string    `json:"hora" gorm:"column:hora;type:time;not null;uniqueIndex:idx_consulta_paciente_slot;uniqueIndex:idx_consulta_medico_slot"`
	SNSCode    string    `json:"codigo_sns" gorm:"column:codigo_sns;unique;not null;size:12"`
}

func (Appointment) TableName() string {
	return "consulta"
}
