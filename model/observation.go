package model

// Observation is a symptom or metric recorded during an appointment.
// Symptoms carry no value; metrics do.
type Observation struct {
	AppointmentID uint     `json:"id" gorm:"column:id;primaryKey"`
	Parameter     string   `json:"parametro" gorm:"column:parametro;primaryKey"`
	Value         *float64 `json:"valor,omitempty" gorm:"column:valor"`
}

func (Observation) TableName() string {
	return "observacao"
}
