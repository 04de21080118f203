package model

// Prescription is one medication line of an appointment's prescription,
// keyed by the appointment's SNS code and the medication name.
type Prescription struct {
	SNSCode    string `json:"codigo_sns" gorm:"column:codigo_sns;primaryKey;size:12"`
	Medication string `json:"medicamento" gorm:"column:medicamento;primaryKey"`
	Quantity   int    `json:"quantidade" gorm:"column:quantidade;not null"`
}

func (Prescription) TableName() string {
	return "receita"
}
