package model

// Nurse represents a nurse employed by a single clinic.
type Nurse struct {
	NIF        string `json:"nif" gorm:"column:nif;primaryKey;size:9"`
	Name       string `json:"nome" gorm:"column:nome;unique;not null"`
	Phone      string `json:"telefone" gorm:"column:telefone;not null"`
	Address    string `json:"morada" gorm:"column:morada;not null"`
	ClinicName string `json:"nome_clinica" gorm:"column:nome_clinica;not null"`
}

func (Nurse) TableName() string {
	return "enfermeiro"
}
