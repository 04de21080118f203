package model

import "time"

// Patient represents a patient identified by an 11-digit social security
// number.
type Patient struct {
	SSN       string    `json:"ssn" gorm:"column:ssn;primaryKey;size:11"`
	NIF       string    `json:"nif" gorm:"column:nif;unique;not null;size:9"`
	Name      string    `json:"nome" gorm:"column:nome;not null"`
	Phone     string    `json:"telefone" gorm:"column:telefone;not null"`
	Address   string    `json:"morada" gorm:"column:morada;not null"`
	BirthDate time.Time `json:"data_nasc" gorm:"column:data_nasc;type:date;not null"`
}

func (Patient) TableName() string {
	return "paciente"
}
