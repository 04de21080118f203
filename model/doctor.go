package model

// Doctor represents a doctor identified by a 9-digit tax id.
type Doctor struct {
	NIF       string `json:"nif" gorm:"column:nif;primaryKey;size:9"`
	Name      string `json:"nome" gorm:"column:nome;unique;not null"`
	Phone     string `json:"telefone" gorm:"column:telefone;not null"`
	Address   string `json:"morada" gorm:"column:morada;not null"`
	Specialty string `json:"especialidade" gorm:"column:especialidade;not null"`
}

func (Doctor) TableName() string {
	return "medico"
}
