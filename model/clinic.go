package model

// Clinic represents a clinic location.
type Clinic struct {
	Name    string `json:"nome" gorm:"column:nome;primaryKey"`
	Phone   string `json:"telefone" gorm:"column:telefone;not null"`
	Address string `json:"morada" gorm:"column:morada;not null"`
}

func (Clinic) TableName() string {
	return "clinica"
}
