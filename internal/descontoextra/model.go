package descontoextra

import (
	"regexp"
	"time"

	"gorm.io/gorm"
)

// DescontoExtra é um abatimento manual aplicado apenas ao resultado final
// do mês de referência. Não participa de nenhum outro agregado.
type DescontoExtra struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	MesReferencia string  `gorm:"size:7;not null;index" json:"mesReferencia"` // AAAA-MM
	Valor         float64 `gorm:"not null;default:0" json:"valor"`
	Descricao     string  `gorm:"size:255;not null" json:"descricao"`
}

var padraoMes = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// MesValido verifica o formato AAAA-MM do mês de referência.
func MesValido(mes string) bool {
	return padraoMes.MatchString(mes)
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&DescontoExtra{})
}
