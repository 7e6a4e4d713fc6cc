package investimento

import (
	"time"

	"gorm.io/gorm"
)

// Investimento representa um aporte feito na operação de um setorista.
// Não entra no líquido por setorista; só é abatido no fechamento do mês
// quando o operador liga o desconto de investimentos.
type Investimento struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Data        time.Time `gorm:"not null;index" json:"data"`
	SetoristaID uint      `gorm:"not null;index" json:"setoristaId"`
	Tipo        string    `gorm:"size:100;not null" json:"tipo"` // ex: "Máquina", "Ponto de venda"
	Valor       float64   `gorm:"not null;default:0" json:"valor"`
	Descricao   string    `gorm:"size:255" json:"descricao,omitempty"`
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Investimento{})
}
