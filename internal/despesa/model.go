package despesa

import (
	"time"

	"gorm.io/gorm"
)

// Despesa representa um gasto lançado contra um setorista.
// Sempre reduz o líquido do setorista/dia correspondente.
type Despesa struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Data        time.Time `gorm:"not null;index" json:"data"`
	SetoristaID uint      `gorm:"not null;index" json:"setoristaId"`
	Tipo        string    `gorm:"size:100;not null" json:"tipo"` // ex: "Combustível", "Alimentação"
	Valor       float64   `gorm:"not null;default:0" json:"valor"`
	Descricao   string    `gorm:"size:255" json:"descricao,omitempty"`
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Despesa{})
}
