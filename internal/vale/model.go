package vale

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusPendente = "Pendente"
	StatusRecebido = "Recebido"
)

// Vale é um adiantamento em dinheiro concedido a um setorista,
// acompanhado como pendente até a baixa.
type Vale struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Data        time.Time `gorm:"not null;index" json:"data"`
	SetoristaID uint      `gorm:"not null;index" json:"setoristaId"`
	Valor       float64   `gorm:"not null;default:0" json:"valor"`
	Status      string    `gorm:"size:50;not null;default:'Pendente';index" json:"status"`
	Descricao   string    `gorm:"size:255" json:"descricao,omitempty"`
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Vale{})
}
