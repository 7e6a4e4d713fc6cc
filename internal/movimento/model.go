package movimento

import (
	"time"

	"gorm.io/gorm"
)

// Movimento representa o lançamento diário de um setorista:
// vendas do dia, comissão, comissão retida e prêmios pagos.
type Movimento struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Data        time.Time `gorm:"not null;index" json:"data"`
	SetoristaID uint      `gorm:"not null;index" json:"setoristaId"`

	Vendas         float64 `gorm:"not null;default:0" json:"vendas"`
	Comissao       float64 `gorm:"not null;default:0" json:"comissao"`
	ComissaoRetida float64 `gorm:"not null;default:0" json:"comissaoRetida"`
	Premios        float64 `gorm:"not null;default:0" json:"premios"`

	// Calculado na criação/edição; lido como está nos relatórios.
	ValorLiquido float64 `gorm:"not null;default:0" json:"valorLiquido"`
}

// CalcularLiquido recalcula o líquido do lançamento a partir dos campos brutos.
func (m *Movimento) CalcularLiquido() {
	m.ValorLiquido = m.Vendas - m.Comissao - m.ComissaoRetida - m.Premios
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Movimento{})
}
