package comissaoretida

import (
	"time"

	"gorm.io/gorm"
)

// ComissaoRetida é o lançamento avulso de comissão retida de um setorista.
// Convive com o campo ComissaoRetida do movimento diário: os relatórios somam
// as duas fontes no mesmo total de comissão retida.
type ComissaoRetida struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Data        time.Time `gorm:"not null;index" json:"data"`
	SetoristaID uint      `gorm:"not null;index" json:"setoristaId"`
	Valor       float64   `gorm:"not null;default:0" json:"valor"`
	Descricao   string    `gorm:"size:255" json:"descricao,omitempty"`
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ComissaoRetida{})
}
