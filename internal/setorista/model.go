package setorista

import (
	"gorm.io/gorm"

	"github.com/BancaFacil/api-setorista/internal/movimento"
)

// Setorista representa o vendedor de rua cuja atividade é acompanhada no painel
type Setorista struct {
	gorm.Model
	Nome       string                `gorm:"size:255;not null" json:"nome"`
	Movimentos []movimento.Movimento `gorm:"foreignKey:SetoristaID" json:"movimentos,omitempty"`
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Setorista{})
}
