package descontoextra

import "gorm.io/gorm"

// Repository encapsula operações de banco para DescontoExtra
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(d *DescontoExtra) error {
	return r.DB.Create(d).Error
}

// ListarPorMes retorna os descontos do mês de referência (AAAA-MM).
func (r *Repository) ListarPorMes(mes string) ([]DescontoExtra, error) {
	var list []DescontoExtra
	err := r.DB.Where("mes_referencia = ?", mes).Find(&list).Error
	return list, err
}

func (r *Repository) ListarTodos() ([]DescontoExtra, error) {
	var list []DescontoExtra
	err := r.DB.Order("mes_referencia").Find(&list).Error
	return list, err
}

func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&DescontoExtra{}, id).Error
}
