package movimento

import "gorm.io/gorm"

// Repository encapsula operações de banco para Movimento
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(m *Movimento) error {
	return r.DB.Create(m).Error
}

func (r *Repository) ListarTodos() ([]Movimento, error) {
	var list []Movimento
	err := r.DB.Order("data").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Movimento, error) {
	var m Movimento
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Atualizar(m *Movimento) error {
	return r.DB.Save(m).Error
}

func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Movimento{}, id).Error
}
