package investimento

import "gorm.io/gorm"

// Repository encapsula operações de banco para Investimento
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(i *Investimento) error {
	return r.DB.Create(i).Error
}

func (r *Repository) ListarTodos() ([]Investimento, error) {
	var list []Investimento
	err := r.DB.Order("data").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Investimento, error) {
	var i Investimento
	if err := r.DB.First(&i, id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *Repository) Atualizar(i *Investimento) error {
	return r.DB.Save(i).Error
}

func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Investimento{}, id).Error
}
