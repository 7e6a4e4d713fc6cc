package despesa

import "gorm.io/gorm"

// Repository encapsula operações de banco para Despesa
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(d *Despesa) error {
	return r.DB.Create(d).Error
}

func (r *Repository) ListarTodas() ([]Despesa, error) {
	var list []Despesa
	err := r.DB.Order("data").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Despesa, error) {
	var d Despesa
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) Atualizar(d *Despesa) error {
	return r.DB.Save(d).Error
}

func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Despesa{}, id).Error
}
