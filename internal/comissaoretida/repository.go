package comissaoretida

import "gorm.io/gorm"

// Repository encapsula operações de banco para ComissaoRetida
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(c *ComissaoRetida) error {
	return r.DB.Create(c).Error
}

func (r *Repository) ListarTodas() ([]ComissaoRetida, error) {
	var list []ComissaoRetida
	err := r.DB.Order("data").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*ComissaoRetida, error) {
	var c ComissaoRetida
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Atualizar(c *ComissaoRetida) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&ComissaoRetida{}, id).Error
}
