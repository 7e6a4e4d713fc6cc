package setorista

import "gorm.io/gorm"

// Repository encapsula operações de banco para Setorista
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(s *Setorista) error {
	return r.DB.Create(s).Error
}

// ListarTodos retorna os setoristas ativos em ordem alfabética
func (r *Repository) ListarTodos() ([]Setorista, error) {
	var list []Setorista
	err := r.DB.Order("nome").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Setorista, error) {
	var s Setorista
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Atualizar(s *Setorista) error {
	return r.DB.Save(s).Error
}

func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Setorista{}, id).Error
}
