package vale

import "gorm.io/gorm"

// Repository encapsula operações de banco para Vale
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(v *Vale) error {
	return r.DB.Create(v).Error
}

func (r *Repository) ListarTodos() ([]Vale, error) {
	var list []Vale
	err := r.DB.Order("data").Find(&list).Error
	return list, err
}

// ListarPorStatus retorna os vales com um determinado status.
func (r *Repository) ListarPorStatus(status string) ([]Vale, error) {
	var list []Vale
	err := r.DB.Where("status = ?", status).Order("data").Find(&list).Error
	return list, err
}

func (r *Repository) BuscarPorID(id uint) (*Vale, error) {
	var v Vale
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) Atualizar(v *Vale) error {
	return r.DB.Save(v).Error
}

// AtualizarStatus dá baixa (ou reabre) um vale sem tocar nos demais campos.
func (r *Repository) AtualizarStatus(id uint, status string) error {
	return r.DB.Model(&Vale{}).Where("id = ?", id).Update("status", status).Error
}

func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Vale{}, id).Error
}
