package movimento

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia rotas de movimentos
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// POST /movimentos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto MovimentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	m, err := dto.ParaModel()
	if err != nil {
		http.Error(w, "data inválida, use AAAA-MM-DD", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Criar(&m); err != nil {
		http.Error(w, "erro ao salvar movimento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(m)
}

// GET /movimentos
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "erro ao listar movimentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// GET /movimentos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	m, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "movimento não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

// PUT /movimentos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "movimento não encontrado", http.StatusNotFound)
		return
	}
	var dto MovimentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	m, err := dto.ParaModel()
	if err != nil {
		http.Error(w, "data inválida, use AAAA-MM-DD", http.StatusBadRequest)
		return
	}
	m.ID = existente.ID
	m.CreatedAt = existente.CreatedAt
	if err := h.Repo.Atualizar(&m); err != nil {
		http.Error(w, "erro ao atualizar movimento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

// DELETE /movimentos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "erro ao excluir movimento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
