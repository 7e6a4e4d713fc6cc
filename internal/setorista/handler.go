package setorista

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia rotas de setoristas
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// POST /setoristas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var s Setorista
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if s.Nome == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Criar(&s); err != nil {
		http.Error(w, "erro ao salvar setorista", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(s)
}

// GET /setoristas
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "erro ao listar setoristas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// GET /setoristas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	s, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "setorista não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}

// PUT /setoristas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "setorista não encontrado", http.StatusNotFound)
		return
	}
	var payload Setorista
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	existente.Nome = payload.Nome
	if err := h.Repo.Atualizar(existente); err != nil {
		http.Error(w, "erro ao atualizar setorista", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// DELETE /setoristas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "erro ao excluir setorista", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
