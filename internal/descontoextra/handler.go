package descontoextra

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia rotas de descontos extras
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// POST /descontos-extras
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var d DescontoExtra
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if !MesValido(d.MesReferencia) {
		http.Error(w, "mês de referência inválido, use AAAA-MM", http.StatusBadRequest)
		return
	}
	if d.Descricao == "" {
		http.Error(w, "descrição é obrigatória", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Criar(&d); err != nil {
		http.Error(w, "erro ao salvar desconto extra", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(d)
}

// GET /descontos-extras?mes=AAAA-MM
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	mes := r.URL.Query().Get("mes")

	var (
		list []DescontoExtra
		err  error
	)
	if mes != "" {
		if !MesValido(mes) {
			http.Error(w, "mês inválido, use AAAA-MM", http.StatusBadRequest)
			return
		}
		list, err = h.Repo.ListarPorMes(mes)
	} else {
		list, err = h.Repo.ListarTodos()
	}
	if err != nil {
		http.Error(w, "erro ao listar descontos extras", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// DELETE /descontos-extras/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "erro ao excluir desconto extra", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
