package investimento

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type investimentoRequest struct {
	Data        string  `json:"data"`
	SetoristaID uint    `json:"setoristaId"`
	Tipo        string  `json:"tipo"`
	Valor       float64 `json:"valor"`
	Descricao   string  `json:"descricao"`
}

func (req investimentoRequest) paraModel() (Investimento, error) {
	data, err := time.Parse("2006-01-02", req.Data)
	if err != nil {
		return Investimento{}, err
	}
	return Investimento{
		Data:        data,
		SetoristaID: req.SetoristaID,
		Tipo:        req.Tipo,
		Valor:       req.Valor,
		Descricao:   req.Descricao,
	}, nil
}

// Handler gerencia rotas de investimentos
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// POST /investimentos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req investimentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	i, err := req.paraModel()
	if err != nil {
		http.Error(w, "data inválida, use AAAA-MM-DD", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Criar(&i); err != nil {
		http.Error(w, "erro ao salvar investimento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(i)
}

// GET /investimentos
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodos()
	if err != nil {
		http.Error(w, "erro ao listar investimentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// GET /investimentos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	i, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "investimento não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(i)
}

// PUT /investimentos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "investimento não encontrado", http.StatusNotFound)
		return
	}
	var req investimentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	i, err := req.paraModel()
	if err != nil {
		http.Error(w, "data inválida, use AAAA-MM-DD", http.StatusBadRequest)
		return
	}
	i.ID = existente.ID
	i.CreatedAt = existente.CreatedAt
	if err := h.Repo.Atualizar(&i); err != nil {
		http.Error(w, "erro ao atualizar investimento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(i)
}

// DELETE /investimentos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "erro ao excluir investimento", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
