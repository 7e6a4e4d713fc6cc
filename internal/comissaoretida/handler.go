package comissaoretida

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type comissaoRetidaRequest struct {
	Data        string  `json:"data"`
	SetoristaID uint    `json:"setoristaId"`
	Valor       float64 `json:"valor"`
	Descricao   string  `json:"descricao"`
}

func (req comissaoRetidaRequest) paraModel() (ComissaoRetida, error) {
	data, err := time.Parse("2006-01-02", req.Data)
	if err != nil {
		return ComissaoRetida{}, err
	}
	return ComissaoRetida{
		Data:        data,
		SetoristaID: req.SetoristaID,
		Valor:       req.Valor,
		Descricao:   req.Descricao,
	}, nil
}

// Handler gerencia rotas de comissões retidas
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// POST /comissoes-retidas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req comissaoRetidaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	c, err := req.paraModel()
	if err != nil {
		http.Error(w, "data inválida, use AAAA-MM-DD", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Criar(&c); err != nil {
		http.Error(w, "erro ao salvar comissão retida", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /comissoes-retidas
func (h *Handler) ListarTodas(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodas()
	if err != nil {
		http.Error(w, "erro ao listar comissões retidas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// GET /comissoes-retidas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "comissão retida não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// PUT /comissoes-retidas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "comissão retida não encontrada", http.StatusNotFound)
		return
	}
	var req comissaoRetidaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	c, err := req.paraModel()
	if err != nil {
		http.Error(w, "data inválida, use AAAA-MM-DD", http.StatusBadRequest)
		return
	}
	c.ID = existente.ID
	c.CreatedAt = existente.CreatedAt
	if err := h.Repo.Atualizar(&c); err != nil {
		http.Error(w, "erro ao atualizar comissão retida", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// DELETE /comissoes-retidas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "erro ao excluir comissão retida", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
