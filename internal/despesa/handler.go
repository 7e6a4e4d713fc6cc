package despesa

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// request DTO
type despesaRequest struct {
	Data        string  `json:"data"`
	SetoristaID uint    `json:"setoristaId"`
	Tipo        string  `json:"tipo"`
	Valor       float64 `json:"valor"`
	Descricao   string  `json:"descricao"`
}

func (req despesaRequest) paraModel() (Despesa, error) {
	data, err := time.Parse("2006-01-02", req.Data)
	if err != nil {
		return Despesa{}, err
	}
	return Despesa{
		Data:        data,
		SetoristaID: req.SetoristaID,
		Tipo:        req.Tipo,
		Valor:       req.Valor,
		Descricao:   req.Descricao,
	}, nil
}

// Handler gerencia rotas de despesas
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// POST /despesas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req despesaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	d, err := req.paraModel()
	if err != nil {
		http.Error(w, "data inválida, use AAAA-MM-DD", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Criar(&d); err != nil {
		http.Error(w, "erro ao salvar despesa", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(d)
}

// GET /despesas
func (h *Handler) ListarTodas(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.ListarTodas()
	if err != nil {
		http.Error(w, "erro ao listar despesas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// GET /despesas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	d, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "despesa não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(d)
}

// PUT /despesas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "despesa não encontrada", http.StatusNotFound)
		return
	}
	var req despesaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	d, err := req.paraModel()
	if err != nil {
		http.Error(w, "data inválida, use AAAA-MM-DD", http.StatusBadRequest)
		return
	}
	d.ID = existente.ID
	d.CreatedAt = existente.CreatedAt
	if err := h.Repo.Atualizar(&d); err != nil {
		http.Error(w, "erro ao atualizar despesa", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(d)
}

// DELETE /despesas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "erro ao excluir despesa", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
