package vale

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type valeRequest struct {
	Data        string  `json:"data"`
	SetoristaID uint    `json:"setoristaId"`
	Valor       float64 `json:"valor"`
	Status      string  `json:"status"`
	Descricao   string  `json:"descricao"`
}

func (req valeRequest) paraModel() (Vale, error) {
	data, err := time.Parse("2006-01-02", req.Data)
	if err != nil {
		return Vale{}, err
	}
	status := req.Status
	if status == "" {
		status = StatusPendente
	}
	return Vale{
		Data:        data,
		SetoristaID: req.SetoristaID,
		Valor:       req.Valor,
		Status:      status,
		Descricao:   req.Descricao,
	}, nil
}

// Handler gerencia rotas de vales
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

// POST /vales
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req valeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	v, err := req.paraModel()
	if err != nil {
		http.Error(w, "data inválida, use AAAA-MM-DD", http.StatusBadRequest)
		return
	}
	if v.Status != StatusPendente && v.Status != StatusRecebido {
		http.Error(w, "status inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Criar(&v); err != nil {
		http.Error(w, "erro ao salvar vale", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(v)
}

// GET /vales?status=Pendente
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	var (
		list []Vale
		err  error
	)
	if status != "" {
		list, err = h.Repo.ListarPorStatus(status)
	} else {
		list, err = h.Repo.ListarTodos()
	}
	if err != nil {
		http.Error(w, "erro ao listar vales", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// PUT /vales/{id}/status
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if payload.Status != StatusPendente && payload.Status != StatusRecebido {
		http.Error(w, "status inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.AtualizarStatus(uint(id), payload.Status); err != nil {
		http.Error(w, "erro ao atualizar status do vale", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PUT /vales/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repo.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "vale não encontrado", http.StatusNotFound)
		return
	}
	var req valeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	v, err := req.paraModel()
	if err != nil {
		http.Error(w, "data inválida, use AAAA-MM-DD", http.StatusBadRequest)
		return
	}
	v.ID = existente.ID
	v.CreatedAt = existente.CreatedAt
	if err := h.Repo.Atualizar(&v); err != nil {
		http.Error(w, "erro ao atualizar vale", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// DELETE /vales/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Deletar(uint(id)); err != nil {
		http.Error(w, "erro ao excluir vale", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
