package relatorio

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/BancaFacil/api-setorista/internal/comissaoretida"
	"github.com/BancaFacil/api-setorista/internal/config"
	"github.com/BancaFacil/api-setorista/internal/descontoextra"
	"github.com/BancaFacil/api-setorista/internal/despesa"
	"github.com/BancaFacil/api-setorista/internal/investimento"
	"github.com/BancaFacil/api-setorista/internal/log"
	"github.com/BancaFacil/api-setorista/internal/movimento"
	"github.com/BancaFacil/api-setorista/internal/setorista"
)

// Handler expõe os relatórios do painel. Cada requisição carrega o seu
// próprio retrato das coleções e recalcula tudo do zero; o motor não guarda
// estado entre chamadas.
type Handler struct {
	setoristas       *setorista.Repository
	movimentos       *movimento.Repository
	despesas         *despesa.Repository
	investimentos    *investimento.Repository
	comissoesRetidas *comissaoretida.Repository
	descontosExtras  *descontoextra.Repository
	cfg              *config.Config
	log              *log.Logger
}

func NewHandler(db *gorm.DB, cfg *config.Config, logger *log.Logger) *Handler {
	return &Handler{
		setoristas:       setorista.NewRepository(db),
		movimentos:       movimento.NewRepository(db),
		despesas:         despesa.NewRepository(db),
		investimentos:    investimento.NewRepository(db),
		comissoesRetidas: comissaoretida.NewRepository(db),
		descontosExtras:  descontoextra.NewRepository(db),
		cfg:              cfg,
		log:              logger.WithComponent("relatorio"),
	}
}

// carregarRetrato busca as coleções em paralelo e devolve o retrato imutável
// usado pela requisição.
func (h *Handler) carregarRetrato(r *http.Request) (Registros, []setorista.Setorista, error) {
	var (
		reg        Registros
		setoristas []setorista.Setorista
	)

	g, _ := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		setoristas, err = h.setoristas.ListarTodos()
		return err
	})
	g.Go(func() (err error) {
		reg.Movimentos, err = h.movimentos.ListarTodos()
		return err
	})
	g.Go(func() (err error) {
		reg.Despesas, err = h.despesas.ListarTodas()
		return err
	})
	g.Go(func() (err error) {
		reg.Investimentos, err = h.investimentos.ListarTodos()
		return err
	})
	g.Go(func() (err error) {
		reg.ComissoesRetidas, err = h.comissoesRetidas.ListarTodas()
		return err
	})
	if err := g.Wait(); err != nil {
		return Registros{}, nil, err
	}
	return reg, setoristas, nil
}

func lerData(r *http.Request, param string) (time.Time, bool) {
	valor := r.URL.Query().Get(param)
	if valor == "" {
		return time.Time{}, true
	}
	d, err := time.Parse("2006-01-02", valor)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func lerSetorista(r *http.Request) (uint, bool) {
	valor := r.URL.Query().Get("setorista")
	if valor == "" || valor == "todos" {
		return 0, true
	}
	id, err := strconv.Atoi(valor)
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) lerAlocacao(r *http.Request) AlocacaoIdeal {
	lerPct := func(param string, padrao float64) float64 {
		valor := r.URL.Query().Get(param)
		if valor == "" {
			return padrao
		}
		pct, err := strconv.ParseFloat(valor, 64)
		if err != nil || pct < 0 || pct > 100 {
			return padrao
		}
		return pct
	}
	return NovaAlocacaoIdeal(
		lerPct("premiosPct", h.cfg.PremiosPct),
		lerPct("comissaoPct", h.cfg.ComissaoPct),
		lerPct("liquidoPct", h.cfg.LiquidoPct),
	)
}

func escreverJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

// GET /relatorios/setoristas?inicio=&fim=&setorista=&premiosPct=&comissaoPct=&liquidoPct=
func (h *Handler) RelatorioSetoristas(w http.ResponseWriter, r *http.Request) {
	inicio, ok := lerData(r, "inicio")
	if !ok {
		http.Error(w, "início inválido, use AAAA-MM-DD", http.StatusBadRequest)
		return
	}
	fim, ok := lerData(r, "fim")
	if !ok {
		http.Error(w, "fim inválido, use AAAA-MM-DD", http.StatusBadRequest)
		return
	}
	setoristaID, ok := lerSetorista(r)
	if !ok {
		http.Error(w, "setorista inválido", http.StatusBadRequest)
		return
	}

	reg, setoristas, err := h.carregarRetrato(r)
	if err != nil {
		h.log.Error("falha ao carregar registros", "err", err)
		http.Error(w, "erro ao carregar registros", http.StatusInternalServerError)
		return
	}

	escopo := setoristas
	if setoristaID > 0 {
		escopo = nil
		for _, s := range setoristas {
			if s.ID == setoristaID {
				escopo = append(escopo, s)
				break
			}
		}
		if len(escopo) == 0 {
			http.Error(w, "setorista não encontrado", http.StatusNotFound)
			return
		}
	}

	filtrado := reg.Filtrar(inicio, fim, setoristaID)
	buckets, orfaos := AgruparPorSetorista(filtrado, escopo)
	if orfaos > 0 {
		h.log.Debug("registros órfãos ignorados na agregação", "quantidade", orfaos)
	}

	linhas := make([]LinhaSetorista, 0, len(escopo))
	periodos := make([]PeriodoAgregado, 0, len(escopo))
	for _, s := range escopo {
		b := buckets[s.ID]
		linhas = append(linhas, LinhaSetorista{SetoristaID: s.ID, Nome: s.Nome, Totais: *b})
		periodos = append(periodos, *b)
	}
	total := TotalGeral(periodos)

	alocacao := h.lerAlocacao(r)
	projecao, comparativo := CompararComProjecao(total, alocacao)

	escreverJSON(w, RelatorioSetoristas{
		Linhas:          linhas,
		Total:           total,
		Alocacao:        alocacao,
		Projecao:        projecao,
		Comparativo:     comparativo,
		RegistrosOrfaos: orfaos,
	})
}

// GET /relatorios/diario?inicio=&fim=&setorista=
func (h *Handler) RelatorioDiario(w http.ResponseWriter, r *http.Request) {
	inicio, ok := lerData(r, "inicio")
	if !ok {
		http.Error(w, "início inválido, use AAAA-MM-DD", http.StatusBadRequest)
		return
	}
	fim, ok := lerData(r, "fim")
	if !ok {
		http.Error(w, "fim inválido, use AAAA-MM-DD", http.StatusBadRequest)
		return
	}
	setoristaID, ok := lerSetorista(r)
	if !ok {
		http.Error(w, "setorista inválido", http.StatusBadRequest)
		return
	}

	reg, _, err := h.carregarRetrato(r)
	if err != nil {
		h.log.Error("falha ao carregar registros", "err", err)
		http.Error(w, "erro ao carregar registros", http.StatusInternalServerError)
		return
	}

	dias := AgruparPorDia(reg.Filtrar(inicio, fim, setoristaID))
	escreverJSON(w, RelatorioDiario{
		Dias:  dias,
		Total: TotalGeral(dias),
	})
}

// GET /relatorios/comparativo?meses=AAAA-MM,AAAA-MM&setorista=&descontarInvestimentos=
func (h *Handler) RelatorioComparativo(w http.ResponseWriter, r *http.Request) {
	var meses []string
	for _, mes := range strings.Split(r.URL.Query().Get("meses"), ",") {
		mes = strings.TrimSpace(mes)
		if mes == "" {
			continue
		}
		if !descontoextra.MesValido(mes) {
			http.Error(w, "mês inválido em 'meses', use AAAA-MM", http.StatusBadRequest)
			return
		}
		meses = append(meses, mes)
	}
	sort.Strings(meses) // chaves AAAA-MM ordenam cronologicamente

	setoristaID, ok := lerSetorista(r)
	if !ok {
		http.Error(w, "setorista inválido", http.StatusBadRequest)
		return
	}
	descontarInvestimentos := r.URL.Query().Get("descontarInvestimentos") == "true"

	reg, setoristas, err := h.carregarRetrato(r)
	if err != nil {
		h.log.Error("falha ao carregar registros", "err", err)
		http.Error(w, "erro ao carregar registros", http.StatusInternalServerError)
		return
	}

	escopo := "todos os setoristas"
	if setoristaID > 0 {
		encontrado := false
		for _, s := range setoristas {
			if s.ID == setoristaID {
				escopo = s.Nome
				encontrado = true
				break
			}
		}
		if !encontrado {
			http.Error(w, "setorista não encontrado", http.StatusNotFound)
			return
		}
	}

	buckets := AgruparPorMes(reg.Filtrar(time.Time{}, time.Time{}, setoristaID), meses)
	periodos := make([]PeriodoAgregado, 0, len(meses))
	for _, mes := range meses {
		periodos = append(periodos, *buckets[mes])
	}

	variacoes := CalcularVariacoes(periodos)

	resposta := RelatorioComparativo{
		Meses:     periodos,
		Variacoes: variacoes,
		Resumo:    ResumoPeriodosInsuficientes,
	}

	if destaques, ok := CalcularDestaques(periodos); ok {
		resposta.Destaques = &destaques
		resposta.Resumo = GerarResumo(escopo,
			periodos[0].Chave, periodos[len(periodos)-1].Chave,
			variacoes, destaques.TendenciaGeral)
	}

	for _, p := range periodos {
		descontos, err := h.descontosExtras.ListarPorMes(p.Chave)
		if err != nil {
			h.log.Error("falha ao carregar descontos extras", "mes", p.Chave, "err", err)
			http.Error(w, "erro ao carregar descontos extras", http.StatusInternalServerError)
			return
		}
		resposta.Fechamentos = append(resposta.Fechamentos,
			CalcularResultadoMensal(p, descontos, descontarInvestimentos))
	}

	escreverJSON(w, resposta)
}
