package main

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/BancaFacil/api-setorista/internal/comissaoretida"
	"github.com/BancaFacil/api-setorista/internal/config"
	"github.com/BancaFacil/api-setorista/internal/descontoextra"
	"github.com/BancaFacil/api-setorista/internal/despesa"
	"github.com/BancaFacil/api-setorista/internal/investimento"
	"github.com/BancaFacil/api-setorista/internal/log"
	"github.com/BancaFacil/api-setorista/internal/movimento"
	"github.com/BancaFacil/api-setorista/internal/relatorio"
	"github.com/BancaFacil/api-setorista/internal/setorista"
	"github.com/BancaFacil/api-setorista/internal/utils/db"
	"github.com/BancaFacil/api-setorista/internal/vale"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	logger := log.New(slog.LevelInfo, "api")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("configuração inválida", "err", err)
		return
	}

	database, err := db.Conectar(cfg)
	if err != nil {
		logger.Error("erro ao conectar no banco", "err", err)
		return
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&setorista.Setorista{},
		&movimento.Movimento{},
		&despesa.Despesa{},
		&investimento.Investimento{},
		&comissaoretida.ComissaoRetida{},
		&descontoextra.DescontoExtra{},
		&vale.Vale{},
	); err != nil {
		logger.Error("erro no AutoMigrate", "err", err)
		return
	}

	// Handlers
	setoristaHandler := setorista.NewHandler(database)
	movimentoHandler := movimento.NewHandler(database)
	despesaHandler := despesa.NewHandler(database)
	investimentoHandler := investimento.NewHandler(database)
	comissaoRetidaHandler := comissaoretida.NewHandler(database)
	descontoExtraHandler := descontoextra.NewHandler(database)
	valeHandler := vale.NewHandler(database)
	relatorioHandler := relatorio.NewHandler(database, cfg, logger)

	// Router
	r := mux.NewRouter()

	// Rotas de setoristas
	r.HandleFunc("/setoristas", setoristaHandler.Criar).Methods("POST")
	r.HandleFunc("/setoristas", setoristaHandler.ListarTodos).Methods("GET")
	r.HandleFunc("/setoristas/{id}", setoristaHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/setoristas/{id}", setoristaHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/setoristas/{id}", setoristaHandler.Deletar).Methods("DELETE")

	// Rotas de movimentos
	r.HandleFunc("/movimentos", movimentoHandler.Criar).Methods("POST")
	r.HandleFunc("/movimentos", movimentoHandler.ListarTodos).Methods("GET")
	r.HandleFunc("/movimentos/{id}", movimentoHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/movimentos/{id}", movimentoHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/movimentos/{id}", movimentoHandler.Deletar).Methods("DELETE")

	// Rotas de despesas
	r.HandleFunc("/despesas", despesaHandler.Criar).Methods("POST")
	r.HandleFunc("/despesas", despesaHandler.ListarTodas).Methods("GET")
	r.HandleFunc("/despesas/{id}", despesaHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/despesas/{id}", despesaHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/despesas/{id}", despesaHandler.Deletar).Methods("DELETE")

	// Rotas de investimentos
	r.HandleFunc("/investimentos", investimentoHandler.Criar).Methods("POST")
	r.HandleFunc("/investimentos", investimentoHandler.ListarTodos).Methods("GET")
	r.HandleFunc("/investimentos/{id}", investimentoHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/investimentos/{id}", investimentoHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/investimentos/{id}", investimentoHandler.Deletar).Methods("DELETE")

	// Rotas de comissões retidas (convivem com o campo do movimento diário)
	r.HandleFunc("/comissoes-retidas", comissaoRetidaHandler.Criar).Methods("POST")
	r.HandleFunc("/comissoes-retidas", comissaoRetidaHandler.ListarTodas).Methods("GET")
	r.HandleFunc("/comissoes-retidas/{id}", comissaoRetidaHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/comissoes-retidas/{id}", comissaoRetidaHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/comissoes-retidas/{id}", comissaoRetidaHandler.Deletar).Methods("DELETE")

	// Rotas de descontos extras
	r.HandleFunc("/descontos-extras", descontoExtraHandler.Criar).Methods("POST")
	r.HandleFunc("/descontos-extras", descontoExtraHandler.Listar).Methods("GET")
	r.HandleFunc("/descontos-extras/{id}", descontoExtraHandler.Deletar).Methods("DELETE")

	// Rotas de vales
	r.HandleFunc("/vales", valeHandler.Criar).Methods("POST")
	r.HandleFunc("/vales", valeHandler.ListarTodos).Methods("GET")
	r.HandleFunc("/vales/{id}", valeHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/vales/{id}/status", valeHandler.AtualizarStatus).Methods("PUT")
	r.HandleFunc("/vales/{id}", valeHandler.Deletar).Methods("DELETE")

	// Rotas de relatórios
	r.HandleFunc("/relatorios/setoristas", relatorioHandler.RelatorioSetoristas).Methods("GET")
	r.HandleFunc("/relatorios/diario", relatorioHandler.RelatorioDiario).Methods("GET")
	r.HandleFunc("/relatorios/comparativo", relatorioHandler.RelatorioComparativo).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"Content-Type"},
	})

	logger.Info("servidor iniciado", "porta", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, c.Handler(r)); err != nil {
		logger.Error("servidor encerrado", "err", err)
	}
}
