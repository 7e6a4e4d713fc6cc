package relatorio

import (
	"testing"

	"github.com/BancaFacil/api-setorista/internal/descontoextra"
)

func TestCalcularResultadoMensalSemDescontos(t *testing.T) {
	p := PeriodoAgregado{Chave: "2025-01", ValorLiquido: 1000, Investimentos: 200}

	r := CalcularResultadoMensal(p, nil, false)
	if r.ResultadoFinal != 1000 {
		t.Errorf("sem toggle e sem descontos o resultado é o líquido: %.2f", r.ResultadoFinal)
	}
	if r.Investimentos != 0 {
		t.Errorf("toggle desligado não deveria abater investimentos: %.2f", r.Investimentos)
	}
}

func TestCalcularResultadoMensalComToggleDeInvestimentos(t *testing.T) {
	p := PeriodoAgregado{Chave: "2025-01", ValorLiquido: 1000, Investimentos: 200}

	r := CalcularResultadoMensal(p, nil, true)
	if r.Investimentos != 200 || r.ResultadoFinal != 800 {
		t.Errorf("toggle ligado deveria abater investimentos: %+v", r)
	}
}

func TestCalcularResultadoMensalSoAbateDescontosDoMes(t *testing.T) {
	p := PeriodoAgregado{Chave: "2025-02", ValorLiquido: 1000}
	descontos := []descontoextra.DescontoExtra{
		{MesReferencia: "2025-02", Valor: 100},
		{MesReferencia: "2025-02", Valor: 50},
		{MesReferencia: "2025-03", Valor: 999}, // outro mês, não entra
	}

	r := CalcularResultadoMensal(p, descontos, false)
	if r.DescontosExtras != 150 {
		t.Errorf("DescontosExtras = %.2f, esperado 150", r.DescontosExtras)
	}
	if r.ResultadoFinal != 850 {
		t.Errorf("ResultadoFinal = %.2f, esperado 850", r.ResultadoFinal)
	}
}
