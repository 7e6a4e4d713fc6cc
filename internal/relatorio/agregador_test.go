package relatorio

import (
	"math"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/BancaFacil/api-setorista/internal/comissaoretida"
	"github.com/BancaFacil/api-setorista/internal/despesa"
	"github.com/BancaFacil/api-setorista/internal/investimento"
	"github.com/BancaFacil/api-setorista/internal/movimento"
	"github.com/BancaFacil/api-setorista/internal/setorista"
)

func dia(ano, mes, d int) time.Time {
	return time.Date(ano, time.Month(mes), d, 0, 0, 0, 0, time.UTC)
}

func novoSetorista(id uint, nome string) setorista.Setorista {
	return setorista.Setorista{Model: gorm.Model{ID: id}, Nome: nome}
}

func quaseIgual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestAgruparPorSetoristaSemeiaZerados(t *testing.T) {
	setoristas := []setorista.Setorista{
		novoSetorista(1, "Carlos"),
		novoSetorista(2, "Marta"),
	}
	reg := Registros{
		Movimentos: []movimento.Movimento{
			{SetoristaID: 1, Data: dia(2025, 1, 10), Vendas: 100, ValorLiquido: 100},
		},
	}

	buckets, orfaos := AgruparPorSetorista(reg, setoristas)
	if orfaos != 0 {
		t.Errorf("orfaos = %d, esperado 0", orfaos)
	}
	if len(buckets) != 2 {
		t.Fatalf("buckets = %d, esperado um por setorista", len(buckets))
	}
	marta := buckets[2]
	if marta == nil {
		t.Fatal("setorista sem lançamento deveria aparecer zerado")
	}
	if marta.Vendas != 0 || marta.Comissao != 0 || marta.ComissaoRetida != 0 ||
		marta.Premios != 0 || marta.Despesas != 0 || marta.Investimentos != 0 ||
		marta.ValorLiquido != 0 {
		t.Errorf("bucket sem lançamento deveria ter todos os campos zerados: %+v", marta)
	}
	if marta.Chave != "Marta" {
		t.Errorf("Chave = %q, esperado o nome do setorista", marta.Chave)
	}
}

func TestAgruparPorSetoristaCenarioCompleto(t *testing.T) {
	setoristas := []setorista.Setorista{novoSetorista(1, "Carlos")}
	reg := Registros{
		Movimentos: []movimento.Movimento{
			{SetoristaID: 1, Data: dia(2025, 2, 3), Vendas: 1000, Comissao: 100, Premios: 200, ValorLiquido: 700},
			{SetoristaID: 1, Data: dia(2025, 2, 4), Vendas: 500, Comissao: 50, Premios: 100, ValorLiquido: 350},
		},
		Despesas: []despesa.Despesa{
			{SetoristaID: 1, Data: dia(2025, 2, 5), Valor: 50},
		},
	}

	buckets, _ := AgruparPorSetorista(reg, setoristas)
	b := buckets[1]
	if b.Vendas != 1500 || b.Comissao != 150 || b.Premios != 300 || b.Despesas != 50 {
		t.Errorf("totais incorretos: %+v", b)
	}
	if b.ValorLiquido != 1000 {
		t.Errorf("ValorLiquido = %.2f, esperado 1000", b.ValorLiquido)
	}
}

func TestAgruparConsistenciaDoLiquido(t *testing.T) {
	setoristas := []setorista.Setorista{novoSetorista(1, "Carlos")}
	mov := movimento.Movimento{
		SetoristaID: 1, Data: dia(2025, 3, 1),
		Vendas: 987.65, Comissao: 123.45, ComissaoRetida: 10.10, Premios: 55.55,
	}
	mov.CalcularLiquido()
	reg := Registros{
		Movimentos: []movimento.Movimento{mov},
		Despesas: []despesa.Despesa{
			{SetoristaID: 1, Data: dia(2025, 3, 2), Valor: 33.33},
		},
	}

	buckets, _ := AgruparPorSetorista(reg, setoristas)
	b := buckets[1]
	esperado := b.Vendas - b.Comissao - b.ComissaoRetida - b.Premios - b.Despesas
	if !quaseIgual(b.ValorLiquido, esperado) {
		t.Errorf("ValorLiquido = %v, esperado %v", b.ValorLiquido, esperado)
	}
}

func TestAgruparSomaAsDuasFontesDeComissaoRetida(t *testing.T) {
	setoristas := []setorista.Setorista{novoSetorista(1, "Carlos")}
	mov := movimento.Movimento{
		SetoristaID: 1, Data: dia(2025, 4, 1),
		Vendas: 1000, ComissaoRetida: 80,
	}
	mov.CalcularLiquido()
	reg := Registros{
		Movimentos: []movimento.Movimento{mov},
		ComissoesRetidas: []comissaoretida.ComissaoRetida{
			{SetoristaID: 1, Data: dia(2025, 4, 2), Valor: 20},
		},
	}

	buckets, _ := AgruparPorSetorista(reg, setoristas)
	b := buckets[1]
	if b.ComissaoRetida != 100 {
		t.Errorf("ComissaoRetida = %.2f, esperado 100 (80 do movimento + 20 do avulso)", b.ComissaoRetida)
	}
	// o avulso também abate o líquido; o do movimento já veio abatido
	if b.ValorLiquido != 900 {
		t.Errorf("ValorLiquido = %.2f, esperado 900", b.ValorLiquido)
	}
}

func TestAgruparInvestimentoNaoAlteraLiquido(t *testing.T) {
	setoristas := []setorista.Setorista{novoSetorista(1, "Carlos")}
	reg := Registros{
		Movimentos: []movimento.Movimento{
			{SetoristaID: 1, Data: dia(2025, 5, 1), Vendas: 300, ValorLiquido: 300},
		},
		Investimentos: []investimento.Investimento{
			{SetoristaID: 1, Data: dia(2025, 5, 2), Valor: 150},
		},
	}

	buckets, _ := AgruparPorSetorista(reg, setoristas)
	b := buckets[1]
	if b.Investimentos != 150 {
		t.Errorf("Investimentos = %.2f, esperado 150", b.Investimentos)
	}
	if b.ValorLiquido != 300 {
		t.Errorf("investimento não deveria alterar o líquido: %.2f", b.ValorLiquido)
	}
}

func TestAgruparIgnoraRegistrosOrfaos(t *testing.T) {
	setoristas := []setorista.Setorista{novoSetorista(1, "Carlos")}
	reg := Registros{
		Movimentos: []movimento.Movimento{
			{SetoristaID: 1, Data: dia(2025, 6, 1), Vendas: 100, ValorLiquido: 100},
			{SetoristaID: 99, Data: dia(2025, 6, 1), Vendas: 999, ValorLiquido: 999},
		},
		Despesas: []despesa.Despesa{
			{SetoristaID: 99, Data: dia(2025, 6, 2), Valor: 10},
		},
	}

	buckets, orfaos := AgruparPorSetorista(reg, setoristas)
	if orfaos != 2 {
		t.Errorf("orfaos = %d, esperado 2", orfaos)
	}
	if len(buckets) != 1 {
		t.Errorf("registro órfão não deveria criar bucket: %d buckets", len(buckets))
	}
	if buckets[1].Vendas != 100 {
		t.Errorf("Vendas = %.2f, esperado 100", buckets[1].Vendas)
	}
}

func TestAgruparPorDiaOrdenaCronologicamente(t *testing.T) {
	reg := Registros{
		Movimentos: []movimento.Movimento{
			{SetoristaID: 1, Data: dia(2025, 1, 31), Vendas: 1},
			{SetoristaID: 1, Data: dia(2025, 2, 1), Vendas: 2},
			{SetoristaID: 1, Data: dia(2025, 1, 15), Vendas: 3},
		},
	}

	dias := AgruparPorDia(reg)
	if len(dias) != 3 {
		t.Fatalf("dias = %d, esperado 3", len(dias))
	}
	esperado := []string{"15/01", "31/01", "01/02"}
	for i, chave := range esperado {
		if dias[i].Chave != chave {
			t.Errorf("posição %d = %q, esperado %q (ordem lexical seria errada)", i, dias[i].Chave, chave)
		}
	}
}

func TestAgruparPorDiaAcumulaMesmoDia(t *testing.T) {
	reg := Registros{
		Movimentos: []movimento.Movimento{
			{SetoristaID: 1, Data: dia(2025, 7, 10), Vendas: 100, ValorLiquido: 100},
			{SetoristaID: 2, Data: dia(2025, 7, 10), Vendas: 200, ValorLiquido: 200},
		},
		Despesas: []despesa.Despesa{
			{SetoristaID: 1, Data: dia(2025, 7, 10), Valor: 30},
		},
	}

	dias := AgruparPorDia(reg)
	if len(dias) != 1 {
		t.Fatalf("dias = %d, esperado 1", len(dias))
	}
	if dias[0].Vendas != 300 || dias[0].ValorLiquido != 270 {
		t.Errorf("acúmulo do dia incorreto: %+v", dias[0])
	}
}

func TestAgruparPorDiaVazio(t *testing.T) {
	dias := AgruparPorDia(Registros{})
	if len(dias) != 0 {
		t.Errorf("retrato vazio deveria produzir saída vazia, obtido %d dias", len(dias))
	}
}

func TestAgruparPorMesSemeiaMesesPedidos(t *testing.T) {
	reg := Registros{
		Movimentos: []movimento.Movimento{
			{SetoristaID: 1, Data: dia(2025, 1, 10), Vendas: 100, ValorLiquido: 100},
			{SetoristaID: 1, Data: dia(2025, 4, 10), Vendas: 400, ValorLiquido: 400},
		},
	}

	buckets := AgruparPorMes(reg, []string{"2025-01", "2025-02"})
	if len(buckets) != 2 {
		t.Fatalf("buckets = %d, esperado 2", len(buckets))
	}
	if buckets["2025-01"].Vendas != 100 {
		t.Errorf("2025-01 Vendas = %.2f, esperado 100", buckets["2025-01"].Vendas)
	}
	if buckets["2025-02"].Vendas != 0 {
		t.Errorf("mês sem lançamento deveria vir zerado: %+v", buckets["2025-02"])
	}
	// abril não foi pedido; não entra
	if _, ok := buckets["2025-04"]; ok {
		t.Error("mês fora da seleção não deveria aparecer")
	}
}

func TestFiltrarPorPeriodoESetorista(t *testing.T) {
	reg := Registros{
		Movimentos: []movimento.Movimento{
			{SetoristaID: 1, Data: dia(2025, 1, 10)},
			{SetoristaID: 1, Data: dia(2025, 2, 10)},
			{SetoristaID: 2, Data: dia(2025, 1, 20)},
		},
		Despesas: []despesa.Despesa{
			{SetoristaID: 1, Data: dia(2025, 1, 15)},
			{SetoristaID: 2, Data: dia(2025, 1, 15)},
		},
	}

	f := reg.Filtrar(dia(2025, 1, 1), dia(2025, 1, 31), 1)
	if len(f.Movimentos) != 1 || len(f.Despesas) != 1 {
		t.Errorf("filtro incorreto: %d movimentos, %d despesas", len(f.Movimentos), len(f.Despesas))
	}

	todos := reg.Filtrar(time.Time{}, time.Time{}, 0)
	if len(todos.Movimentos) != 3 || len(todos.Despesas) != 2 {
		t.Error("sem filtro deveria manter todos os registros")
	}
}

func TestTotalGeralSomaOsBuckets(t *testing.T) {
	periodos := []PeriodoAgregado{
		{Vendas: 100, Comissao: 10, ComissaoRetida: 5, Premios: 20, Despesas: 15, Investimentos: 30, ValorLiquido: 50},
		{Vendas: 200, Comissao: 20, ComissaoRetida: 10, Premios: 40, Despesas: 30, Investimentos: 60, ValorLiquido: 100},
	}

	total := TotalGeral(periodos)
	if total.Vendas != 300 || total.Comissao != 30 || total.ComissaoRetida != 15 ||
		total.Premios != 60 || total.Despesas != 45 || total.Investimentos != 90 ||
		total.ValorLiquido != 150 {
		t.Errorf("total geral incorreto: %+v", total)
	}
}
