package relatorio

import "testing"

func TestNovaAlocacaoIdealCalculaRestante(t *testing.T) {
	casos := []struct {
		nome                       string
		premios, comissao, liquido float64
		despesasEsperado           float64
	}{
		{"soma 90, sobra 10", 50, 20, 20, 10},
		{"soma 100, sobra 0", 50, 30, 20, 0},
		{"soma acima de 100 trava em 0", 60, 30, 20, 0},
		{"tudo zero, sobra 100", 0, 0, 0, 100},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			aloc := NovaAlocacaoIdeal(c.premios, c.comissao, c.liquido)
			if aloc.DespesasPct != c.despesasEsperado {
				t.Errorf("DespesasPct = %.2f, esperado %.2f", aloc.DespesasPct, c.despesasEsperado)
			}
		})
	}
}

func TestCalcularProjecaoIdeal(t *testing.T) {
	aloc := NovaAlocacaoIdeal(50, 20, 20)
	p := CalcularProjecaoIdeal(10000, aloc)

	if p.Premios != 5000 {
		t.Errorf("Premios = %.2f, esperado 5000", p.Premios)
	}
	if p.Comissao != 2000 {
		t.Errorf("Comissao = %.2f, esperado 2000", p.Comissao)
	}
	if p.Liquido != 2000 {
		t.Errorf("Liquido = %.2f, esperado 2000", p.Liquido)
	}
	if p.Despesas != 1000 {
		t.Errorf("Despesas = %.2f, esperado 1000 (restante de 10%%)", p.Despesas)
	}
}

func TestCalcularProjecaoIdealVendasZero(t *testing.T) {
	p := CalcularProjecaoIdeal(0, NovaAlocacaoIdeal(50, 20, 20))
	if p.Premios != 0 || p.Comissao != 0 || p.Liquido != 0 || p.Despesas != 0 {
		t.Errorf("vendas zero deveriam zerar todas as metas: %+v", p)
	}
}

func TestPercentualSobreVendas(t *testing.T) {
	if got := PercentualSobreVendas(250, 1000); got != 25 {
		t.Errorf("PercentualSobreVendas(250, 1000) = %.2f, esperado 25", got)
	}
	if got := PercentualSobreVendas(500, 0); got != 0 {
		t.Errorf("vendas zero deveriam degradar para 0, obtido %.2f", got)
	}
	if got := PercentualSobreVendas(0, 0); got != 0 {
		t.Errorf("PercentualSobreVendas(0, 0) = %.2f, esperado 0", got)
	}
}

func TestDiferenca(t *testing.T) {
	if got := Diferenca(1200, 1000); got != 200 {
		t.Errorf("Diferenca = %.2f, esperado 200", got)
	}
	if got := Diferenca(800, 1000); got != -200 {
		t.Errorf("Diferenca = %.2f, esperado -200", got)
	}
}

func TestDiferencaPercentual(t *testing.T) {
	if got := DiferencaPercentual(1200, 1000); got != 20 {
		t.Errorf("DiferencaPercentual = %.2f, esperado 20", got)
	}
	if got := DiferencaPercentual(1200, 0); got != 0 {
		t.Errorf("meta zero deveria degradar para 0, obtido %.2f", got)
	}
}
