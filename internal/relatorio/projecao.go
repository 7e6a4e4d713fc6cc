package relatorio

// AlocacaoIdeal é a divisão percentual da receita entre as categorias do
// painel. O percentual de despesas nunca é editado diretamente: é sempre o
// que sobra dos outros três, travado em zero quando eles passam de 100.
type AlocacaoIdeal struct {
	PremiosPct  float64 `json:"premiosPct"`
	ComissaoPct float64 `json:"comissaoPct"`
	LiquidoPct  float64 `json:"liquidoPct"`
	DespesasPct float64 `json:"despesasPct"`
}

// NovaAlocacaoIdeal monta a alocação recalculando o percentual de despesas.
func NovaAlocacaoIdeal(premiosPct, comissaoPct, liquidoPct float64) AlocacaoIdeal {
	despesasPct := 100 - (premiosPct + comissaoPct + liquidoPct)
	if despesasPct < 0 {
		despesasPct = 0
	}
	return AlocacaoIdeal{
		PremiosPct:  premiosPct,
		ComissaoPct: comissaoPct,
		LiquidoPct:  liquidoPct,
		DespesasPct: despesasPct,
	}
}

// ProjecaoIdeal são as metas em valor monetário para uma receita de vendas.
type ProjecaoIdeal struct {
	Premios  float64 `json:"premios"`
	Comissao float64 `json:"comissao"`
	Liquido  float64 `json:"liquido"`
	Despesas float64 `json:"despesas"`
}

// CalcularProjecaoIdeal converte a alocação percentual em metas monetárias
// sobre a receita de vendas informada.
func CalcularProjecaoIdeal(vendas float64, aloc AlocacaoIdeal) ProjecaoIdeal {
	return ProjecaoIdeal{
		Premios:  vendas * aloc.PremiosPct / 100,
		Comissao: vendas * aloc.ComissaoPct / 100,
		Liquido:  vendas * aloc.LiquidoPct / 100,
		Despesas: vendas * aloc.DespesasPct / 100,
	}
}

// PercentualSobreVendas devolve quanto valor representa da receita, em
// percentual. Receita zero degrada para 0, nunca para erro ou NaN.
func PercentualSobreVendas(valor, vendas float64) float64 {
	if vendas <= 0 {
		return 0
	}
	return valor / vendas * 100
}

// Diferenca é o desvio absoluto entre realizado e meta. Para categorias de
// custo (despesas, comissão, prêmios) o positivo é desfavorável; para o
// líquido, favorável. A camada de apresentação aplica essa leitura.
func Diferenca(real, ideal float64) float64 {
	return real - ideal
}

// DiferencaPercentual é o desvio relativo à meta; meta zero degrada para 0.
func DiferencaPercentual(real, ideal float64) float64 {
	if ideal == 0 {
		return 0
	}
	return (real - ideal) / ideal * 100
}
