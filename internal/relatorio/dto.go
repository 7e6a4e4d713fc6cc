package relatorio

// response DTOs dos relatórios

// LinhaSetorista é uma linha da tabela por setorista.
type LinhaSetorista struct {
	SetoristaID uint            `json:"setoristaId"`
	Nome        string          `json:"nome"`
	Totais      PeriodoAgregado `json:"totais"`
}

// ComparacaoBucket confronta realizado e meta de uma categoria.
type ComparacaoBucket struct {
	Real                  float64 `json:"real"`
	Ideal                 float64 `json:"ideal"`
	Diferenca             float64 `json:"diferenca"`
	DiferencaPct          float64 `json:"diferencaPct"`
	PercentualSobreVendas float64 `json:"percentualSobreVendas"`
}

// ComparativoProjecao confronta o realizado do período com a projeção ideal.
type ComparativoProjecao struct {
	Premios  ComparacaoBucket `json:"premios"`
	Comissao ComparacaoBucket `json:"comissao"`
	Liquido  ComparacaoBucket `json:"liquido"`
	Despesas ComparacaoBucket `json:"despesas"`
}

// RelatorioSetoristas é a resposta de GET /relatorios/setoristas.
type RelatorioSetoristas struct {
	Linhas          []LinhaSetorista    `json:"linhas"`
	Total           PeriodoAgregado     `json:"total"`
	Alocacao        AlocacaoIdeal       `json:"alocacao"`
	Projecao        ProjecaoIdeal       `json:"projecao"`
	Comparativo     ComparativoProjecao `json:"comparativoProjecao"`
	RegistrosOrfaos int                 `json:"registrosOrfaos,omitempty"`
}

// RelatorioDiario é a resposta de GET /relatorios/diario.
type RelatorioDiario struct {
	Dias  []PeriodoAgregado `json:"dias"`
	Total PeriodoAgregado   `json:"total"`
}

// RelatorioComparativo é a resposta de GET /relatorios/comparativo.
type RelatorioComparativo struct {
	Meses       []PeriodoAgregado   `json:"meses"`
	Variacoes   []VariacaoIndicador `json:"variacoes"`
	Destaques   *Destaques          `json:"destaques,omitempty"`
	Resumo      string              `json:"resumo"`
	Fechamentos []ResultadoMensal   `json:"fechamentos"`
}

func compararBucket(real, ideal, vendas float64) ComparacaoBucket {
	return ComparacaoBucket{
		Real:                  real,
		Ideal:                 ideal,
		Diferenca:             Diferenca(real, ideal),
		DiferencaPct:          DiferencaPercentual(real, ideal),
		PercentualSobreVendas: PercentualSobreVendas(real, vendas),
	}
}

// CompararComProjecao confronta o total agregado com a projeção ideal
// calculada sobre as vendas do próprio total.
func CompararComProjecao(total PeriodoAgregado, aloc AlocacaoIdeal) (ProjecaoIdeal, ComparativoProjecao) {
	projecao := CalcularProjecaoIdeal(total.Vendas, aloc)
	comparativo := ComparativoProjecao{
		Premios:  compararBucket(total.Premios, projecao.Premios, total.Vendas),
		Comissao: compararBucket(total.Comissao, projecao.Comissao, total.Vendas),
		Liquido:  compararBucket(total.ValorLiquido, projecao.Liquido, total.Vendas),
		Despesas: compararBucket(total.Despesas, projecao.Despesas, total.Vendas),
	}
	return projecao, comparativo
}
