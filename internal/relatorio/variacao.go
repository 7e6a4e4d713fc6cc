package relatorio

// Tendencia classifica a direção de uma variação entre períodos.
type Tendencia string

const (
	TendenciaAlta    Tendencia = "alta"
	TendenciaQueda   Tendencia = "queda"
	TendenciaEstavel Tendencia = "estavel"
)

// Tolerância absoluta de uma unidade monetária, igual para todo indicador.
const limiarTendencia = 1.0

func classificarTendencia(diferenca float64) Tendencia {
	switch {
	case diferenca > limiarTendencia:
		return TendenciaAlta
	case diferenca < -limiarTendencia:
		return TendenciaQueda
	default:
		return TendenciaEstavel
	}
}

// VariacaoIndicador compara o primeiro e o último período selecionados para
// um indicador. Percentual nil significa "indefinido porque a base era zero"
// e deve ser exibido como "—", nunca como 0%.
type VariacaoIndicador struct {
	Indicador  string    `json:"indicador"`
	Primeiro   float64   `json:"primeiro"`
	Ultimo     float64   `json:"ultimo"`
	Diferenca  float64   `json:"diferenca"`
	Percentual *float64  `json:"percentual"`
	Tendencia  Tendencia `json:"tendencia"`
}

// Conjunto fixo de indicadores acompanhados no comparativo mensal.
var indicadores = []struct {
	nome  string
	valor func(PeriodoAgregado) float64
}{
	{"vendas", func(p PeriodoAgregado) float64 { return p.Vendas }},
	{"comissao", func(p PeriodoAgregado) float64 { return p.Comissao }},
	{"premios", func(p PeriodoAgregado) float64 { return p.Premios }},
	{"despesas", func(p PeriodoAgregado) float64 { return p.Despesas }},
	{"investimentos", func(p PeriodoAgregado) float64 { return p.Investimentos }},
	{"comissaoRetida", func(p PeriodoAgregado) float64 { return p.ComissaoRetida }},
	{"liquido", func(p PeriodoAgregado) float64 { return p.ValorLiquido }},
}

// CalcularVariacoes compara o primeiro e o último período da seleção (não
// cada par consecutivo) para o conjunto fixo de indicadores. Os períodos já
// chegam em ordem cronológica. Com menos de dois períodos devolve vazio.
func CalcularVariacoes(periodos []PeriodoAgregado) []VariacaoIndicador {
	if len(periodos) < 2 {
		return nil
	}
	primeiro := periodos[0]
	ultimo := periodos[len(periodos)-1]

	variacoes := make([]VariacaoIndicador, 0, len(indicadores))
	for _, ind := range indicadores {
		base := ind.valor(primeiro)
		atual := ind.valor(ultimo)
		diferenca := atual - base

		var percentual *float64
		if base != 0 {
			pct := diferenca / base * 100
			percentual = &pct
		}

		variacoes = append(variacoes, VariacaoIndicador{
			Indicador:  ind.nome,
			Primeiro:   base,
			Ultimo:     atual,
			Diferenca:  diferenca,
			Percentual: percentual,
			Tendencia:  classificarTendencia(diferenca),
		})
	}
	return variacoes
}

// TransicaoMensal é a passagem de um mês para o seguinte e a variação do
// líquido entre eles.
type TransicaoMensal struct {
	De       string  `json:"de"`
	Para     string  `json:"para"`
	Variacao float64 `json:"variacao"`
}

// Destaques aponta os extremos da seleção: melhor e pior mês pelo líquido,
// maior crescimento e maior queda entre meses consecutivos, e a tendência
// geral do primeiro ao último mês.
type Destaques struct {
	MelhorMes        string          `json:"melhorMes"`
	MelhorLiquido    float64         `json:"melhorLiquido"`
	PiorMes          string          `json:"piorMes"`
	PiorLiquido      float64         `json:"piorLiquido"`
	MaiorCrescimento TransicaoMensal `json:"maiorCrescimento"`
	MaiorQueda       TransicaoMensal `json:"maiorQueda"`
	TendenciaGeral   Tendencia       `json:"tendenciaGeral"`
}

// CalcularDestaques percorre a seleção completa de períodos. Devolve false
// quando há menos de dois períodos.
func CalcularDestaques(periodos []PeriodoAgregado) (Destaques, bool) {
	if len(periodos) < 2 {
		return Destaques{}, false
	}

	d := Destaques{
		MelhorMes:     periodos[0].Chave,
		MelhorLiquido: periodos[0].ValorLiquido,
		PiorMes:       periodos[0].Chave,
		PiorLiquido:   periodos[0].ValorLiquido,
	}
	for _, p := range periodos[1:] {
		if p.ValorLiquido > d.MelhorLiquido {
			d.MelhorMes = p.Chave
			d.MelhorLiquido = p.ValorLiquido
		}
		if p.ValorLiquido < d.PiorLiquido {
			d.PiorMes = p.Chave
			d.PiorLiquido = p.ValorLiquido
		}
	}

	for i := 0; i+1 < len(periodos); i++ {
		transicao := TransicaoMensal{
			De:       periodos[i].Chave,
			Para:     periodos[i+1].Chave,
			Variacao: periodos[i+1].ValorLiquido - periodos[i].ValorLiquido,
		}
		if i == 0 || transicao.Variacao > d.MaiorCrescimento.Variacao {
			d.MaiorCrescimento = transicao
		}
		if i == 0 || transicao.Variacao < d.MaiorQueda.Variacao {
			d.MaiorQueda = transicao
		}
	}

	d.TendenciaGeral = classificarTendencia(
		periodos[len(periodos)-1].ValorLiquido - periodos[0].ValorLiquido)
	return d, true
}
