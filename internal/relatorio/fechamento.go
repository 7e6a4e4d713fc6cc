package relatorio

import (
	"github.com/BancaFacil/api-setorista/internal/descontoextra"
)

// ResultadoMensal é o fechamento de um mês: o líquido agregado menos os
// investimentos (quando o operador liga o desconto) e menos os descontos
// extras lançados para o mês de referência.
type ResultadoMensal struct {
	Mes             string  `json:"mes"`
	Liquido         float64 `json:"liquido"`
	Investimentos   float64 `json:"investimentos"`
	DescontosExtras float64 `json:"descontosExtras"`
	ResultadoFinal  float64 `json:"resultadoFinal"`
}

// CalcularResultadoMensal fecha o mês de um agregado mensal. Só descontos
// cujo mês de referência coincide com a chave do período são abatidos.
func CalcularResultadoMensal(p PeriodoAgregado, descontos []descontoextra.DescontoExtra, descontarInvestimentos bool) ResultadoMensal {
	r := ResultadoMensal{
		Mes:     p.Chave,
		Liquido: p.ValorLiquido,
	}
	if descontarInvestimentos {
		r.Investimentos = p.Investimentos
	}
	for _, d := range descontos {
		if d.MesReferencia == p.Chave {
			r.DescontosExtras += d.Valor
		}
	}
	r.ResultadoFinal = r.Liquido - r.Investimentos - r.DescontosExtras
	return r
}
