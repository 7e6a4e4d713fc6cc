package relatorio

import (
	"fmt"
	"math"
	"strings"
)

// ResumoPeriodosInsuficientes é a resposta fixa quando a seleção não permite
// comparar nada. Pré-condição satisfeita pelo chamador, não um erro.
const ResumoPeriodosInsuficientes = "Selecione pelo menos dois períodos para gerar o resumo automático."

// GerarResumo monta a frase determinística do comparativo a partir das
// variações de vendas e de líquido, do escopo ("todos os setoristas" ou o
// nome de um setorista) e dos rótulos do primeiro e do último período.
func GerarResumo(escopo, primeiro, ultimo string, variacoes []VariacaoIndicador, tendenciaGeral Tendencia) string {
	if len(variacoes) == 0 {
		return ResumoPeriodosInsuficientes
	}

	fraseVendas := fraseIndicador(buscarVariacao(variacoes, "vendas"))
	fraseLiquido := fraseIndicador(buscarVariacao(variacoes, "liquido"))

	return fmt.Sprintf("Entre %s e %s, %s registrou vendas que %s e líquido que %s, %s",
		primeiro, ultimo, escopo, fraseVendas, fraseLiquido, fraseTendencia(tendenciaGeral))
}

func buscarVariacao(variacoes []VariacaoIndicador, indicador string) *VariacaoIndicador {
	for i := range variacoes {
		if variacoes[i].Indicador == indicador {
			return &variacoes[i]
		}
	}
	return nil
}

func fraseIndicador(v *VariacaoIndicador) string {
	if v == nil || v.Percentual == nil || v.Diferenca == 0 {
		return "se mantiveram estáveis"
	}
	if v.Diferenca > 0 {
		return fmt.Sprintf("avançaram %.1f%% (%s)", *v.Percentual, FormatarMoeda(v.Diferenca))
	}
	return fmt.Sprintf("recuaram %.1f%% (%s)", math.Abs(*v.Percentual), FormatarMoeda(math.Abs(v.Diferenca)))
}

func fraseTendencia(t Tendencia) string {
	switch t {
	case TendenciaAlta:
		return "encerrando o período em alta."
	case TendenciaQueda:
		return "encerrando o período em queda."
	default:
		return "mantendo-se estável no período."
	}
}

// FormatarMoeda formata um valor em reais no padrão brasileiro
// (milhar com ponto, decimal com vírgula). Só o resumo narrativo formata;
// todo o restante do motor trabalha com valores numéricos crus.
func FormatarMoeda(valor float64) string {
	negativo := valor < 0
	centavos := int64(math.Round(math.Abs(valor) * 100))

	inteiro := centavos / 100
	fracao := centavos % 100

	digitos := fmt.Sprintf("%d", inteiro)
	var b strings.Builder
	for i, d := range digitos {
		if i > 0 && (len(digitos)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	sinal := ""
	if negativo {
		sinal = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sinal, b.String(), fracao)
}
