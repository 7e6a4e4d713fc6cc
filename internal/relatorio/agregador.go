package relatorio

import (
	"fmt"
	"sort"
	"time"

	"github.com/BancaFacil/api-setorista/internal/comissaoretida"
	"github.com/BancaFacil/api-setorista/internal/despesa"
	"github.com/BancaFacil/api-setorista/internal/investimento"
	"github.com/BancaFacil/api-setorista/internal/movimento"
	"github.com/BancaFacil/api-setorista/internal/setorista"
)

// PeriodoAgregado é o total acumulado de um recorte (setorista, dia ou mês).
// ValorLiquido = Vendas - Comissao - ComissaoRetida - Premios - Despesas;
// investimentos e descontos extras só entram no fechamento, nunca aqui.
type PeriodoAgregado struct {
	Chave          string  `json:"chave"`
	Vendas         float64 `json:"vendas"`
	Comissao       float64 `json:"comissao"`
	ComissaoRetida float64 `json:"comissaoRetida"`
	Premios        float64 `json:"premios"`
	Despesas       float64 `json:"despesas"`
	Investimentos  float64 `json:"investimentos"`
	ValorLiquido   float64 `json:"valorLiquido"`
}

// Registros é o retrato imutável das coleções que alimentam os relatórios.
// O movimento diário e o lançamento avulso de comissão retida são mantidos
// como entradas separadas; os agregados somam as duas fontes no mesmo total.
type Registros struct {
	Movimentos       []movimento.Movimento
	Despesas         []despesa.Despesa
	Investimentos    []investimento.Investimento
	ComissoesRetidas []comissaoretida.ComissaoRetida
}

func (p *PeriodoAgregado) somarMovimento(m movimento.Movimento) {
	p.Vendas += m.Vendas
	p.Comissao += m.Comissao
	p.ComissaoRetida += m.ComissaoRetida
	p.Premios += m.Premios
	p.ValorLiquido += m.ValorLiquido
}

func (p *PeriodoAgregado) somarDespesa(d despesa.Despesa) {
	p.Despesas += d.Valor
	p.ValorLiquido -= d.Valor
}

func (p *PeriodoAgregado) somarComissaoRetida(c comissaoretida.ComissaoRetida) {
	p.ComissaoRetida += c.Valor
	p.ValorLiquido -= c.Valor
}

func (p *PeriodoAgregado) somarInvestimento(i investimento.Investimento) {
	p.Investimentos += i.Valor
}

func (p *PeriodoAgregado) somar(outro PeriodoAgregado) {
	p.Vendas += outro.Vendas
	p.Comissao += outro.Comissao
	p.ComissaoRetida += outro.ComissaoRetida
	p.Premios += outro.Premios
	p.Despesas += outro.Despesas
	p.Investimentos += outro.Investimentos
	p.ValorLiquido += outro.ValorLiquido
}

func dentroDoPeriodo(d, inicio, fim time.Time) bool {
	if !inicio.IsZero() && d.Before(inicio) {
		return false
	}
	if !fim.IsZero() && d.After(fim) {
		return false
	}
	return true
}

// Filtrar devolve um novo retrato restrito ao intervalo de datas e, quando
// setoristaID > 0, ao setorista informado. Datas zero deixam a ponta aberta.
func (r Registros) Filtrar(inicio, fim time.Time, setoristaID uint) Registros {
	var out Registros
	for _, m := range r.Movimentos {
		if dentroDoPeriodo(m.Data, inicio, fim) && (setoristaID == 0 || m.SetoristaID == setoristaID) {
			out.Movimentos = append(out.Movimentos, m)
		}
	}
	for _, d := range r.Despesas {
		if dentroDoPeriodo(d.Data, inicio, fim) && (setoristaID == 0 || d.SetoristaID == setoristaID) {
			out.Despesas = append(out.Despesas, d)
		}
	}
	for _, i := range r.Investimentos {
		if dentroDoPeriodo(i.Data, inicio, fim) && (setoristaID == 0 || i.SetoristaID == setoristaID) {
			out.Investimentos = append(out.Investimentos, i)
		}
	}
	for _, c := range r.ComissoesRetidas {
		if dentroDoPeriodo(c.Data, inicio, fim) && (setoristaID == 0 || c.SetoristaID == setoristaID) {
			out.ComissoesRetidas = append(out.ComissoesRetidas, c)
		}
	}
	return out
}

// AgruparPorSetorista acumula o retrato por setorista. Todo setorista conhecido
// entra no resultado com totais zerados mesmo sem lançamento no período; os
// consumidores dependem disso para renderizar a tabela completa. Registros que
// apontam para um setorista desconhecido são pulados e contados no retorno.
func AgruparPorSetorista(reg Registros, setoristas []setorista.Setorista) (map[uint]*PeriodoAgregado, int) {
	buckets := make(map[uint]*PeriodoAgregado, len(setoristas))
	for _, s := range setoristas {
		buckets[s.ID] = &PeriodoAgregado{Chave: s.Nome}
	}

	orfaos := 0
	for _, m := range reg.Movimentos {
		b, ok := buckets[m.SetoristaID]
		if !ok {
			orfaos++
			continue
		}
		b.somarMovimento(m)
	}
	for _, d := range reg.Despesas {
		b, ok := buckets[d.SetoristaID]
		if !ok {
			orfaos++
			continue
		}
		b.somarDespesa(d)
	}
	for _, c := range reg.ComissoesRetidas {
		b, ok := buckets[c.SetoristaID]
		if !ok {
			orfaos++
			continue
		}
		b.somarComissaoRetida(c)
	}
	for _, i := range reg.Investimentos {
		b, ok := buckets[i.SetoristaID]
		if !ok {
			orfaos++
			continue
		}
		b.somarInvestimento(i)
	}
	return buckets, orfaos
}

func chaveDia(d time.Time) string {
	return fmt.Sprintf("%02d/%02d", d.Day(), int(d.Month()))
}

// AgruparPorDia acumula o retrato por dia ("dd/mm") em ordem cronológica.
// A ordenação é por (mês, dia); ordenar a string diretamente colocaria
// 01/02 antes de 15/01.
func AgruparPorDia(reg Registros) []PeriodoAgregado {
	type ordemDia struct {
		mes int
		dia int
	}
	buckets := make(map[string]*PeriodoAgregado)
	ordem := make(map[string]ordemDia)

	bucket := func(d time.Time) *PeriodoAgregado {
		chave := chaveDia(d)
		b, ok := buckets[chave]
		if !ok {
			b = &PeriodoAgregado{Chave: chave}
			buckets[chave] = b
			ordem[chave] = ordemDia{mes: int(d.Month()), dia: d.Day()}
		}
		return b
	}

	for _, m := range reg.Movimentos {
		bucket(m.Data).somarMovimento(m)
	}
	for _, d := range reg.Despesas {
		bucket(d.Data).somarDespesa(d)
	}
	for _, c := range reg.ComissoesRetidas {
		bucket(c.Data).somarComissaoRetida(c)
	}
	for _, i := range reg.Investimentos {
		bucket(i.Data).somarInvestimento(i)
	}

	dias := make([]PeriodoAgregado, 0, len(buckets))
	for _, b := range buckets {
		dias = append(dias, *b)
	}
	sort.Slice(dias, func(a, b int) bool {
		oa, ob := ordem[dias[a].Chave], ordem[dias[b].Chave]
		if oa.mes != ob.mes {
			return oa.mes < ob.mes
		}
		return oa.dia < ob.dia
	})
	return dias
}

func chaveMes(d time.Time) string {
	return d.Format("2006-01")
}

// AgruparPorMes acumula o retrato pelos meses pedidos (chaves "AAAA-MM").
// Cada mês solicitado aparece no resultado, zerado se não houver lançamento;
// lançamentos fora dos meses pedidos são ignorados.
func AgruparPorMes(reg Registros, meses []string) map[string]*PeriodoAgregado {
	buckets := make(map[string]*PeriodoAgregado, len(meses))
	for _, mes := range meses {
		buckets[mes] = &PeriodoAgregado{Chave: mes}
	}

	for _, m := range reg.Movimentos {
		if b, ok := buckets[chaveMes(m.Data)]; ok {
			b.somarMovimento(m)
		}
	}
	for _, d := range reg.Despesas {
		if b, ok := buckets[chaveMes(d.Data)]; ok {
			b.somarDespesa(d)
		}
	}
	for _, c := range reg.ComissoesRetidas {
		if b, ok := buckets[chaveMes(c.Data)]; ok {
			b.somarComissaoRetida(c)
		}
	}
	for _, i := range reg.Investimentos {
		if b, ok := buckets[chaveMes(i.Data)]; ok {
			b.somarInvestimento(i)
		}
	}
	return buckets
}

// TotalGeral soma os campos dos agregados já calculados, sem revisitar os
// registros brutos.
func TotalGeral(periodos []PeriodoAgregado) PeriodoAgregado {
	total := PeriodoAgregado{Chave: "total"}
	for _, p := range periodos {
		total.somar(p)
	}
	return total
}
