package movimento

import "time"

// MovimentoDTO é o payload de criação/edição. A data chega como "AAAA-MM-DD"
// e o valor líquido nunca é aceito do cliente: é sempre recalculado.
type MovimentoDTO struct {
	Data           string  `json:"data"`
	SetoristaID    uint    `json:"setoristaId"`
	Vendas         float64 `json:"vendas"`
	Comissao       float64 `json:"comissao"`
	ComissaoRetida float64 `json:"comissaoRetida"`
	Premios        float64 `json:"premios"`
}

// ParaModel converte o DTO em Movimento com o líquido já recalculado.
func (d MovimentoDTO) ParaModel() (Movimento, error) {
	data, err := time.Parse("2006-01-02", d.Data)
	if err != nil {
		return Movimento{}, err
	}
	m := Movimento{
		Data:           data,
		SetoristaID:    d.SetoristaID,
		Vendas:         d.Vendas,
		Comissao:       d.Comissao,
		ComissaoRetida: d.ComissaoRetida,
		Premios:        d.Premios,
	}
	m.CalcularLiquido()
	return m, nil
}
