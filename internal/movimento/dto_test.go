package movimento

import "testing"

func TestParaModelRecalculaLiquido(t *testing.T) {
	dto := MovimentoDTO{
		Data:           "2025-03-15",
		SetoristaID:    7,
		Vendas:         1000,
		Comissao:       100,
		ComissaoRetida: 50,
		Premios:        200,
	}

	m, err := dto.ParaModel()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if m.ValorLiquido != 650 {
		t.Errorf("ValorLiquido = %.2f, esperado 650", m.ValorLiquido)
	}
	if m.Data.Year() != 2025 || int(m.Data.Month()) != 3 || m.Data.Day() != 15 {
		t.Errorf("data convertida incorretamente: %v", m.Data)
	}
}

func TestParaModelDataInvalida(t *testing.T) {
	dto := MovimentoDTO{Data: "15/03/2025"}
	if _, err := dto.ParaModel(); err == nil {
		t.Error("esperado erro para data fora do formato AAAA-MM-DD")
	}
}

func TestCalcularLiquidoNegativo(t *testing.T) {
	m := Movimento{Vendas: 100, Comissao: 80, ComissaoRetida: 30, Premios: 10}
	m.CalcularLiquido()
	if m.ValorLiquido != -20 {
		t.Errorf("ValorLiquido = %.2f, esperado -20", m.ValorLiquido)
	}
}
