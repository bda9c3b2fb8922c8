package entities

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeISS(t *testing.T) {
	cases := []struct {
		name     string
		valor    string
		aliquota string
		wantISS  string
		wantNet  string
	}{
		{"exact cents", "1500.00", "5", "75.00", "1425.00"},
		{"rounding", "100.00", "3.33", "3.33", "96.67"},
		{"zero rate", "250.00", "0", "0.00", "250.00"},
		{"fractional value", "99.99", "2", "2.00", "97.99"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			valor := decimal.RequireFromString(tc.valor)
			aliquota := decimal.RequireFromString(tc.aliquota)

			iss, net := ComputeISS(valor, aliquota)

			if iss.StringFixed(2) != tc.wantISS {
				t.Fatalf("iss: expected %s, got %s", tc.wantISS, iss.StringFixed(2))
			}
			if net.StringFixed(2) != tc.wantNet {
				t.Fatalf("net: expected %s, got %s", tc.wantNet, net.StringFixed(2))
			}
			if !iss.Add(net).Equal(valor) {
				t.Fatalf("iss + net != valor: %s + %s != %s", iss, net, valor)
			}
		})
	}
}

func TestInvoiceStatusTerminal(t *testing.T) {
	terminal := []InvoiceStatus{InvoiceStatusAutorizada, InvoiceStatusRejeitada, InvoiceStatusCancelada}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Fatalf("expected %s to be terminal", s)
		}
	}
	if InvoiceStatusPendenteConfirmacao.Terminal() {
		t.Fatal("pendente_confirmacao must not be terminal")
	}
}
