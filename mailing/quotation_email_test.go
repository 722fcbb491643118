package mailing

import (
	"strings"
	"testing"

	"github.com/muratfirtina/teklif-sistemi-sub002/models"
)

func TestRenderQuotationEmail(t *testing.T) {
	data := QuotationEmailData{
		Quotation: models.Quotation{
			Number:   "QUO-2026-0007",
			Customer: models.Customer{Name: "Acme Ltd"},
			Total:    1250.50,
			Items: []models.QuotationItem{
				{
					Product:   models.Product{Name: "Steel Bracket"},
					Quantity:  10,
					UnitPrice: 125.05,
					LineTotal: 1250.50,
				},
			},
		},
		Company: models.CompanySetting{CompanyName: "Firtina Metal"},
		Message: "Please find our offer below.",
	}

	html, err := RenderQuotationEmail(data)
	if err != nil {
		t.Fatalf("RenderQuotationEmail: %v", err)
	}

	for _, want := range []string{
		"QUO-2026-0007",
		"Acme Ltd",
		"Firtina Metal",
		"Steel Bracket",
		"125.05",
		"1250.50",
		"Please find our offer below.",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered email missing %q", want)
		}
	}
}

func TestRenderQuotationEmailEscapesHTML(t *testing.T) {
	data := QuotationEmailData{
		Quotation: models.Quotation{
			Number:   "QUO-2026-0001",
			Customer: models.Customer{Name: "<script>alert(1)</script>"},
		},
	}

	html, err := RenderQuotationEmail(data)
	if err != nil {
		t.Fatalf("RenderQuotationEmail: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Error("customer name was not escaped")
	}
}
