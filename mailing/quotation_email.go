package mailing

import (
	"bytes"
	"html/template"

	"github.com/muratfirtina/teklif-sistemi-sub002/models"
)

// QuotationEmailData is everything the quotation email template needs.
// Rendering is a pure function of this value; no I/O happens here.
type QuotationEmailData struct {
	Quotation models.Quotation
	Company   models.CompanySetting
	Message   string
}

var quotationEmailTmpl = template.Must(template.New("quotation_email").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>{{.Company.CompanyName}}</h2>
  <p>{{.Company.Address}}<br>{{.Company.Phone}} {{.Company.Email}}</p>
  <hr>
  <h3>Quotation {{.Quotation.Number}}</h3>
  <p>Dear {{.Quotation.Customer.Name}},</p>
  {{if .Message}}<p>{{.Message}}</p>{{end}}
  <table border="1" cellpadding="6" cellspacing="0" style="border-collapse: collapse;">
    <tr>
      <th>Product</th><th>Quantity</th><th>Unit Price</th><th>Total</th>
    </tr>
    {{range .Quotation.Items}}
    <tr>
      <td>{{.Product.Name}}</td>
      <td>{{.Quantity}}</td>
      <td>{{printf "%.2f" .UnitPrice}}</td>
      <td>{{printf "%.2f" .LineTotal}}</td>
    </tr>
    {{end}}
    <tr>
      <td colspan="3"><strong>Grand Total</strong></td>
      <td><strong>{{printf "%.2f" .Quotation.Total}}</strong></td>
    </tr>
  </table>
  {{if .Quotation.Notes}}<p>{{.Quotation.Notes}}</p>{{end}}
  <p>Kind regards,<br>{{.Company.CompanyName}}</p>
</body>
</html>`))

// RenderQuotationEmail renders the HTML body for a quotation email.
func RenderQuotationEmail(data QuotationEmailData) (string, error) {
	var buf bytes.Buffer
	if err := quotationEmailTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
