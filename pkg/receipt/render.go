package receipt

import (
	"html/template"
	"strings"
	"time"

	"pdv-client/pkg/money"
)

// now is swapped out by tests; the timestamp on a receipt reflects when it
// was printed, not when the sale happened.
var now = time.Now

type lineView struct {
	Seq       int
	Name      string
	Code      string
	Quantity  int
	UnitPrice string
	Total     string
}

type view struct {
	Header         Header
	IssuedAt       string
	Operator       string
	Lines          []lineView
	Subtotal       string
	HasDiscount    bool
	DiscountPct    float64
	DiscountAmount string
	Total          string
	PaymentLabel   string
	Cash           bool
	AmountReceived string
	Change         string
	AutoPrint      bool
	AutoClose      bool
}

// Render produces the printable HTML document for the receipt. It is a pure
// function of its inputs apart from the render-time timestamp.
func Render(r Receipt, locale money.Locale, opts Options) (string, error) {
	v := view{
		Header:         r.Header,
		IssuedAt:       now().Format("02/01/2006 15:04:05"),
		Operator:       r.Operator,
		Subtotal:       locale.Format(r.Subtotal),
		HasDiscount:    r.DiscountAmount > 0,
		DiscountPct:    r.DiscountPercentage,
		DiscountAmount: locale.Format(r.DiscountAmount),
		Total:          locale.Format(r.Total),
		PaymentLabel:   r.PaymentLabel,
		Cash:           r.Cash,
		AmountReceived: locale.Format(r.AmountReceived),
		Change:         locale.Format(r.Change),
		AutoPrint:      opts.AutoPrint,
		AutoClose:      opts.AutoClose,
	}
	if v.Operator == "" {
		v.Operator = "Sistema"
	}
	if v.Header.StoreName == "" {
		v.Header.StoreName = "SISTEMA PDV"
	}
	if v.Header.DocTitle == "" {
		v.Header.DocTitle = "CUPOM FISCAL"
	}

	for i, l := range r.Lines {
		v.Lines = append(v.Lines, lineView{
			Seq:       i + 1,
			Name:      l.Name,
			Code:      l.Barcode,
			Quantity:  l.Quantity,
			UnitPrice: locale.Format(l.UnitPrice),
			Total:     locale.Format(l.Total()),
		})
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

var tmpl = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Nota Fiscal - Venda</title>
<style>
@media print {
  body { margin: 0; padding: 20px; font-family: 'Courier New', monospace; }
  .no-print { display: none; }
}
body {
  font-family: 'Courier New', monospace;
  font-size: 12px;
  line-height: 1.4;
  max-width: 300px;
  margin: 0 auto;
  padding: 20px;
}
.header { text-align: center; border-bottom: 2px solid #000; padding-bottom: 10px; margin-bottom: 15px; }
.company-name { font-size: 16px; font-weight: bold; margin-bottom: 5px; }
.receipt-title { font-size: 14px; font-weight: bold; margin: 10px 0; }
.info-line { display: flex; justify-content: space-between; margin: 3px 0; }
.items-header { border-top: 1px solid #000; border-bottom: 1px solid #000; padding: 5px 0; font-weight: bold; margin: 10px 0; }
.item-line { margin: 3px 0; padding: 2px 0; }
.item-name { font-weight: bold; }
.item-details { display: flex; justify-content: space-between; font-size: 11px; }
.item-code { font-size: 10px; color: #666; }
.totals { border-top: 2px solid #000; padding-top: 10px; margin-top: 15px; }
.total-line { display: flex; justify-content: space-between; margin: 3px 0; }
.final-total { font-weight: bold; font-size: 14px; border-top: 1px solid #000; padding-top: 5px; margin-top: 5px; }
.payment-info { margin: 10px 0; padding: 5px 0; border-top: 1px solid #000; }
.footer { text-align: center; margin-top: 20px; padding-top: 10px; border-top: 1px solid #000; font-size: 10px; }
</style>
</head>
<body>
<div class="header">
  <div class="company-name">{{.Header.StoreName}}</div>
  {{if .Header.Tagline}}<div>{{.Header.Tagline}}</div>{{end}}
  <div class="receipt-title">{{.Header.DocTitle}}</div>
</div>

<div class="info-line"><span>Data/Hora:</span><span>{{.IssuedAt}}</span></div>
<div class="info-line"><span>Vendedor:</span><span>{{.Operator}}</span></div>

<div class="items-header">ITENS DA VENDA</div>

{{range .Lines}}
<div class="item-line">
  <div class="item-name">{{.Seq}}. {{.Name}}</div>
  <div class="item-details">
    <span>Qtd: {{.Quantity}}</span>
    <span>Unit: {{.UnitPrice}}</span>
    <span>Total: {{.Total}}</span>
  </div>
  {{if .Code}}<div class="item-code">Cód: {{.Code}}</div>{{end}}
</div>
{{end}}

<div class="totals">
  <div class="total-line"><span>Subtotal:</span><span>{{.Subtotal}}</span></div>
  {{if .HasDiscount}}
  <div class="total-line"><span>Desconto ({{.DiscountPct}}%):</span><span>- {{.DiscountAmount}}</span></div>
  {{end}}
  <div class="total-line final-total"><span>TOTAL:</span><span>{{.Total}}</span></div>
</div>

<div class="payment-info">
  <div class="total-line"><span>Forma de Pagamento:</span><span>{{.PaymentLabel}}</span></div>
  {{if .Cash}}
  <div class="total-line"><span>Valor Recebido:</span><span>{{.AmountReceived}}</span></div>
  <div class="total-line"><span>Troco:</span><span>{{.Change}}</span></div>
  {{end}}
</div>

<div class="footer">
  <div>Obrigado pela preferência!</div>
  <div>Sistema PDV - {{.IssuedAt}}</div>
</div>

{{if .AutoPrint}}
<script>
window.onload = function() {
  window.print();
  {{if .AutoClose}}
  setTimeout(function() { window.close(); }, 1000);
  {{end}}
};
</script>
{{end}}
</body>
</html>
`))
