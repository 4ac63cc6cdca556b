package mail

import (
	"fmt"
	"html"
	"strings"

	"github.com/lateladelgol/storefront-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

const storefrontName = "LaTelaDelGol"

// OrderSubject builds the operator-facing subject line for a new order.
func OrderSubject(name string, total float64) string {
	return fmt.Sprintf("Nuevo pedido de %s - €%s", name, formatAmount(total))
}

// ContactSubject builds the subject line for a contact inquiry.
func ContactSubject(name string) string {
	if strings.TrimSpace(name) == "" {
		name = "Sin nombre"
	}
	return "Nuevo mensaje de contacto: " + name
}

// RenderOrderHTML produces the tabular order notification. Every
// user-supplied field is escaped before it reaches the document.
func RenderOrderHTML(name, email string, items []models.OrderItem, total float64) string {
	var rows strings.Builder
	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		subtotal := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(qty)))
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding:8px;border:1px solid #eee">%s</td><td style="padding:8px;border:1px solid #eee;text-align:center">%d</td><td style="padding:8px;border:1px solid #eee;text-align:right">€%s</td></tr>`,
			html.EscapeString(item.Name), qty, subtotal.StringFixed(2),
		))
	}

	return fmt.Sprintf(`
<h2>Nuevo pedido - %s</h2>
<p><strong>Nombre:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<table style="border-collapse:collapse;width:100%%;margin-top:16px">
  <thead>
    <tr><th style="padding:8px;border:1px solid #eee;text-align:left">Producto</th><th style="padding:8px;border:1px solid #eee">Cant.</th><th style="padding:8px;border:1px solid #eee;text-align:right">Subtotal</th></tr>
  </thead>
  <tbody>
    %s
  </tbody>
</table>
<p style="text-align:right;font-weight:bold;margin-top:12px">Total: €%s</p>
`, storefrontName, html.EscapeString(name), html.EscapeString(email), rows.String(), formatAmount(total))
}

// RenderContactHTML produces the contact notification. Absent fields
// render as a dash. Fields are escaped first, then message newlines
// become line breaks.
func RenderContactHTML(name, email, message string) string {
	return fmt.Sprintf(`
<h2>Nuevo mensaje desde la web</h2>
<p><strong>Nombre:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Mensaje:</strong></p>
<p>%s</p>
`, placeholderEscape(name), placeholderEscape(email), messageHTML(message))
}

func placeholderEscape(value string) string {
	if value == "" {
		return "-"
	}
	return html.EscapeString(value)
}

func messageHTML(message string) string {
	if message == "" {
		return "-"
	}
	escaped := html.EscapeString(message)
	return strings.ReplaceAll(escaped, "\n", "<br/>")
}

func formatAmount(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}
