package mail

import (
	"strings"
	"testing"

	"github.com/lateladelgol/storefront-backend/pkg/db/models"
)

func TestRenderOrderHTMLEscapesUserText(t *testing.T) {
	items := []models.OrderItem{
		{Name: `Camiseta <script>alert("x")</script>`, Quantity: 2, UnitPrice: 24.95},
	}
	doc := RenderOrderHTML(`Ana & "Co"`, "ana@example.com", items, 49.90)

	if strings.Contains(doc, "<script>") {
		t.Fatal("user text must be escaped in the rendered order document")
	}
	if !strings.Contains(doc, "Ana &amp; &#34;Co&#34;") {
		t.Fatalf("expected escaped name in document:\n%s", doc)
	}
	if !strings.Contains(doc, "€49.90") {
		t.Fatalf("expected formatted total in document:\n%s", doc)
	}
}

func TestRenderOrderHTMLLineSubtotals(t *testing.T) {
	items := []models.OrderItem{
		{Name: "Camiseta local", Quantity: 3, UnitPrice: 19.99},
		{Name: "Bufanda", Quantity: 0, UnitPrice: 12.50},
	}
	doc := RenderOrderHTML("Luis", "luis@example.com", items, 72.47)

	if !strings.Contains(doc, "€59.97") {
		t.Fatalf("expected 3x19.99 subtotal, got:\n%s", doc)
	}
	// Quantity floors at 1, matching how the storefront always rendered.
	if !strings.Contains(doc, "€12.50") {
		t.Fatalf("expected zero quantity to price as one unit, got:\n%s", doc)
	}
}

func TestRenderContactHTMLPlaceholders(t *testing.T) {
	doc := RenderContactHTML("", "", "")
	if strings.Count(doc, ">-<") != 3 {
		t.Fatalf("expected dashes for all absent fields:\n%s", doc)
	}
}

func TestRenderContactHTMLNewlinesAndEscaping(t *testing.T) {
	doc := RenderContactHTML("Eva", "eva@example.com", "hola\n<b>adios</b>")
	if !strings.Contains(doc, "hola<br/>&lt;b&gt;adios&lt;/b&gt;") {
		t.Fatalf("expected escaped message with line breaks:\n%s", doc)
	}
}

func TestSubjects(t *testing.T) {
	if got := OrderSubject("Ana", 12.5); got != "Nuevo pedido de Ana - €12.50" {
		t.Fatalf("unexpected order subject %q", got)
	}
	if got := ContactSubject("  "); got != "Nuevo mensaje de contacto: Sin nombre" {
		t.Fatalf("unexpected contact subject %q", got)
	}
}
