package invoice

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-shop/internal/models"
)

func TestRender(t *testing.T) {
	r, err := NewRenderer(t.TempDir())
	require.NoError(t, err)

	p := &models.Purchase{
		ID:            12,
		Quantity:      2,
		UnitPrice:     25,
		PaymentMethod: "cash",
		PurchaseDate:  time.Date(2026, 8, 1, 14, 30, 0, 0, time.UTC),
	}

	path, err := r.Render(p, "Pomada Modeladora")
	require.NoError(t, err)
	assert.Equal(t, r.Path(12), path)

	// Arquivo endereçável pelo id da compra, com cabeçalho de PDF.
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(b), 4)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestPathIsStablePerPurchase(t *testing.T) {
	r, err := NewRenderer(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, r.Path(7), r.Path(7))
	assert.NotEqual(t, r.Path(7), r.Path(8))
}
