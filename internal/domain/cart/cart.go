package cart

// Entry é um item pendente do carrinho. Nome e preço são o retrato do
// produto no momento do Add, não o valor vivo do catálogo.
type Entry struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart é o valor da sessão; nunca vai para o banco.
type Cart struct {
	Entries []Entry `json:"entries"`
}

// Add acumula quantidade quando o produto já está no carrinho,
// senão anexa uma entrada nova. Semântica de acumulação: dois Add
// de quantidade 1 resultam em quantidade 2.
func Add(c Cart, e Entry) Cart {
	for i := range c.Entries {
		if c.Entries[i].ProductID == e.ProductID {
			out := Cart{Entries: append([]Entry(nil), c.Entries...)}
			out.Entries[i].Quantity += e.Quantity
			return out
		}
	}
	return Cart{Entries: append(append([]Entry(nil), c.Entries...), e)}
}

// Remove tira a entrada do produto, se existir.
func Remove(c Cart, productID uint) Cart {
	out := Cart{}
	for _, e := range c.Entries {
		if e.ProductID != productID {
			out.Entries = append(out.Entries, e)
		}
	}
	return out
}

func (c Cart) Total() float64 {
	var total float64
	for _, e := range c.Entries {
		total += e.Price * float64(e.Quantity)
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c.Entries) == 0
}
