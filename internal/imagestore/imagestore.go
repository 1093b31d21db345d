package imagestore

import (
	"context"
	"io"
)

// Store guarda as imagens de produto pelo nome gerado no upload.
// O nome gravado no produto é o contrato de endereçamento.
type Store interface {
	Save(ctx context.Context, name string, data []byte) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Remove(ctx context.Context, name string) error
}

const ContentType = "image/webp"
