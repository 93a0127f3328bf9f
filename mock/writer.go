package mock

import (
	"context"

	"github.com/fwojciec/hatenadl"
)

var _ hatenadl.ImageWriter = (*ImageWriter)(nil)

// ImageWriter is a mock implementation of hatenadl.ImageWriter.
type ImageWriter struct {
	WriteImageFn func(ctx context.Context, relPath string, data []byte) error
}

func (w *ImageWriter) WriteImage(ctx context.Context, relPath string, data []byte) error {
	return w.WriteImageFn(ctx, relPath, data)
}
