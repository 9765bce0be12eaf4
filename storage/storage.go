package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Uploader persists one media file and returns a stable URL that serves the
// original bytes back unchanged. Implementations are pluggable: local disk
// for development, an object store in production. A returned error means
// nothing durable should be assumed and ingestion must not proceed.
type Uploader interface {
	Store(ctx context.Context, r io.Reader, originalName string) (string, error)
}

type namer struct {
	node *snowflake.Node
}

func newNamer() (*namer, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, fmt.Errorf("init snowflake node: %w", err)
	}
	return &namer{node: node}, nil
}

// next builds "file-<unix-nanos>-<snowflake><ext>". The snowflake component
// is monotonic per node, so two concurrent uploads of the same original
// filename always get distinct names.
func (n *namer) next(originalName string) string {
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("file-%d-%s%s", time.Now().UnixNano(), n.node.Generate(), ext)
}

func contentTypeFor(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
