// Package checkpoint caches parsed XGBoost models on disk, keyed by a
// content hash of the source JSON, so repeated loads of an unchanged model
// file skip the streaming parse entirely.
package checkpoint

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4/v4"

	"github.com/vareth-ml/xgbtree/pkg/safeconv"
	"github.com/vareth-ml/xgbtree/pkg/treemodel"
)

// Cache reads and writes LZ4-compressed, gob-encoded models under Dir,
// named by the sha256 of the JSON bytes they were parsed from.
type Cache struct {
	Dir string
}

// New returns a Cache rooted at dir. The directory is created lazily on
// first write.
func New(dir string) *Cache {
	return &Cache{Dir: dir}
}

// Key returns the content-addressed cache key for a source document.
func Key(jsonBytes []byte) string {
	sum := sha256.Sum256(jsonBytes)

	return hex.EncodeToString(sum[:])
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.Dir, key+".lz4")
}

// Lookup returns the cached model for key, or (nil, false) on a cache miss
// or a corrupt entry (corruption is treated as absence, not an error: the
// caller re-parses).
func (c *Cache) Lookup(key string) (*treemodel.Model, bool) {
	compressed, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}

	raw, err := decompress(compressed)
	if err != nil {
		return nil, false
	}

	var model treemodel.Model

	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&model); err != nil {
		return nil, false
	}

	return &model, true
}

// Store compresses and writes model under key, creating Dir if needed.
func (c *Cache) Store(key string, model *treemodel.Model) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("checkpoint: create cache dir: %w", err)
	}

	var buf bytes.Buffer

	if err := gob.NewEncoder(&buf).Encode(model); err != nil {
		return fmt.Errorf("checkpoint: encode model: %w", err)
	}

	compressed, err := compress(buf.Bytes())
	if err != nil {
		return fmt.Errorf("checkpoint: compress model: %w", err)
	}

	if err := os.WriteFile(c.path(key), compressed, 0o644); err != nil {
		return fmt.Errorf("checkpoint: write cache entry: %w", err)
	}

	return nil
}

// compress LZ4-compresses data, prefixing the result with the uncompressed
// length so decompress can size its destination buffer without a side
// channel.
func compress(data []byte) ([]byte, error) {
	bound := lz4.CompressBlockBound(len(data))
	dst := make([]byte, 4+bound)

	binary.LittleEndian.PutUint32(dst[:4], uint32(len(data)))

	written, err := lz4.CompressBlock(data, dst[4:], nil)
	if err != nil {
		return nil, err
	}

	if written == 0 && len(data) > 0 {
		return nil, fmt.Errorf("checkpoint: data incompressible by block compressor")
	}

	return dst[:4+written], nil
}

func decompress(data []byte) ([]byte, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("checkpoint: compressed entry too short")
	}

	uncompressedLen := binary.LittleEndian.Uint32(data[:4])
	dst := make([]byte, safeconv.MustUintToInt(uint(uncompressedLen)))

	n, err := lz4.UncompressBlock(data[4:], dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}
