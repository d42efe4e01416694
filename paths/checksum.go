package paths

import (
	"encoding/hex"
	"io"
	"io/fs"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
)

// Checksum returns the hex-encoded BLAKE2b-256 digest of the file
// contents. A missing file gives ok == false and no error.
//
//	before, _, _ := p.Checksum()
//	// ... regenerate p ...
//	after, _, _ := p.Checksum()
//	changed := before != after
func (p Path) Checksum() (sum string, ok bool, err error) {
	f, err := os.Open(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger().Debug("absent", zap.String("path", p.path))
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "paths: open %s", p.path)
	}
	defer f.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", false, errors.Wrap(err, "paths: blake2b")
	}
	if _, err := io.Copy(h, f); err != nil {
		return "", false, errors.Wrapf(err, "paths: hash %s", p.path)
	}
	return hex.EncodeToString(h.Sum(nil)), true, nil
}

// SameContent reports whether p and other both exist and hold identical
// bytes.
func (p Path) SameContent(other Path) (bool, error) {
	a, okA, err := p.Checksum()
	if err != nil {
		return false, err
	}
	b, okB, err := other.Checksum()
	if err != nil {
		return false, err
	}
	return okA && okB && a == b, nil
}
