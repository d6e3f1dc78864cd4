// Package backup preserves target files that a launched app modified.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/DataDog/zstd"
)

// Create copies src into dir as <stem>_<unix-ts><ext>, compressing with
// zstd (and appending .zst) when compress is set. The backup directory is
// created on demand.
func Create(src, dir string, compress bool) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	base := filepath.Base(src)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" {
		// dotfiles keep their whole name
		stem, ext = base, ""
	}
	name := fmt.Sprintf("%s_%d%s", stem, time.Now().Unix(), ext)
	if compress {
		name += ".zst"
	}
	dst := filepath.Join(dir, name)

	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}

	if compress {
		zw := zstd.NewWriter(out)
		if _, err := io.Copy(zw, in); err != nil {
			zw.Close()
			out.Close()
			os.Remove(dst)
			return "", err
		}
		if err := zw.Close(); err != nil {
			out.Close()
			os.Remove(dst)
			return "", err
		}
	} else {
		if _, err := io.Copy(out, in); err != nil {
			out.Close()
			os.Remove(dst)
			return "", err
		}
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", err
	}
	return dst, nil
}
