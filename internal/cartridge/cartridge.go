// Package cartridge packs and unpacks game bundles. A bundle is a tar
// archive of a game folder.
package cartridge

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

var (
	ErrNotFound = errors.New("cartridge not found")
	ErrExists   = errors.New("destination already exists")
	ErrUnsafe   = errors.New("unsafe path in cartridge")
)

// Store extracts bundles and owns the temporary folders it creates for them.
type Store struct {
	tempRoot string
	temps    []string
}

// NewStore creates tempRoot if needed. An empty tempRoot uses the system
// temporary directory.
func NewStore(tempRoot string) (*Store, error) {
	if tempRoot == "" {
		tempRoot = os.TempDir()
	}
	if err := os.MkdirAll(tempRoot, 0o755); err != nil {
		return nil, fmt.Errorf("cartridge store: %w", err)
	}
	return &Store{tempRoot: tempRoot}, nil
}

// Extract unpacks bundle into dest and returns the folder it used. With an
// empty dest a fresh temporary folder is created and removed again by
// Close. An existing dest is never written to. Nothing is left behind when
// extraction fails.
func (s *Store) Extract(bundle, dest string) (string, error) {
	f, err := os.Open(bundle)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", bundle, ErrNotFound)
		}
		return "", fmt.Errorf("open %s: %w", bundle, err)
	}
	defer f.Close()

	temp := dest == ""
	if temp {
		dest, err = os.MkdirTemp(s.tempRoot, "luag-*")
		if err != nil {
			return "", fmt.Errorf("temp folder: %w", err)
		}
	} else {
		if _, err := os.Lstat(dest); err == nil {
			return "", fmt.Errorf("%s: %w", dest, ErrExists)
		}
		if err := os.MkdirAll(dest, 0o755); err != nil {
			return "", fmt.Errorf("create %s: %w", dest, err)
		}
	}

	if err := untar(f, dest); err != nil {
		if rmErr := os.RemoveAll(dest); rmErr != nil {
			log.Printf("cartridge: cleanup %s: %v", dest, rmErr)
		}
		return "", fmt.Errorf("extract %s: %w", bundle, err)
	}
	if temp {
		s.temps = append(s.temps, dest)
	}
	return dest, nil
}

func untar(r io.Reader, dest string) error {
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		name := filepath.FromSlash(hdr.Name)
		if !filepath.IsLocal(name) {
			return fmt.Errorf("%q: %w", hdr.Name, ErrUnsafe)
		}
		target := filepath.Join(dest, name)
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			if err := writeFile(target, tr, hdr.FileInfo().Mode().Perm()); err != nil {
				return err
			}
		default:
			// links and devices have no place in a game folder
			return fmt.Errorf("%q: %w", hdr.Name, ErrUnsafe)
		}
	}
}

func writeFile(path string, r io.Reader, perm fs.FileMode) error {
	if perm == 0 {
		perm = 0o644
	}
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Pack writes folder into a new bundle file.
func Pack(folder, bundle string) (err error) {
	out, err := os.Create(bundle)
	if err != nil {
		return fmt.Errorf("create %s: %w", bundle, err)
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(bundle)
		}
	}()

	tw := tar.NewWriter(out)
	walkErr := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(folder, path)
		if err != nil || rel == "." {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(rel)
		if d.IsDir() {
			hdr.Name += "/"
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(tw, f)
		return err
	})
	if walkErr != nil {
		return fmt.Errorf("pack %s: %w", folder, walkErr)
	}
	return tw.Close()
}

// Close removes every temporary folder Extract created.
func (s *Store) Close() error {
	var errs []error
	for _, dir := range s.temps {
		if err := os.RemoveAll(dir); err != nil {
			errs = append(errs, err)
		}
	}
	s.temps = nil
	return errors.Join(errs...)
}
