package io

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sitewire/sitewire/pkg/closenicely"
)

type (
	// File is an output artifact of a synthesis run, written under the
	// configured output directory.
	File interface {
		Path() string
		WriteTo(io.Writer) (int64, error)
		Clone() File
	}

	// RawFile holds its content in memory.
	RawFile struct {
		FPath   string
		Content []byte
	}

	// FileRef defers reading the referenced file until WriteTo is called.
	FileRef struct {
		FPath   string
		RootDir string
	}
)

func (r *RawFile) Clone() File {
	nf := &RawFile{FPath: r.FPath}
	nf.Content = make([]byte, len(r.Content))
	copy(nf.Content, r.Content)
	return nf
}

func (r *RawFile) Path() string {
	return r.FPath
}

func (r *RawFile) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.Content)
	return int64(n), err
}

func (r *FileRef) Clone() File {
	return r
}

func (r *FileRef) Path() string {
	return r.FPath
}

func (r *FileRef) WriteTo(w io.Writer) (int64, error) {
	f, err := os.Open(filepath.Join(r.RootDir, r.FPath))
	if err != nil {
		return 0, err
	}
	defer closenicely.OrDebug(f)
	return io.Copy(w, f)
}

// OutputTo writes every file under dest, creating intermediate directories as
// needed. Files are written concurrently; the first failure is returned.
func OutputTo(files []File, dest string) error {
	errs := make(chan error)
	for idx := range files {
		go func(f File) {
			path := filepath.Join(dest, f.Path())
			if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
				errs <- err
				return
			}
			file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
			if err != nil {
				errs <- err
				return
			}
			_, err = f.WriteTo(file)
			file.Close()
			errs <- err
		}(files[idx])
	}

	for i := 0; i < len(files); i++ {
		if err := <-errs; err != nil {
			return err
		}
	}
	return nil
}
