package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"github.com/alitto/pond"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/sitewire/sitewire/pkg/multierr"
	"go.uber.org/zap"
)

type (
	// Asset is one file of the static site destined for the storage bucket.
	Asset struct {
		// FPath is the file path relative to the site root, slash separated.
		FPath string
		// Key is the object key, identical to FPath for now.
		Key         string
		ContentType string
		// SourceHash is the sha256 of the file contents, giving the
		// provisioning engine a stable change detector per object.
		SourceHash string
	}

	// Matcher decides which files under the site root become assets.
	Matcher struct {
		Include []string
		Exclude []string
	}
)

const (
	defaultContentType = "application/octet-stream"
	hashWorkers        = 8
)

// Matches reports whether the slash-separated relative path is selected.
// Exclude patterns win over include patterns.
func (m Matcher) Matches(relPath string) (bool, error) {
	included := len(m.Include) == 0
	for _, pattern := range m.Include {
		ok, err := doublestar.Match(pattern, relPath)
		if err != nil {
			return false, errors.Wrapf(err, "invalid include pattern %q", pattern)
		}
		if ok {
			included = true
			break
		}
	}
	if !included {
		return false, nil
	}
	for _, pattern := range m.Exclude {
		ok, err := doublestar.Match(pattern, relPath)
		if err != nil {
			return false, errors.Wrapf(err, "invalid exclude pattern %q", pattern)
		}
		if ok {
			return false, nil
		}
	}
	return true, nil
}

// Discover walks the site root and returns the matching files as assets,
// sorted by key. File hashing runs on a bounded worker pool.
func Discover(rootDir string, matcher Matcher) ([]Asset, error) {
	log := zap.S()

	var relPaths []string
	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		ok, err := matcher.Matches(rel)
		if err != nil {
			return err
		}
		if ok {
			relPaths = append(relPaths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking site directory %s", rootDir)
	}

	assets := make([]Asset, len(relPaths))
	var (
		mu   sync.Mutex
		errs multierr.Error
	)
	pool := pond.New(hashWorkers, len(relPaths))
	for i, rel := range relPaths {
		i, rel := i, rel
		pool.Submit(func() {
			hash, err := hashFile(filepath.Join(rootDir, filepath.FromSlash(rel)))
			if err != nil {
				mu.Lock()
				errs.Append(err)
				mu.Unlock()
				return
			}
			assets[i] = Asset{
				FPath:       rel,
				Key:         rel,
				ContentType: contentType(rel),
				SourceHash:  hash,
			}
		})
	}
	pool.StopAndWait()
	if err := errs.ErrOrNil(); err != nil {
		return nil, err
	}

	sort.Slice(assets, func(i, j int) bool { return assets[i].Key < assets[j].Key })
	log.Debug("discovered " + strconv.Itoa(len(assets)) + " site assets")
	return assets, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close() // nolint:errcheck

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func contentType(relPath string) string {
	if ct := mime.TypeByExtension(filepath.Ext(relPath)); ct != "" {
		return ct
	}
	return defaultContentType
}
