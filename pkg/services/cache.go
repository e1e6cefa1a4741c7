package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"myblog/pkg/models"
)

// ArticleCache holds the last parsed article list together with the
// fingerprint of the directory listing it was built from.
type ArticleCache struct {
	mu       sync.Mutex
	key      string
	articles []models.Article
	loaded   bool
}

func NewArticleCache() *ArticleCache {
	return &ArticleCache{}
}

func (c *ArticleCache) Get(key string) ([]models.Article, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded || c.key != key {
		return nil, false
	}
	return append([]models.Article(nil), c.articles...), true
}

func (c *ArticleCache) Store(key string, articles []models.Article) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.key = key
	c.articles = append([]models.Article(nil), articles...)
	c.loaded = true
}

func (c *ArticleCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.key = ""
	c.articles = nil
}

// listingFingerprint summarises the directory mtime and the name, size and
// mtime of every Markdown entry. Editing, adding or removing an article
// changes it.
func listingFingerprint(dir string, files []string) (string, error) {
	dirInfo, err := os.Stat(dir)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d", dirInfo.ModTime().UnixNano())
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "|%s:%d:%d", filepath.Base(path), info.Size(), info.ModTime().UnixNano())
	}
	return b.String(), nil
}
