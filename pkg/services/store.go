package services

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"myblog/pkg/logging"
	"myblog/pkg/models"
)

const (
	AssetURLPrefix  = "/blog-assets/"
	profileFileName = "profile.json"
	articlesDirName = "articles"
	assetsDirName   = "assets"
)

// BlogStore reads the profile and articles from the data root on every call.
// It keeps no mutable state apart from the optional article cache, so one
// store can serve concurrent requests.
type BlogStore struct {
	dataRoot string
	baseURL  string
	cache    *ArticleCache
	logger   glog.Logger
}

type Option func(*BlogStore)

// WithArticleCache skips re-parsing when the articles listing is unchanged.
func WithArticleCache(cache *ArticleCache) Option {
	return func(s *BlogStore) {
		s.cache = cache
	}
}

func WithLogger(logger glog.Logger) Option {
	return func(s *BlogStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewBlogStore(dataPath, baseURL string, opts ...Option) (*BlogStore, error) {
	if strings.TrimSpace(dataPath) == "" {
		return nil, dataPathRequiredError()
	}
	root, err := filepath.Abs(dataPath)
	if err != nil {
		return nil, err
	}

	s := &BlogStore{
		dataRoot: filepath.Clean(root),
		baseURL:  strings.TrimSpace(baseURL),
		logger:   logging.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *BlogStore) DataRoot() string {
	return s.dataRoot
}

func (s *BlogStore) AssetsDir() string {
	return filepath.Join(s.dataRoot, assetsDirName)
}

func (s *BlogStore) ArticlesDir() string {
	return filepath.Join(s.dataRoot, articlesDirName)
}

// ArticleSummaries lists every article, newest first.
func (s *BlogStore) ArticleSummaries() ([]models.ArticleSummary, error) {
	articles, err := s.LoadArticles()
	if err != nil {
		return nil, err
	}
	summaries := make([]models.ArticleSummary, 0, len(articles))
	for _, a := range articles {
		summaries = append(summaries, a.Summary())
	}
	return summaries, nil
}

// ArticleByID returns the first article in listing order with the given id.
func (s *BlogStore) ArticleByID(id string) (models.ArticleDetail, bool, error) {
	articles, err := s.LoadArticles()
	if err != nil {
		return models.ArticleDetail{}, false, err
	}
	for _, a := range articles {
		if a.ID == id {
			return a.Detail(), true, nil
		}
	}
	return models.ArticleDetail{}, false, nil
}

// LoadArticles parses every *.md file directly under the articles directory
// and sorts them by publish date, newest first. Equal dates keep file name
// order. A missing directory is an empty blog; any unreadable file fails the
// whole load.
func (s *BlogStore) LoadArticles() ([]models.Article, error) {
	dir := s.ArticlesDir()
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return []models.Article{}, nil
	}

	files, err := markdownFiles(dir)
	if err != nil {
		s.logger.Error("articles directory unreadable", "dir", dir, "error", err)
		return nil, articlesDirError(dir, err)
	}

	var key string
	if s.cache != nil {
		key, err = listingFingerprint(dir, files)
		if err != nil {
			return nil, articlesDirError(dir, err)
		}
		if cached, ok := s.cache.Get(key); ok {
			return cached, nil
		}
	}

	articles := make([]models.Article, 0, len(files))
	for _, path := range files {
		article, err := ReadArticleFile(path)
		if err != nil {
			s.logger.Error("article unreadable", "path", path, "error", err)
			return nil, articlesDirError(dir, err)
		}
		articles = append(articles, article)
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishDate > articles[j].PublishDate
	})

	if s.cache != nil {
		s.cache.Store(key, articles)
	}
	s.logger.Debug("articles loaded", "dir", dir, "count", len(articles))
	return articles, nil
}

// markdownFiles returns regular files ending in .md (any case), ordered by
// name. Symlinks are followed; entries that cannot be stat'ed are skipped.
func markdownFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if !strings.HasSuffix(strings.ToLower(entry.Name()), ".md") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}
