package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myblog/pkg/models"
)

func TestArticleCache_GetStoreInvalidate(t *testing.T) {
	cache := NewArticleCache()

	_, ok := cache.Get("k")
	assert.False(t, ok)

	articles := []models.Article{{ID: "a"}}
	cache.Store("k", articles)
	articles[0].ID = "mutated"

	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, "a", got[0].ID)

	_, ok = cache.Get("other")
	assert.False(t, ok)

	cache.Invalidate()
	_, ok = cache.Get("k")
	assert.False(t, ok)
}

func TestLoadArticles_CacheHitWhenListingUnchanged(t *testing.T) {
	store, root := newTestStore(t, WithArticleCache(NewArticleCache()))
	path := filepath.Join(root, "articles", "post.md")
	modified := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	writeFile(t, path, "# Aaaa", modified)

	detail, _, err := store.ArticleByID("post")
	require.NoError(t, err)
	assert.Equal(t, "Aaaa", detail.Title)

	// Same size and mtime: the fingerprint does not change.
	writeFile(t, path, "# Bbbb", modified)

	detail, _, err = store.ArticleByID("post")
	require.NoError(t, err)
	assert.Equal(t, "Aaaa", detail.Title)
}

func TestLoadArticles_CacheMissOnEdit(t *testing.T) {
	store, root := newTestStore(t, WithArticleCache(NewArticleCache()))
	path := filepath.Join(root, "articles", "post.md")
	writeFile(t, path, "# Before", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	detail, _, err := store.ArticleByID("post")
	require.NoError(t, err)
	assert.Equal(t, "Before", detail.Title)

	writeFile(t, path, "# After", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

	detail, _, err = store.ArticleByID("post")
	require.NoError(t, err)
	assert.Equal(t, "After", detail.Title)
	assert.Equal(t, "2024-01-02", detail.PublishDate)
}
