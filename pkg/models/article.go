package models

// Article is a Markdown file from the articles directory with its derived fields.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	PublishDate string `json:"publishDate"`
	Content     string `json:"content"`
}

// ArticleSummary is the listing view of an article (no body).
type ArticleSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	PublishDate string `json:"publishDate"`
}

type ArticleDetail struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	PublishDate string `json:"publishDate"`
	Content     string `json:"content"`
	ContentHTML string `json:"contentHtml,omitempty"` // only set for render=html
}

func (a Article) Summary() ArticleSummary {
	return ArticleSummary{
		ID:          a.ID,
		Title:       a.Title,
		PublishDate: a.PublishDate,
	}
}

func (a Article) Detail() ArticleDetail {
	return ArticleDetail{
		ID:          a.ID,
		Title:       a.Title,
		PublishDate: a.PublishDate,
		Content:     a.Content,
	}
}
