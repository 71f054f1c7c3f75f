package schema

// CoreArticleTable represents the 'core.article' table
type CoreArticleTable struct {
	Table       string
	ID          string
	Title       string
	AuthorID    string
	CategoryID  string
	IsReady     string
	PublishedAt string
	UpdatedAt   string
}

// CoreArticle is the schema definition for core.article
var CoreArticle = CoreArticleTable{
	Table:       "core.article",
	ID:          "id",
	Title:       "title",
	AuthorID:    "authorid",
	CategoryID:  "categoryid",
	IsReady:     "isready",
	PublishedAt: "publishedat",
	UpdatedAt:   "updatedat",
}

func (t CoreArticleTable) Columns() []string {
	return []string{t.ID, t.Title, t.AuthorID, t.CategoryID, t.IsReady, t.PublishedAt, t.UpdatedAt}
}
