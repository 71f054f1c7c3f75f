package schema

// CoreSectionTable represents the 'core.section' table
type CoreSectionTable struct {
	Table       string
	ID          string
	ArticleID   string
	Title       string
	Number      string
	Content     string
	Slug        string
	PublishedAt string
	UpdatedAt   string

	// Constraint names, matched by dberr for client-safe conflict messages.
	UniqueNumber string
	UniqueTitle  string
}

// CoreSection is the schema definition for core.section
var CoreSection = CoreSectionTable{
	Table:       "core.section",
	ID:          "id",
	ArticleID:   "articleid",
	Title:       "title",
	Number:      "number",
	Content:     "content",
	Slug:        "slug",
	PublishedAt: "publishedat",
	UpdatedAt:   "updatedat",

	UniqueNumber: "section_article_number_key",
	UniqueTitle:  "section_article_title_key",
}

func (t CoreSectionTable) Columns() []string {
	return []string{t.ID, t.ArticleID, t.Title, t.Number, t.Content, t.Slug, t.PublishedAt, t.UpdatedAt}
}
