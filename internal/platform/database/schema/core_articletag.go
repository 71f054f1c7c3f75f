package schema

// ArticleTagTable represents the 'core.articletag' table
type ArticleTagTable struct {
	Table     string
	ArticleID string
	TagID     string
}

// ArticleTag is the schema definition for core.articletag
var ArticleTag = ArticleTagTable{
	Table:     "core.articletag",
	ArticleID: "articleid",
	TagID:     "tagid",
}
