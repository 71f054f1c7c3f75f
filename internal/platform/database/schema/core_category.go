package schema

// CoreCategoryTable represents the 'core.category' table
type CoreCategoryTable struct {
	Table     string
	ID        string
	Title     string
	CreatedAt string
}

// CoreCategory is the schema definition for core.category
var CoreCategory = CoreCategoryTable{
	Table:     "core.category",
	ID:        "id",
	Title:     "title",
	CreatedAt: "createdat",
}

func (t CoreCategoryTable) Columns() []string {
	return []string{t.ID, t.Title, t.CreatedAt}
}
