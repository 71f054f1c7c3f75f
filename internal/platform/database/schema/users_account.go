package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table     string
	ID        string
	Username  string
	Email     string
	Password  string
	Role      string
	FirstName string
	LastName  string
	Position  string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:     "users.account",
	ID:        "id",
	Username:  "username",
	Email:     "email",
	Password:  "passwordhash",
	Role:      "role",
	FirstName: "firstname",
	LastName:  "lastname",
	Position:  "position",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	DeletedAt: "deletedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Email, t.Password, t.Role,
		t.FirstName, t.LastName, t.Position,
		t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
