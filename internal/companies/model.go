package companies

// Company represents a company entity. Code is the primary key and never
// changes after creation.
type Company struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Summary is the list projection: identifying fields only, description
// intentionally omitted.
type Summary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
