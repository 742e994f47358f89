package dto

type ToolResponse struct {
	Category    string   `json:"category"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	URL         string   `json:"url"`
}

type CategoryResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type RelatedToolsResponse struct {
	Tool    ToolResponse   `json:"tool"`
	Limit   int            `json:"limit"`
	Related []ToolResponse `json:"related"`
}
