package handler

type ArticleResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Author    string   `json:"author"`
	Date      string   `json:"date"`
	Tags      []string `json:"tags"`
	ImageURL  string   `json:"imageUrl,omitempty"`
	SourceURL string   `json:"sourceUrl,omitempty"`
}

type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
}
