package model

type News struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageUrl string `json:"imageUrl"`
	Category string `json:"category"`
	Date     string `json:"date"` // ISO string
}
