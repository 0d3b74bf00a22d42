package domain

import "time"

// Course is a storefront course item.
type Course struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Book is a purchasable or downloadable book.
type Book struct {
	ID     string
	Title  string
	Author string
	Price  float64
}

// LearningPath groups courses into an ordered curriculum.
type LearningPath struct {
	ID        string
	Title     string
	CourseIDs []string
}

// Tool is an auxiliary learning tool exposed on the storefront.
type Tool struct {
	ID    string
	Title string
	URL   string
}
