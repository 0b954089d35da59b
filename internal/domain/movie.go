package domain

type Movie struct {
	ID              int
	Title           string
	DurationMinutes int
}
