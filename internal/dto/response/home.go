package response

import "letterboxd/internal/data/entity"

// HomePage holds the three sections of the landing page.
type HomePage struct {
	Movies  []entity.Movie
	Reviews []entity.Review
	Lists   []entity.MovieList
}

// PersonDetail is a person with the published movies they worked on.
type PersonDetail struct {
	Person      *entity.Person
	Filmography []entity.Movie
}
