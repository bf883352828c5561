// Package seed provides the sample books dataset.
package seed

import (
	"fmt"
	"math/rand"

	"bookquery/internal/book"
)

// Books returns the sample dataset used by the seeder and the engine tests.
func Books() []book.Book {
	return []book.Book{
		{Title: "To Kill a Mockingbird", Author: "Harper Lee", PublishedYear: 1960, Price: 12.99, Genre: "Fiction", InStock: true},
		{Title: "1984", Author: "George Orwell", PublishedYear: 1949, Price: 10.99, Genre: "Dystopian", InStock: true},
		{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", PublishedYear: 1925, Price: 9.99, Genre: "Fiction", InStock: true},
		{Title: "Brave New World", Author: "Aldous Huxley", PublishedYear: 1932, Price: 11.50, Genre: "Dystopian", InStock: false},
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", PublishedYear: 1937, Price: 12.99, Genre: "Fantasy", InStock: true},
		{Title: "The Catcher in the Rye", Author: "J.D. Salinger", PublishedYear: 1951, Price: 8.99, Genre: "Fiction", InStock: true},
		{Title: "Pride and Prejudice", Author: "Jane Austen", PublishedYear: 1813, Price: 7.99, Genre: "Romance", InStock: true},
		{Title: "The Lord of the Rings", Author: "J.R.R. Tolkien", PublishedYear: 1954, Price: 19.99, Genre: "Fantasy", InStock: true},
		{Title: "Animal Farm", Author: "George Orwell", PublishedYear: 1945, Price: 8.50, Genre: "Political Satire", InStock: false},
		{Title: "The Alchemist", Author: "Paulo Coelho", PublishedYear: 1988, Price: 10.99, Genre: "Fiction", InStock: true},
		{Title: "Moby Dick", Author: "Herman Melville", PublishedYear: 1851, Price: 12.50, Genre: "Adventure", InStock: false},
		{Title: "Wuthering Heights", Author: "Emily Brontë", PublishedYear: 1847, Price: 9.99, Genre: "Gothic Fiction", InStock: true},
		{Title: "Blindness", Author: "José Saramago", PublishedYear: 1995, Price: 13.25, Genre: "Fiction", InStock: true},
		{Title: "Life of Pi", Author: "Yann Martel", PublishedYear: 2001, Price: 11.99, Genre: "Adventure", InStock: true},
		{Title: "The Night Circus", Author: "Erin Morgenstern", PublishedYear: 2011, Price: 14.50, Genre: "Fantasy", InStock: true},
		{Title: "The Martian", Author: "Andy Weir", PublishedYear: 2011, Price: 15.99, Genre: "Science Fiction", InStock: true},
		{Title: "Project Hail Mary", Author: "Andy Weir", PublishedYear: 2021, Price: 18.00, Genre: "Science Fiction", InStock: true},
		{Title: "Circe", Author: "Madeline Miller", PublishedYear: 2018, Price: 16.99, Genre: "Fantasy", InStock: false},
	}
}

var (
	genres  = []string{"Fiction", "Science Fiction", "History", "Science", "Technology", "Romance", "Mystery", "Biography", "Philosophy", "Art"}
	authors = []string{"Ada Byron", "Ben Okri", "Clara Vale", "Dmitri Orlov", "Esi Mensah", "Farid Haddad", "Greta Lind", "Hiro Tanaka"}
	words   = []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
)

// Random generates count books with random attributes from rng.
func Random(rng *rand.Rand, count int) []book.Book {
	out := make([]book.Book, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, book.Book{
			Title:         fmt.Sprintf("Book Title %d - %s", i+1, words[rng.Intn(len(words))]),
			Author:        authors[rng.Intn(len(authors))],
			PublishedYear: 1900 + rng.Intn(125),
			Price:         float64(499+rng.Intn(4500)) / 100,
			Genre:         genres[rng.Intn(len(genres))],
			InStock:       rng.Intn(4) != 0,
		})
	}
	return out
}
