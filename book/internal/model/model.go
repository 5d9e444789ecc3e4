package model

import (
	"strings"
	"time"

	"github.com/Astemirdum/book-service/book/internal/errs"
	"github.com/google/uuid"
)

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

type Book struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Title    string    `json:"title" db:"title"`
	Author   string    `json:"author" db:"author"`
	Synopsis string    `json:"synopsis" db:"synopsis"`
}

func NewBook(title, author, synopsis string) (Book, error) {
	if err := validateBook(title, author); err != nil {
		return Book{}, err
	}
	return Book{
		ID:       uuid.New(),
		Title:    title,
		Author:   author,
		Synopsis: synopsis,
	}, nil
}

// Update overwrites the mutable fields; the book is left untouched when the input is invalid.
func (b *Book) Update(title, author, synopsis string) error {
	if err := validateBook(title, author); err != nil {
		return err
	}
	b.Title = title
	b.Author = author
	b.Synopsis = synopsis
	return nil
}

func validateBook(title, author string) error {
	if strings.TrimSpace(title) == "" {
		return errs.Validation("title", "Title cannot be empty.")
	}
	if strings.TrimSpace(author) == "" {
		return errs.Validation("author", "Author cannot be empty.")
	}
	return nil
}

type User struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ExternalID string    `json:"externalId" db:"external_id"`
	Email      string    `json:"email" db:"email"`
	FullName   string    `json:"fullName" db:"full_name"`
	Role       string    `json:"role" db:"role"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

func NewUser(externalID, email, fullName string) User {
	return User{
		ID:         uuid.New(),
		ExternalID: externalID,
		Email:      email,
		FullName:   fullName,
		Role:       RoleUser,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
}

// IdentityClaims is what the identity provider asserts about a signed-in subject.
type IdentityClaims struct {
	ExternalID string
	Email      string
	FullName   string
}
