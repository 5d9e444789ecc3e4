package model

import (
	"time"

	"github.com/google/uuid"
)

type BookInput struct {
	Title    string `json:"title" validate:"required,max=512"`
	Author   string `json:"author" validate:"required,max=512"`
	Synopsis string `json:"synopsis" validate:"max=8192"`
}

type Links struct {
	Self         string `json:"self"`
	Reservations string `json:"reservations"`
}

type BookOutput struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Author   string    `json:"author"`
	Synopsis string    `json:"synopsis"`
	Links    *Links    `json:"links,omitempty"`
}

type Paging struct {
	TotalCount int `json:"totalCount"`
	Offset     int `json:"offset"`
	Limit      int `json:"limit"`
}

type BookListResponse struct {
	Items  []BookOutput `json:"items"`
	Paging `json:",inline"`
}

type ReservationOutput struct {
	ID         uuid.UUID `json:"id"`
	BookID     uuid.UUID `json:"bookId"`
	UserID     uuid.UUID `json:"userId"`
	ReservedAt time.Time `json:"reservedAt"`
	State      string    `json:"state"`
}

type ReservationListResponse struct {
	Items  []ReservationOutput `json:"items"`
	Paging `json:",inline"`
}
