package models

import "time"

// Category is a user-defined grouping of accounts with an optional icon.
// Name is unique across all categories, compared case-insensitively.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IconPath  string    `json:"icon_path"`
	CreatedAt time.Time `json:"created_at"`
}
