package models

import "time"

// Timestamps holds the created_at / updated_at columns shared by every table.
type Timestamps struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// MediaColumns is the (url, public_id, resource_type) triple persisted for each media reference.
type MediaColumns struct {
	URL          string `db:"url"`
	PublicID     string `db:"public_id"`
	ResourceType string `db:"resource_type"`
}

// NullableMediaColumns is MediaColumns for optional references.
type NullableMediaColumns struct {
	URL          *string `db:"url"`
	PublicID     *string `db:"public_id"`
	ResourceType *string `db:"resource_type"`
}
