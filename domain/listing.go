package domain

import (
	"time"
)

// CREATE TABLE public.listings (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     domain_name     TEXT NOT NULL UNIQUE,
//     category        TEXT NOT NULL,
//     price           NUMERIC NOT NULL,
//     keyword_score   NUMERIC NOT NULL,
//     views           BIGINT NOT NULL DEFAULT 0,
//     clicks          BIGINT NOT NULL DEFAULT 0,
//     is_sold         BOOLEAN NOT NULL DEFAULT FALSE,
//     created_at      TIMESTAMPTZ DEFAULT NOW(),
//     updated_at      TIMESTAMPTZ DEFAULT NOW()
// );

type Listing struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	DomainName   string    `gorm:"column:domain_name;type:text;not null;uniqueIndex" json:"domain_name"`
	Category     string    `gorm:"column:category;type:text;not null;index" json:"category"`
	Price        float64   `gorm:"column:price;type:numeric;not null" json:"price"`
	KeywordScore float64   `gorm:"column:keyword_score;type:numeric;not null" json:"keyword_score"`
	Views        int64     `gorm:"column:views;default:0" json:"views"`
	Clicks       int64     `gorm:"column:clicks;default:0" json:"clicks"`
	IsSold       bool      `gorm:"column:is_sold;default:false;index" json:"is_sold"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Listing) TableName() string {
	return "listings"
}

// CTR is clicks over views, 0 when the listing has no views yet.
func (l Listing) CTR() float64 {
	if l.Views == 0 {
		return 0
	}
	return float64(l.Clicks) / float64(l.Views)
}

// ListingFilter narrows listing list queries. Nil fields are ignored.
type ListingFilter struct {
	Category *string
	IsSold   *bool
	Skip     int
	Limit    int
}

// ListingUpdate carries a partial update. Nil fields are left untouched.
type ListingUpdate struct {
	DomainName   *string
	Category     *string
	Price        *float64
	KeywordScore *float64
	Views        *int64
	Clicks       *int64
	IsSold       *bool
}
