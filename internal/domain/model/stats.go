package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Distribution is a histogram of a numeric pallet field over equal-width
// buckets, used for dashboard reporting.
//
// An empty input set yields empty Labels and Counts. A non-empty set always
// yields exactly five buckets.
//
// @Description Bucketed distribution of a numeric pallet field
type Distribution struct {
	// Field is the bucketed field ("price" or "volume").
	Field string `json:"field" example:"price"`
	// Labels are human-readable range labels, one per bucket.
	Labels []string `json:"labels"`
	// Counts are the number of pallets per bucket.
	Counts []int `json:"counts"`
} // @name Distribution

// CompanySummary holds per-company catalog statistics. Companies without
// pallets report zero for every statistic.
//
// @Description Per-company pallet statistics
type CompanySummary struct {
	CompanyID   primitive.ObjectID `json:"company_id"`
	CompanyName string             `json:"company_name" example:"Ahşap Palet A.Ş."`
	PalletCount int                `json:"pallet_count" example:"2"`
	AvgPrice    float64            `json:"avg_price" example:"285"`
	AvgVolume   float64            `json:"avg_volume" example:"41.1"`
	MinPrice    float64            `json:"min_price" example:"250"`
	MaxPrice    float64            `json:"max_price" example:"320"`
} // @name CompanySummary
