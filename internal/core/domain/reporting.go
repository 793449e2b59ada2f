package domain

import "time"

// DashboardCounts holds the admin dashboard headline numbers.
type DashboardCounts struct {
	TotalUsers       int64   `json:"totalUsers"`
	AverageRating    float64 `json:"averageRating"`
	SoftDeletedUsers int64   `json:"softDeletedUsers"`
}

// DailyCount is the number of users created on one local calendar date (YYYY-MM-DD).
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// WeeklyCount is the number of users created in one ISO week.
type WeeklyCount struct {
	Year  int   `json:"year"`
	Week  int   `json:"week"`
	Count int64 `json:"count"`
}

// RecentUser is the projection returned by the recent-users widget.
type RecentUser struct {
	UserID    string    `json:"userID"`
	FullName  string    `json:"fullname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
