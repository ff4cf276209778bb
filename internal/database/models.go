package database

import (
	"database/sql"
	"time"
)

// Строки таблиц в том виде, в котором их возвращает PostgreSQL.

type Team struct {
	TeamID        string
	TeamName      string
	MaxSavedCount int
	CreatedAt     time.Time
}

type Member struct {
	MemberID           string
	TeamID             string
	DisplayName        string
	InitialOnCallCount int
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Unavailability struct {
	UnavailabilityID string
	TeamID           string
	MemberID         string
	Day              time.Time
	CreatedAt        time.Time
}

type Plan struct {
	PlanID    string
	TeamID    string
	CreatedBy string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
}

type PlanAssignment struct {
	PlanID    string
	TeamID    string
	Day       time.Time
	MemberID  sql.NullString
	CreatedAt time.Time
}

type Event struct {
	EventID         int64
	TeamID          string
	EventType       string
	StartDate       time.Time
	EndDate         time.Time
	RangeDays       int
	MembersCount    sql.NullInt32
	UnassignedCount int
	Inequality      sql.NullInt32
	CreatedAt       time.Time
}

type MemberSavedCount struct {
	MemberID   string
	SavedCount int64
}

type AssignmentStat struct {
	Day      time.Time
	MemberID sql.NullString
}
