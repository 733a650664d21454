package model

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// ParseRole accepts only the two known roles so a typo never becomes a new
// role in storage.
func ParseRole(value string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", value)
}

type AssignmentStatus string

const (
	StatusPending   AssignmentStatus = "pending"
	StatusCompleted AssignmentStatus = "completed"
)

func ParseAssignmentStatus(value string) (AssignmentStatus, error) {
	switch AssignmentStatus(strings.ToLower(strings.TrimSpace(value))) {
	case StatusPending:
		return StatusPending, nil
	case StatusCompleted:
		return StatusCompleted, nil
	}
	return "", fmt.Errorf("unknown assignment status %q", value)
}

type User struct {
	ID        int64
	Name      string
	ScholarNo string
	Role      Role
	CreatedAt time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Session struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
}

type Assignment struct {
	ID        int64
	Title     string
	DueDate   *time.Time
	Status    AssignmentStatus
	UserID    int64
	CreatedAt time.Time
}

type AssignmentPatch struct {
	Title   *string
	DueDate *time.Time
	Status  *AssignmentStatus
}

type Todo struct {
	ID        int64
	Title     string
	Completed bool
	UserID    int64
	CreatedAt time.Time
}

type TodoPatch struct {
	Title     *string
	Completed *bool
}

type MessMenu struct {
	ID        int64
	Day       string
	Breakfast string
	Lunch     string
	TeaTime   *string
	Dinner    string
}

// MessMenuPatch carries the meals to overwrite; nil fields are left as stored.
type MessMenuPatch struct {
	Breakfast *string
	Lunch     *string
	TeaTime   *string
	Dinner    *string
}

func (p MessMenuPatch) Empty() bool {
	return p.Breakfast == nil && p.Lunch == nil && p.TeaTime == nil && p.Dinner == nil
}

// Weekdays lists the menu days in display order.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// WeekdayName returns the lowercase day name used as the mess menu key.
func WeekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// WeekdayIndex orders day names Monday first; unknown names sort last.
func WeekdayIndex(day string) int {
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return len(Weekdays)
}
