// Package models defines the domain types shared by the store, services and
// controllers.
// File: models/models.go
package models

import (
	"strings"
	"time"
)

// Volunteer is an individual who registers for event roles.
type Volunteer struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	BirthDate time.Time `json:"birthdate"`
	Bio       string    `json:"bio"`
}

// Age returns the volunteer's age in whole years as of the given day.
func (v Volunteer) Age(today time.Time) int {
	years := today.Year() - v.BirthDate.Year()
	birthdayThisYear := time.Date(today.Year(), v.BirthDate.Month(), v.BirthDate.Day(),
		0, 0, 0, 0, today.Location())
	if today.Before(birthdayThisYear) {
		years--
	}
	return years
}

// Organisation owns events and reviews signups.
type Organisation struct {
	ID          int    `json:"id"`
	Email       string `json:"email"`
	Password    string `json:"-"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

// Event is a dated gathering posted by an organisation.
type Event struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Date           string `json:"date"`
	Location       string `json:"location"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Description    string `json:"description"`
	OrganisationID int    `json:"organisation_id"`
}

// EventRole is a staffing slot within an event, optionally gated by a
// required skill.
type EventRole struct {
	ID          int    `json:"id"`
	EventID     int    `json:"event_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SkillID     *int   `json:"skill_id,omitempty"`
}

// RoleView is an EventRole joined with its required skill name and, for
// volunteer listings, the caller's signup status when one exists.
type RoleView struct {
	ID           int    `json:"id"`
	EventID      int    `json:"event_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	SkillName    string `json:"skill,omitempty"`
	SignupStatus string `json:"signup_status,omitempty"`
}

// Skill is a named capability tag shared across volunteers and role
// requirements.
type Skill struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ParseSkillList splits a free-text comma-separated skills field into a
// trimmed, de-duplicated list. Input order of first appearance is kept.
func ParseSkillList(raw string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
