// File: models/models_test.go
package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAge_BeforeBirthday(t *testing.T) {
	v := Volunteer{BirthDate: date(2000, time.June, 15)}
	assert.Equal(t, 23, v.Age(date(2024, time.June, 14)))
}

func TestAge_OnAndAfterBirthday(t *testing.T) {
	v := Volunteer{BirthDate: date(2000, time.June, 15)}
	assert.Equal(t, 24, v.Age(date(2024, time.June, 15)))
	assert.Equal(t, 24, v.Age(date(2024, time.December, 31)))
}

func TestParseSkillList(t *testing.T) {
	assert.Equal(t, []string{"Python", "Rust"}, ParseSkillList("Python, Python, Rust"))
	assert.Equal(t, []string{"Cooking"}, ParseSkillList("  Cooking  "))
	assert.Nil(t, ParseSkillList(", ,  ,"))
	assert.Nil(t, ParseSkillList(""))
}

func TestParseReviewStatus(t *testing.T) {
	status, err := ParseReviewStatus("Accepted")
	assert.NoError(t, err)
	assert.Equal(t, StatusAccepted, status)

	status, err = ParseReviewStatus("Rejected")
	assert.NoError(t, err)
	assert.Equal(t, StatusRejected, status)

	// Pending is an initial state, never a review decision
	_, err = ParseReviewStatus("Pending")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseReviewStatus("accepted")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseReviewStatus("")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestParseProfileField(t *testing.T) {
	field, err := ParseProfileField("volunteer", "skills")
	assert.NoError(t, err)
	assert.Equal(t, FieldSkills, field)

	field, err = ParseProfileField("organisation", "website_url")
	assert.NoError(t, err)
	assert.Equal(t, FieldWebsite, field)

	// organisation-only fields are rejected for volunteers and vice versa
	_, err = ParseProfileField("volunteer", "website_url")
	assert.Error(t, err)
	_, err = ParseProfileField("organisation", "skills")
	assert.Error(t, err)

	// unknown tags are rejected, never silently ignored
	_, err = ParseProfileField("volunteer", "shoe_size")
	assert.Error(t, err)
}
