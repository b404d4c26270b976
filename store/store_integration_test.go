// store/store_integration_test.go
//go:build integration
// +build integration

package store_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community-connect/models"
	"community-connect/store"
)

// newTestStore connects to the database named by DATABASE_URL and applies
// the schema. Tests are skipped when no database is configured.
func newTestStore(t *testing.T) *store.SQLStore {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}

	ctx := context.Background()
	pool, err := store.NewPool(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	st := store.New(pool)
	require.NoError(t, st.InitSchema(ctx))
	return st
}

// uniqueEmail avoids collisions across test runs against a shared database.
func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

func seedVolunteer(t *testing.T, st *store.SQLStore) int {
	id, err := st.CreateVolunteer(context.Background(), models.Volunteer{
		Email:     uniqueEmail("vol"),
		Password:  "pw",
		FirstName: "Vera",
		LastName:  "Volunteer",
		BirthDate: time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return id
}

func seedRole(t *testing.T, st *store.SQLStore, skillID *int) int {
	ctx := context.Background()
	orgID, err := st.CreateOrganisation(ctx, models.Organisation{
		Email:    uniqueEmail("org"),
		Password: "pw",
		Name:     "Helpers Inc",
	})
	require.NoError(t, err)

	eventID, err := st.CreateEvent(ctx, models.Event{
		Name:           "Park Cleanup",
		Date:           "2026-09-12",
		OrganisationID: orgID,
	})
	require.NoError(t, err)

	roleID, err := st.CreateEventRole(ctx, models.EventRole{
		EventID: eventID,
		Name:    "Steward",
		SkillID: skillID,
	})
	require.NoError(t, err)
	return roleID
}

func TestRegisterForRole_DuplicateRejected(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	volunteerID := seedVolunteer(t, st)
	roleID := seedRole(t, st, nil)

	require.NoError(t, st.RegisterForRole(ctx, volunteerID, roleID))
	err := st.RegisterForRole(ctx, volunteerID, roleID)
	assert.ErrorIs(t, err, store.ErrAlreadySignedUp)
}

func TestRegisterForRole_SkillGate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	skillName := fmt.Sprintf("First Aid %d", time.Now().UnixNano())
	skillID, err := st.GetOrCreateSkill(ctx, skillName)
	require.NoError(t, err)

	roleID := seedRole(t, st, &skillID)

	// volunteer without the skill is rejected
	unskilled := seedVolunteer(t, st)
	err = st.RegisterForRole(ctx, unskilled, roleID)
	var missing *store.MissingSkillError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, skillName, missing.Skill)

	// volunteer with the exact skill name is accepted
	skilled := seedVolunteer(t, st)
	require.NoError(t, st.ReplaceVolunteerSkills(ctx, skilled, []string{skillName}))
	assert.NoError(t, st.RegisterForRole(ctx, skilled, roleID))
}

func TestRegisterForRole_ConcurrentAttemptsYieldOneSignup(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	volunteerID := seedVolunteer(t, st)
	roleID := seedRole(t, st, nil)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = st.RegisterForRole(ctx, volunteerID, roleID)
		}(i)
	}
	wg.Wait()

	// exactly one attempt wins
	if errs[0] == nil {
		assert.ErrorIs(t, errs[1], store.ErrAlreadySignedUp)
	} else {
		assert.NoError(t, errs[1])
		assert.ErrorIs(t, errs[0], store.ErrAlreadySignedUp)
	}
}

func TestUpdateSignupStatus_MissingSignup(t *testing.T) {
	st := newTestStore(t)

	err := st.UpdateSignupStatus(context.Background(), -1, models.StatusAccepted)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestReplaceVolunteerSkills_FullReplace(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	volunteerID := seedVolunteer(t, st)
	require.NoError(t, st.ReplaceVolunteerSkills(ctx, volunteerID, []string{"Python", "Rust"}))
	require.NoError(t, st.ReplaceVolunteerSkills(ctx, volunteerID, []string{"Cooking"}))

	_, skills, err := st.GetVolunteerProfile(ctx, volunteerID)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Cooking", skills[0].Name)
}

func TestDeleteEvent_MissingIDIsNoop(t *testing.T) {
	st := newTestStore(t)
	assert.NoError(t, st.DeleteEvent(context.Background(), -1))
}

func TestGetVolunteerByCredentials_ExactMatch(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	email := uniqueEmail("login")
	_, err := st.CreateVolunteer(ctx, models.Volunteer{
		Email:     email,
		Password:  "pw",
		FirstName: "Vera",
		LastName:  "Volunteer",
		BirthDate: time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	v, err := st.GetVolunteerByCredentials(ctx, email, "pw")
	require.NoError(t, err)
	assert.Equal(t, email, v.Email)

	_, err = st.GetVolunteerByCredentials(ctx, email, "wrong")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
