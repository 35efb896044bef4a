//go:build unit
// +build unit

package commands

import (
	"bytes"
	"testing"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/academies"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/events"
	"github.com/maurinmaster/SIA-FKBA/internal/domain/matchmaking"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedProfiles(t *testing.T) {
	profiles := SeedProfiles(40, false)
	require.Len(t, profiles, 40)

	assert.Equal(t, "Alex Silva", profiles[0].Name)
	assert.Equal(t, events.SexMale, profiles[0].Sex)
	assert.Equal(t, "Ana Souza", profiles[1].Name)
	assert.Equal(t, events.SexFemale, profiles[1].Sex)
	assert.Equal(t, "Leandro Silva Junior", profiles[20].Name)

	assert.Equal(t, "60.5", profiles[0].WeightKg.String())
	assert.Equal(t, "62", profiles[1].WeightKg.String())
	assert.Equal(t, "+557190000000", profiles[0].WhatsApp)
	assert.Equal(t, 1985, profiles[0].BirthDate.Year())

	names := map[string]bool{}
	for _, p := range profiles {
		assert.Equal(t, events.StatusConfirmed, p.Status)
		assert.False(t, names[p.Name], "duplicate name %s", p.Name)
		names[p.Name] = true
	}
}

func TestSeedProfiles_MixedStatusAndWrap(t *testing.T) {
	profiles := SeedProfiles(45, true)
	require.Len(t, profiles, 45)

	assert.Equal(t, events.StatusPending, profiles[0].Status)
	assert.Equal(t, events.StatusConfirmed, profiles[1].Status)
	assert.Equal(t, "Alex Silva 2", profiles[40].Name)
}

func TestAthleteProfile_Registration(t *testing.T) {
	profile := SeedProfiles(4, false)[3]
	coach := &academies.Coach{ID: "c1", AcademyID: "a1"}

	reg := profile.registration("e1", events.RuleSetK1Rules, coach)

	assert.Equal(t, "e1", reg.EventID)
	assert.Equal(t, "a1", reg.AcademyID)
	assert.Equal(t, "c1", reg.CoachID)
	assert.Nil(t, reg.CPF)
	assert.Equal(t, events.RuleSetK1Rules, reg.RuleSet)
	assert.Equal(t, profile.Wins+profile.Draws+profile.Losses, reg.TotalFights())
	assert.Equal(t, reg.DeriveExperienceLevel(), reg.ExperienceLevel)
}

func TestPrintGeneration(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer

	printGeneration(&out, &matchmaking.GenerationResult{
		BracketsCreated: 2,
		MatchesCreated:  3,
		Replaced:        1,
		Groups:          []matchmaking.GroupSummary{{RuleSet: "K1 Light", Experience: "Iniciante", Sex: "Masculino", AgeGroup: "Adulto", Weight: "-63,5kg", AthleteCount: 5, BracketCount: 2}},
		Unmatched:       []matchmaking.Unmatched{{RegistrationID: "r9", Athlete: "Ana Souza", Reason: matchmaking.ReasonUnsupportedSex}},
	})

	text := out.String()
	assert.Contains(t, text, "Generated 2 bracket(s), 3 match(es)")
	assert.Contains(t, text, "Replaced 1 bracket(s)")
	assert.Contains(t, text, "-63,5kg")
	assert.Contains(t, text, "Ana Souza")

	out.Reset()
	printGeneration(&out, &matchmaking.GenerationResult{})
	assert.Contains(t, out.String(), matchmaking.MsgNoBracketsCreated)
}
