package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInsightStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    InsightStatus
		wantErr bool
	}{
		{name: "active", raw: "active", want: StatusActive},
		{name: "snoozed mixed case", raw: " Snoozed ", want: StatusSnoozed},
		{name: "resolved", raw: "resolved", want: StatusResolved},
		{name: "unknown", raw: "archived", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseInsightStatus(tc.raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseSeverityRejectsUnknown(t *testing.T) {
	t.Parallel()

	got, err := ParseSeverity("HIGH")
	require.NoError(t, err)
	assert.Equal(t, SeverityHigh, got)

	_, err = ParseSeverity("critical")
	assert.ErrorIs(t, err, ErrInvalidSeverity)
}

func TestTodaysIssuesWithInsightStatusPreservesOrderAndSource(t *testing.T) {
	t.Parallel()

	original := TodaysIssues{
		Insights: []Insight{
			{ID: 1, Title: "Traffic drop", Status: StatusActive},
			{ID: 2, Title: "Spend spike", Status: StatusActive},
			{ID: 3, Title: "Rage clicks", Status: StatusSnoozed},
		},
		Count: 3,
	}

	updated := original.WithInsightStatus(2, StatusResolved)

	require.Len(t, updated.Insights, 3)
	assert.Equal(t, []InsightID{1, 2, 3}, []InsightID{updated.Insights[0].ID, updated.Insights[1].ID, updated.Insights[2].ID})
	assert.Equal(t, StatusActive, updated.Insights[0].Status)
	assert.Equal(t, StatusResolved, updated.Insights[1].Status)
	assert.Equal(t, StatusSnoozed, updated.Insights[2].Status)
	assert.Equal(t, StatusActive, original.Insights[1].Status, "source snapshot must stay untouched")
	assert.Equal(t, 3, updated.Count)
}

func TestRegistrationValidate(t *testing.T) {
	t.Parallel()

	valid := Registration{Username: "alex", Email: "alex@example.com", Password: "pw", Password2: "pw"}
	assert.NoError(t, valid.Validate())

	mismatch := valid
	mismatch.Password2 = "other"
	assert.ErrorContains(t, mismatch.Validate(), "passwords do not match")

	missing := valid
	missing.Email = " "
	assert.ErrorContains(t, missing.Validate(), "email is required")
}

func TestFeatureFlagsGetSet(t *testing.T) {
	t.Parallel()

	flags := DefaultPreferences().Features
	enabled, err := flags.Get(FeatureEmailNotifications)
	require.NoError(t, err)
	assert.True(t, enabled)

	require.NoError(t, flags.Set(FeatureBeta, true))
	enabled, err = flags.Get(FeatureBeta)
	require.NoError(t, err)
	assert.True(t, enabled)

	assert.ErrorIs(t, flags.Set(Feature("dark-mode"), true), ErrUnknownFeature)
}
