// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package profile

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ckersey/souschef/internal/models"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time          { return f.now }
func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }
func newFakeClock(t time.Time) *fakeClock    { return &fakeClock{now: t} }

type stubReader struct {
	records []models.InteractionRecord
	err     error
	calls   int
}

func (s *stubReader) RecentInteractions(_ context.Context, _ string, limit int) ([]models.InteractionRecord, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if len(s.records) > limit {
		return s.records[:limit], nil
	}
	return s.records, nil
}

func testSnapshot() models.UserContextSnapshot {
	return models.UserContextSnapshot{
		UserID:            "user-1",
		SkillLevel:        models.SkillIntermediate,
		PreferredCuisines: []string{"italian"},
		Equipment:         []string{"oven", "cast iron skillet"},
	}
}

func positiveRecord(query string, ts time.Time) models.InteractionRecord {
	return models.InteractionRecord{
		ID:        "rec-" + ts.Format("150405"),
		UserID:    "user-1",
		Query:     query,
		TimeOfDay: models.TimeOfDayFromHour(ts.Hour()),
		Feedback:  &models.InteractionFeedback{Helpful: true},
		Timestamp: ts,
	}
}

func newTestBuilder(reader HistoryReader, clock *fakeClock) *Builder {
	return NewBuilder(reader, DefaultConfig(), clock.Now, zerolog.Nop())
}

func TestBuildBelowThresholdReturnsExactDefault(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC))
	base := clock.Now()
	reader := &stubReader{records: []models.InteractionRecord{
		positiveRecord("pasta tonight", base.Add(-48*time.Hour)),
		positiveRecord("quick lunch", base.Add(-24*time.Hour)),
		positiveRecord("easy dinner", base.Add(-2*time.Hour)),
	}}
	builder := newTestBuilder(reader, clock)

	got := builder.Build(context.Background(), "user-1", testSnapshot())
	want := DefaultProfile("user-1", testSnapshot(), clock.Now())

	if got.Learned {
		t.Fatal("expected unlearned default profile for history of 3")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("profile below threshold = %+v, want default %+v", got, want)
	}
}

func TestDefaultProfileHasEmptyPatterns(t *testing.T) {
	p := DefaultProfile("user-1", testSnapshot(), time.Time{})

	if len(p.Patterns.PreferredTimeByDay) != 0 {
		t.Errorf("default preferred times = %v, want empty", p.Patterns.PreferredTimeByDay)
	}
	if len(p.Patterns.MealTypesByTime) != 0 {
		t.Errorf("default meal types = %v, want empty", p.Patterns.MealTypesByTime)
	}
	if p.Patterns.WeekdayFrequency != 0 || p.Patterns.WeekendFrequency != 0 {
		t.Errorf("default frequencies = %v/%v, want 0/0",
			p.Patterns.WeekdayFrequency, p.Patterns.WeekendFrequency)
	}
	if p.Patterns.Complexity.Weekday != models.DifficultyMedium {
		t.Errorf("weekday complexity = %v for intermediate snapshot, want medium", p.Patterns.Complexity.Weekday)
	}
}

func TestBuildReaderFailureDegradesAndIsNotCached(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC))
	reader := &stubReader{err: errors.New("store offline")}
	builder := newTestBuilder(reader, clock)

	got := builder.Build(context.Background(), "user-1", testSnapshot())
	if got == nil || got.Learned {
		t.Fatalf("expected default profile on reader failure, got %+v", got)
	}

	builder.Build(context.Background(), "user-1", testSnapshot())
	if reader.calls != 2 {
		t.Errorf("degraded profile was cached: reader called %d times, want 2", reader.calls)
	}
}

func TestBuildCachesForTTLThenRecomputes(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC))
	base := clock.Now()
	records := make([]models.InteractionRecord, 0, 6)
	for i := 0; i < 6; i++ {
		records = append(records, positiveRecord("dinner ideas", base.Add(-time.Duration(i+1)*24*time.Hour)))
	}
	reader := &stubReader{records: records}
	builder := newTestBuilder(reader, clock)

	builder.Build(context.Background(), "user-1", testSnapshot())
	clock.Advance(29*time.Minute + 59*time.Second)
	builder.Build(context.Background(), "user-1", testSnapshot())
	if reader.calls != 1 {
		t.Fatalf("expected cache hit inside TTL, reader called %d times", reader.calls)
	}

	clock.Advance(time.Second)
	builder.Build(context.Background(), "user-1", testSnapshot())
	if reader.calls != 2 {
		t.Errorf("expected recompute at TTL boundary, reader called %d times", reader.calls)
	}
}

func TestInvalidateForcesRebuild(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC))
	reader := &stubReader{}
	builder := newTestBuilder(reader, clock)

	builder.Build(context.Background(), "user-1", testSnapshot())
	builder.Invalidate("user-1")
	builder.Build(context.Background(), "user-1", testSnapshot())
	if reader.calls != 2 {
		t.Errorf("expected rebuild after invalidation, reader called %d times", reader.calls)
	}
}

func TestFlavorAggregatesPositiveInteractionsOnly(t *testing.T) {
	base := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	history := []models.InteractionRecord{
		positiveRecord("spicy chicken curry", base),
		positiveRecord("spicy noodles with chili", base.Add(-24*time.Hour)),
		{
			ID: "neg-1", UserID: "user-1", Query: "spicy ramen",
			Feedback:  &models.InteractionFeedback{Rating: 2},
			Timestamp: base.Add(-48 * time.Hour),
		},
		{
			ID: "neg-2", UserID: "user-1", Query: "spicy tacos",
			Timestamp: base.Add(-72 * time.Hour),
		},
	}

	flavor := computeFlavor(history)
	want := clampScale(defaultSpiceLevel + 2*spiceStep + spiceStep)
	if math.Abs(flavor.SpiceLevel-want) > 1e-9 {
		t.Errorf("spice level = %v, want %v (two positive spicy+chili records only)", flavor.SpiceLevel, want)
	}
	if _, ok := flavor.IngredientAffinity["chicken"]; !ok {
		t.Error("expected chicken ingredient affinity from positive record")
	}
}

func TestCuisineScoreTracksFeedback(t *testing.T) {
	base := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	rec := positiveRecord("thai basil stir fry", base)
	rec.Feedback = &models.InteractionFeedback{
		Helpful: true, Cooked: true, Succeeded: true, Cuisine: "thai",
	}

	flavor := computeFlavor([]models.InteractionRecord{rec})
	entry, ok := flavor.Cuisines["thai"]
	if !ok {
		t.Fatal("expected thai cuisine entry")
	}
	if entry.Score <= defaultCuisineScore {
		t.Errorf("cuisine score = %v, want above baseline %v", entry.Score, defaultCuisineScore)
	}
	if entry.Confidence != 0.1 {
		t.Errorf("cuisine confidence = %v, want 0.1 after one observation", entry.Confidence)
	}
	if !entry.LastUpdated.Equal(base) {
		t.Errorf("cuisine last updated = %v, want %v", entry.LastUpdated, base)
	}
}

func TestComplexityWhenTiredFromSimplicityQueries(t *testing.T) {
	// Monday through Wednesday evenings.
	base := time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC)
	history := []models.InteractionRecord{
		{
			UserID: "user-1", Query: "something quick and easy im tired",
			Feedback:  &models.InteractionFeedback{Helpful: true, Cooked: true, Difficulty: models.DifficultyEasy},
			Timestamp: base,
		},
		{
			UserID: "user-1", Query: "weeknight braised short ribs",
			Feedback:  &models.InteractionFeedback{Helpful: true, Cooked: true, Difficulty: models.DifficultyMedium},
			Timestamp: base.AddDate(0, 0, 1),
		},
		{
			UserID: "user-1", Query: "weeknight roast chicken",
			Feedback:  &models.InteractionFeedback{Helpful: true, Cooked: true, Difficulty: models.DifficultyMedium},
			Timestamp: base.AddDate(0, 0, 2),
		},
	}

	patterns := computePatterns(history, testSnapshot())
	if patterns.Complexity.WhenTired != models.DifficultyEasy {
		t.Errorf("when-tired complexity = %v, want easy", patterns.Complexity.WhenTired)
	}
	if patterns.Complexity.Weekday != models.DifficultyMedium {
		t.Errorf("weekday complexity = %v, want medium", patterns.Complexity.Weekday)
	}
}

func TestPreferredTimesPickModalBucket(t *testing.T) {
	// Three Tuesday evenings, one Tuesday morning.
	tuesday := time.Date(2026, 3, 3, 19, 0, 0, 0, time.UTC)
	history := []models.InteractionRecord{
		positiveRecord("dinner", tuesday),
		positiveRecord("dinner", tuesday.AddDate(0, 0, 7)),
		positiveRecord("dinner", tuesday.AddDate(0, 0, 14)),
		positiveRecord("breakfast", time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC)),
	}

	prefs := preferredTimesByDay(history)
	if prefs[time.Tuesday] != models.TimeEvening {
		t.Errorf("tuesday preference = %v, want evening", prefs[time.Tuesday])
	}
}

func TestSkillPromotionFromHardSuccesses(t *testing.T) {
	base := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	var history []models.InteractionRecord
	for i := 0; i < 4; i++ {
		history = append(history, models.InteractionRecord{
			UserID: "user-1", Query: "beef wellington",
			Feedback: &models.InteractionFeedback{
				Helpful: true, Cooked: true, Succeeded: true,
				Difficulty: models.DifficultyHard,
			},
			Timestamp: base.AddDate(0, 0, -i),
		})
	}

	skill := computeSkill(history, testSnapshot())
	if skill.Overall != models.SkillAdvanced {
		t.Errorf("overall skill = %v, want advanced after 4 hard successes", skill.Overall)
	}
	if skill.Confidence != 0.2 {
		t.Errorf("confidence = %v, want 0.2 from 4 cooked outcomes", skill.Confidence)
	}
}

func TestSkillDemotionFromEasyFailures(t *testing.T) {
	base := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	var history []models.InteractionRecord
	for i := 0; i < 4; i++ {
		history = append(history, models.InteractionRecord{
			UserID: "user-1", Query: "scrambled eggs",
			Feedback: &models.InteractionFeedback{
				Cooked: true, Succeeded: false,
				Difficulty: models.DifficultyEasy,
			},
			Timestamp: base.AddDate(0, 0, -i),
		})
	}

	skill := computeSkill(history, testSnapshot())
	if skill.Overall != models.SkillBeginner {
		t.Errorf("overall skill = %v, want beginner after repeated easy failures", skill.Overall)
	}
}

func TestTrajectoryDetectsRecentImprovement(t *testing.T) {
	base := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	cooked := func(succeeded bool, daysAgo int) models.InteractionRecord {
		return models.InteractionRecord{
			UserID: "user-1", Query: "dinner",
			Feedback:  &models.InteractionFeedback{Cooked: true, Succeeded: succeeded},
			Timestamp: base.AddDate(0, 0, -daysAgo),
		}
	}
	// Most-recent-first: two recent successes, two older failures.
	history := []models.InteractionRecord{
		cooked(true, 1), cooked(true, 2), cooked(false, 10), cooked(false, 11),
	}

	traj := buildTrajectory(history, map[SkillArea]float64{})
	if !traj.RecentImprovement {
		t.Error("expected recent improvement from rising success rate")
	}
}

func feedbackOnlyRecord(ts time.Time) models.InteractionRecord {
	return models.InteractionRecord{
		ID: "fb-" + ts.Format("150405"), UserID: "user-1",
		Feedback:  &models.InteractionFeedback{Rating: 5, Cooked: true, Succeeded: true, Difficulty: models.DifficultyHard},
		Timestamp: ts,
	}
}

func TestFeedbackOnlyRecordsDoNotCountTowardThreshold(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC))
	base := clock.Now()
	records := []models.InteractionRecord{
		positiveRecord("dinner ideas", base.AddDate(0, 0, -1)),
		positiveRecord("dinner ideas", base.AddDate(0, 0, -2)),
		positiveRecord("dinner ideas", base.AddDate(0, 0, -3)),
		feedbackOnlyRecord(base.AddDate(0, 0, -4)),
		feedbackOnlyRecord(base.AddDate(0, 0, -5)),
	}
	reader := &stubReader{records: records}
	builder := newTestBuilder(reader, clock)

	got := builder.Build(context.Background(), "user-1", testSnapshot())
	if got.Learned {
		t.Error("three real interactions plus two feedback records should stay below the threshold of 5")
	}
}

func TestFeedbackOnlyRecordsExcludedFromPatterns(t *testing.T) {
	// Three Tuesday evening sessions, plus five Tuesday feedback records
	// whose zero-valued session fields would otherwise flip the Tuesday
	// preference to morning and invent a breakfast bucket.
	tuesday := time.Date(2026, 3, 3, 19, 0, 0, 0, time.UTC)
	history := []models.InteractionRecord{
		positiveRecord("dinner", tuesday),
		positiveRecord("dinner", tuesday.AddDate(0, 0, 7)),
		positiveRecord("dinner", tuesday.AddDate(0, 0, 14)),
	}
	for i := 0; i < 5; i++ {
		history = append(history, feedbackOnlyRecord(tuesday.AddDate(0, 0, 7*i).Add(2*time.Hour)))
	}

	patterns := computePatterns(history, testSnapshot())
	if patterns.PreferredTimeByDay[time.Tuesday] != models.TimeEvening {
		t.Errorf("tuesday preference = %v, want evening despite feedback records", patterns.PreferredTimeByDay[time.Tuesday])
	}
	if meals := patterns.MealTypesByTime[models.TimeMorning]; len(meals) != 0 {
		t.Errorf("morning meal buckets = %v, want none from feedback-only records", meals)
	}

	weekday, weekend := cookingFrequency(history)
	realOnly, realWeekend := cookingFrequency(history[:3])
	if weekday != realOnly || weekend != realWeekend {
		t.Errorf("frequency = %v/%v with feedback records, want %v/%v", weekday, weekend, realOnly, realWeekend)
	}
}

func TestFeedbackOnlyRecordsStillFeedSkill(t *testing.T) {
	base := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	var history []models.InteractionRecord
	for i := 0; i < 4; i++ {
		history = append(history, feedbackOnlyRecord(base.AddDate(0, 0, -i)))
	}

	skill := computeSkill(history, testSnapshot())
	if skill.Overall != models.SkillAdvanced {
		t.Errorf("overall skill = %v, want advanced from hard cooked successes via feedback", skill.Overall)
	}
}

func TestBuildIsLearnedAtThreshold(t *testing.T) {
	clock := newFakeClock(time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC))
	base := clock.Now()
	records := make([]models.InteractionRecord, 0, 5)
	for i := 0; i < 5; i++ {
		records = append(records, positiveRecord("dinner ideas", base.AddDate(0, 0, -(i+1))))
	}
	reader := &stubReader{records: records}
	builder := newTestBuilder(reader, clock)

	got := builder.Build(context.Background(), "user-1", testSnapshot())
	if !got.Learned {
		t.Error("expected learned profile at exactly the threshold of 5 interactions")
	}
}
