package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeline_Units(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"10 days", 10},
		{"7 days", 7},
		{"365 days", 365},
		{"30 d", 30},
		{"1 week", 7},
		{"8 weeks", 56},
		{"2 wk", 14},
		{"52 weeks", 364},
		{"1 month", 30},
		{"3 months", 90},
		{"12 mo", 360},
		{"8 WEEKS", 56},
		{"I want to hit my goal in 8 weeks", 56},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			days, err := ParseTimeline(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, days)
		})
	}
}

func TestParseTimeline_Rejections(t *testing.T) {
	cases := []struct {
		text    string
		wantErr error
	}{
		{"banana", ErrTimelineNoNumber},
		{"soon", ErrTimelineNoNumber},
		{"10", ErrTimelineNoUnit},
		{"15 bananas", ErrTimelineNoUnit},
		{"6 days", ErrTimelineOutOfRange},
		{"366 days", ErrTimelineOutOfRange},
		{"0 weeks", ErrTimelineOutOfRange},
		{"53 weeks", ErrTimelineOutOfRange},
		{"0 months", ErrTimelineOutOfRange},
		{"13 months", ErrTimelineOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			_, err := ParseTimeline(tc.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestComputeBMR_KnownValues(t *testing.T) {
	// male, 180 lb, 70 in, age 30:
	// kg=81.64656, cm=177.8
	// 88.362 + 13.397*81.64656 + 4.799*177.8 - 5.677*30 = 1865.133
	assert.InDelta(t, 1865.133, ComputeBMR(180, 70, 30, "male"), 0.01)

	// female, same inputs:
	// 447.593 + 9.247*81.64656 + 3.098*177.8 - 4.330*30 = 1623.503
	assert.InDelta(t, 1623.503, ComputeBMR(180, 70, 30, "female"), 0.01)
}

func TestComputeBMR_Monotonicity(t *testing.T) {
	for _, gender := range []string{"male", "female"} {
		prev := ComputeBMR(100, 70, 30, gender)
		for w := 110.0; w <= 300; w += 10 {
			cur := ComputeBMR(w, 70, 30, gender)
			assert.Greater(t, cur, prev, "BMR should increase with weight (%s, %v lb)", gender, w)
			prev = cur
		}

		prev = ComputeBMR(180, 70, 20, gender)
		for age := 25; age <= 80; age += 5 {
			cur := ComputeBMR(180, 70, age, gender)
			assert.Less(t, cur, prev, "BMR should decrease with age (%s, age %d)", gender, age)
			prev = cur
		}
	}
}

func TestApplyActivityMultiplier(t *testing.T) {
	cases := []struct {
		level string
		want  int
	}{
		{"sedentary", 2400},   // 2000 * 1.2
		{"light", 2750},       // 2000 * 1.375
		{"moderate", 3100},    // 2000 * 1.55
		{"active", 3450},      // 2000 * 1.725
		{"very_active", 3800}, // 2000 * 1.9
	}

	for _, tc := range cases {
		got, err := ApplyActivityMultiplier(2000, tc.level)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.level)
	}

	_, err := ApplyActivityMultiplier(2000, "couch")
	assert.Error(t, err)
}

func TestComputeTargetCalories_LossSignConvention(t *testing.T) {
	// 200 -> 180 lb over 56 days at maintenance 2500:
	// total adjustment 20*3500=70000, daily round(70000/56)=1250
	target, deficit := ComputeTargetCalories(2500, 200, 180, 56)
	assert.Equal(t, 1250, target)
	assert.Equal(t, -1250, deficit)
}

func TestComputeTargetCalories_Gain(t *testing.T) {
	// 150 -> 160 lb over 70 days: daily round(35000/70)=500, added
	target, surplus := ComputeTargetCalories(2500, 150, 160, 70)
	assert.Equal(t, 3000, target)
	assert.Equal(t, 500, surplus)
}

func TestComputeTargetCalories_Maintain(t *testing.T) {
	target, deficit := ComputeTargetCalories(2500, 180, 180, 56)
	assert.Equal(t, 2500, target)
	assert.Equal(t, 0, deficit)
}

func TestComputeTargetProtein(t *testing.T) {
	// 200 lb = 90.7184 kg
	assert.Equal(t, 181, ComputeTargetProtein(200, true, false))  // 90.7184*2.0 = 181.44
	assert.Equal(t, 200, ComputeTargetProtein(200, false, true))  // 90.7184*2.2 = 199.58
	assert.Equal(t, 163, ComputeTargetProtein(200, false, false)) // 90.7184*1.8 = 163.29
}

func TestWarnIfAggressive(t *testing.T) {
	msg := WarnIfAggressive(true, 1250, 56)
	require.NotEmpty(t, msg)
	assert.Contains(t, msg, "1250")
	assert.Contains(t, msg, "84")  // ceil(56*1.5)
	assert.Contains(t, msg, "838") // round(1250*0.67)

	assert.Empty(t, WarnIfAggressive(true, 1000, 56), "1000 kcal/day is the threshold, not over it")
	assert.Empty(t, WarnIfAggressive(false, 1500, 56), "gaining never warns")
}

func TestCalculateGoals_EndToEnd(t *testing.T) {
	result, err := CalculateGoals(GoalInput{
		WeightLb:       200,
		TargetWeightLb: 180,
		HeightIn:       70,
		Age:            30,
		Gender:         "male",
		ActivityLevel:  "moderate",
		Timeline:       "8 weeks",
	})
	require.NoError(t, err)

	// BMR 88.362+13.397*90.7184+4.799*177.8-5.677*30 = 1986.67 -> *1.55 = 3079
	// daily adjustment round(70000/56) = 1250 -> target 1829, deficit -1250
	assert.Equal(t, 3079-1250, result.DailyCalories)
	assert.Equal(t, -1250, result.CalculatedDeficit)
	assert.Equal(t, 181, result.DailyProtein)
	assert.NotEmpty(t, result.Warning, "a 1250 kcal/day deficit should warn")
}

func TestCalculateGoals_IncompleteInput(t *testing.T) {
	base := GoalInput{
		WeightLb:       200,
		TargetWeightLb: 180,
		HeightIn:       70,
		Age:            30,
		Gender:         "male",
		ActivityLevel:  "moderate",
		Timeline:       "8 weeks",
	}

	cases := []struct {
		name  string
		mutFn func(in *GoalInput)
	}{
		{"zero weight", func(in *GoalInput) { in.WeightLb = 0 }},
		{"zero height", func(in *GoalInput) { in.HeightIn = 0 }},
		{"zero age", func(in *GoalInput) { in.Age = 0 }},
		{"negative weight", func(in *GoalInput) { in.WeightLb = -150 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutFn(&in)
			_, err := CalculateGoals(in)
			assert.ErrorIs(t, err, ErrIncompleteInput)
		})
	}
}

func TestCalculateGoals_TimelineErrorPropagates(t *testing.T) {
	_, err := CalculateGoals(GoalInput{
		WeightLb:       200,
		TargetWeightLb: 180,
		HeightIn:       70,
		Age:            30,
		Gender:         "male",
		ActivityLevel:  "moderate",
		Timeline:       "whenever",
	})
	assert.ErrorIs(t, err, ErrTimelineNoNumber)
}
