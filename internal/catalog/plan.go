package catalog

import (
	"alcyxob/calis-tracker/internal/domain"
)

// TrainingPlan is the complete 12-week calisthenics program.
// Monday: push + core. Tuesday: pull. Wednesday: legs + cardio.
// Thursday: upper body + metabolic. Friday: full body + HIIT.
var TrainingPlan = []PlanEntry{
	// Monday - Push + Core
	{
		Name:         "Incline Push-up",
		DayOfWeek:    1,
		Unit:         domain.UnitReps,
		InitialValue: 15,
		TargetValue:  20,
		Weeks: map[int]domain.WeekCell{
			1:  {Sets: 4, Reps: 15},
			2:  {Sets: 4, Reps: 17},
			3:  {Sets: 5, Reps: 17},
			4:  {Sets: 5, Reps: 19},
			5:  {Sets: 5, Reps: 20},
			6:  {Sets: 6, Reps: 20},
			7:  {Sets: 6, Reps: 22},
			8:  {Sets: 6, Reps: 22},
			9:  {Sets: 6, Reps: 25},
			10: {Sets: 6, Reps: 25},
			11: {Sets: 6, Reps: 27},
			12: {Sets: 6, Reps: 30},
		},
	},
	{
		Name:         "Standard Push-up",
		DayOfWeek:    1,
		Unit:         domain.UnitReps,
		InitialValue: 10,
		TargetValue:  40,
		Weeks: map[int]domain.WeekCell{
			1:  {Sets: 3, Reps: 10},
			2:  {Sets: 3, Reps: 12},
			3:  {Sets: 4, Reps: 12},
			4:  {Sets: 4, Reps: 15},
			5:  {Sets: 4, Reps: 18},
			6:  {Sets: 5, Reps: 20},
			7:  {Sets: 5, Reps: 25},
			8:  {Sets: 5, Reps: 30},
			9:  {Sets: 5, Reps: 35},
			10: {Sets: 5, Reps: 40},
			11: {Sets: 5, Reps: 40},
			12: {Sets: 5, Reps: 45},
		},
	},
	{
		Name:         "Pike Push-up",
		DayOfWeek:    1,
		Unit:         domain.UnitReps,
		InitialValue: 6,
		TargetValue:  12,
		Weeks: map[int]domain.WeekCell{
			1:  {Sets: 3, Reps: 6},
			2:  {Sets: 3, Reps: 8},
			3:  {Sets: 4, Reps: 8},
			4:  {Sets: 4, Reps: 10},
			5:  {Sets: 4, Reps: 10},
			6:  {Sets: 5, Reps: 10},
			7:  {Sets: 5, Reps: 12},
			8:  {Sets: 5, Reps: 12},
			9:  {Sets: 5, Reps: 15},
			10: {Sets: 5, Reps: 15},
			11: {Sets: 5, Reps: 18},
			12: {Sets: 5, Reps: 20},
		},
	},
	{
		Name:         "Plank",
		DayOfWeek:    1,
		Unit:         domain.UnitSeconds,
		InitialValue: 40,
		TargetValue:  120,
		Weeks: map[int]domain.WeekCell{
			1:  {Sets: 3, Time: 40},
			2:  {Sets: 3, Time: 45},
			3:  {Sets: 4, Time: 45},
			4:  {Sets: 4, Time: 50},
			5:  {Sets: 4, Time: 60},
			6:  {Sets: 5, Time: 60},
			7:  {Sets: 5, Time: 75},
			8:  {Sets: 5, Time: 90},
			9:  {Sets: 5, Time: 100},
			10: {Sets: 5, Time: 120},
			11: {Sets: 5, Time: 120},
			12: {Sets: 5, Time: 150},
		},
	},

	// Tuesday - Pull (progressive bar work)
	{
		Name:         "Australian Pull-up",
		DayOfWeek:    2,
		Unit:         domain.UnitReps,
		InitialValue: 10,
		TargetValue:  20,
		Weeks: map[int]domain.WeekCell{
			1:  {Sets: 4, Reps: 10},
			2:  {Sets: 4, Reps: 12},
			3:  {Sets: 5, Reps: 12},
			4:  {Sets: 5, Reps: 15},
			5:  {Sets: 5, Reps: 15},
			6:  {Sets: 5, Reps: 18},
			7:  {Sets: 5, Reps: 18},
			8:  {Sets: 4, Reps: 20, Notes: "max effort"},
			9:  {Sets: 5, Reps: 20},
			10: {Sets: 5, Reps: 22},
			11: {Sets: 5, Reps: 25},
			12: {Sets: 5, Reps: 25},
		},
	},
	{
		Name:         "Negative Pull-up",
		DayOfWeek:    2,
		Unit:         domain.UnitReps,
		InitialValue: 3,
		TargetValue:  4,
		Weeks: map[int]domain.WeekCell{
			1:  {Sets: 5, Reps: 3, Notes: "5s descent"},
			2:  {Sets: 5, Reps: 3, Notes: "6s descent"},
			3:  {Sets: 6, Reps: 3},
			4:  {Sets: 6, Reps: 4, Notes: "6-8s descent"},
			5:  {Sets: 6, Reps: 4, Notes: "6-8s descent"},
			6:  {Sets: 4, Reps: 4},
			7:  {Sets: 4, Reps: 4},
			8:  {Sets: 3, Reps: 3},
			9:  {Sets: 3, Reps: 3},
			10: {Sets: 3, Reps: 3},
			11: {Sets: 3, Reps: 3},
			12: {Sets: 3, Reps: 3},
		},
	},
	{
		Name:         "Bar Top Hold",
		DayOfWeek:    2,
		Unit:         domain.UnitSeconds,
		InitialValue: 10,
		TargetValue:  20,
		Weeks: map[int]domain.WeekCell{
			1:  {Sets: 3, Time: 10},
			2:  {Sets: 3, Time: 15},
			3:  {Sets: 4, Time: 15},
			4:  {Sets: 4, Time: 20},
			5:  {Sets: 4, Time: 20},
			6:  {Sets: 4, Time: 25},
			7:  {Sets: 4, Time: 30},
			8:  {Sets: 4, Time: 30},
			9:  {Sets: 4, Time: 35},
			10: {Sets: 4, Time: 40},
			11: {Sets: 4, Time: 45},
			12: {Sets: 4, Time: 50},
		},
	},
	{
		Name:         "Dead Hang",
		DayOfWeek:    2,
		Unit:         domain.UnitSeconds,
		InitialValue: 30,
		TargetValue:  60,
		Weeks: map[int]domain.WeekCell{
			1:  {Sets: 3, Time: 30},
			2:  {Sets: 3, Time: 35},
			3:  {Sets: 3, Time: 40},
			4:  {Sets: 3, Time: 45},
			5:  {Sets: 3, Time: 50},
			6:  {Sets: 3, Time: 55},
			7:  {Sets: 3, Time: 60},
			8:  {Sets: 3, Time: 60},
			9:  {Sets: 3, Time: 70},
			10: {Sets: 3, Time: 75},
			11: {Sets: 3, Time: 80},
			12: {Sets: 3, Time: 90},
		},
	},

	// Wednesday - Legs + Cardio
	{
		Name:         "Squat",
		DayOfWeek:    3,
		Unit:         domain.UnitReps,
		InitialValue: 20,
		TargetValue:  30,
		Weeks: map[int]domain.WeekCell{
			1:  {Sets: 4, Reps: 20},
			2:  {Sets: 4, Reps: 22},
			3:  {Sets: 4, Reps: 25},
			4:  {Sets: 4, Reps: 25},
			5:  {Sets: 4, Reps: 27},
			6:  {Sets: 4, Reps: 28},
			7:  {Sets: 4, Reps: 28},
			8:  {Sets: 4, Reps: 30},
			9:  {Sets: 4, Reps: 30},
			10: {Sets: 4, Reps: 32},
			11: {Sets: 4, Reps: 35},
			12: {Sets: 4, Reps: 40},
		},
	},
	{
		Name:         "Lunge",
		DayOfWeek:    3,
		Unit:         domain.UnitReps,
		InitialValue: 10,
		TargetValue:  15,
		Weeks: map[int]domain.WeekCell{
			1:  {Sets: 3, Reps: 10, Notes: "each leg"},
			2:  {Sets: 3, Reps: 12, Notes: "each leg"},
			3:  {Sets: 4, Reps: 12, Notes: "each leg"},
			4:  {Sets: 4, Reps: 13, Notes: "each leg"},
			5:  {Sets: 4, Reps: 13, Notes: "each leg"},
			6:  {Sets: 4, Reps: 14, Notes: "each leg"},
			7:  {Sets: 4, Reps: 14, Notes: "each leg"},
			8:  {Sets: 4, Reps: 15, Notes: "each leg"},
			9:  {Sets: 4, Reps: 15, Notes: "each leg"},
			10: {Sets: 4, Reps: 16, Notes: "each leg"},
			11: {Sets: 4, Reps: 18, Notes: "each leg"},
			12: {Sets: 4, Reps: 20, Notes: "each leg"},
		},
	},
	{
		Name:         "Calf Raise",
		DayOfWeek:    3,
		Unit:         domain.UnitReps,
		InitialValue: 25,
		TargetValue:  35,
		Weeks: map[int]domain.WeekCell{
			1:  {Sets: 4, Reps: 25},
			2:  {Sets: 4, Reps: 27},
			3:  {Sets: 4, Reps: 28},
			4:  {Sets: 4, Reps: 30},
			5:  {Sets: 4, Reps: 30},
			6:  {Sets: 4, Reps: 32},
			7:  {Sets: 4, Reps: 32},
			8:  {Sets: 4, Reps: 35},
			9:  {Sets: 4, Reps: 35},
			10: {Sets: 4, Reps: 38},
			11: {Sets: 4, Reps: 40},
			12: {Sets: 4, Reps: 45},
		},
	},

	// Thursday - Upper body + Metabolic
	{
		Name:         "Push-up (Technical Max)",
		DayOfWeek:    4,
		Unit:         domain.UnitReps,
		InitialValue: 10,
		TargetValue:  40,
		Weeks: map[int]domain.WeekCell{
			1:  {Sets: 4, Reps: 10, Notes: "technical max"},
			2:  {Sets: 4, Reps: 12, Notes: "technical max"},
			3:  {Sets: 5, Reps: 15, Notes: "technical max"},
			4:  {Sets: 5, Reps: 18, Notes: "technical max"},
			5:  {Sets: 5, Reps: 20, Notes: "technical max"},
			6:  {Sets: 5, Reps: 25, Notes: "technical max"},
			7:  {Sets: 5, Reps: 30, Notes: "technical max"},
			8:  {Sets: 5, Reps: 35, Notes: "technical max"},
			9:  {Sets: 5, Reps: 35, Notes: "technical max"},
			10: {Sets: 5, Reps: 40, Notes: "technical max"},
			11: {Sets: 5, Reps: 40, Notes: "technical max"},
			12: {Sets: 5, Reps: 45, Notes: "technical max"},
		},
	},
	{
		Name:         "Australian Pull-up (Max)",
		DayOfWeek:    4,
		Unit:         domain.UnitReps,
		InitialValue: 10,
		TargetValue:  25,
		Weeks: map[int]domain.WeekCell{
			1:  {Sets: 4, Reps: 10, Notes: "max effort"},
			2:  {Sets: 4, Reps: 12, Notes: "max effort"},
			3:  {Sets: 5, Reps: 15, Notes: "max effort"},
			4:  {Sets: 5, Reps: 18, Notes: "max effort"},
			5:  {Sets: 5, Reps: 20, Notes: "max effort"},
			6:  {Sets: 5, Reps: 22, Notes: "max effort"},
			7:  {Sets: 5, Reps: 25, Notes: "max effort"},
			8:  {Sets: 4, Reps: 25, Notes: "max effort"},
			9:  {Sets: 5, Reps: 25, Notes: "max effort"},
			10: {Sets: 5, Reps: 28, Notes: "max effort"},
			11: {Sets: 5, Reps: 30, Notes: "max effort"},
			12: {Sets: 5, Reps: 30, Notes: "max effort"},
		},
	},
	{
		Name:         "Bench Dips",
		DayOfWeek:    4,
		Unit:         domain.UnitReps,
		InitialValue: 12,
		TargetValue:  20,
		Weeks: map[int]domain.WeekCell{
			1:  {Sets: 3, Reps: 12},
			2:  {Sets: 3, Reps: 14},
			3:  {Sets: 4, Reps: 14},
			4:  {Sets: 4, Reps: 16},
			5:  {Sets: 4, Reps: 16},
			6:  {Sets: 4, Reps: 18},
			7:  {Sets: 4, Reps: 18},
			8:  {Sets: 4, Reps: 20},
			9:  {Sets: 4, Reps: 20},
			10: {Sets: 4, Reps: 22},
			11: {Sets: 4, Reps: 25},
			12: {Sets: 4, Reps: 25},
		},
	},

	// Friday - Full body + HIIT
	{
		Name:         "Pull-up",
		DayOfWeek:    5,
		Unit:         domain.UnitReps,
		InitialValue: 0,
		TargetValue:  5,
		Weeks: map[int]domain.WeekCell{
			1:  {Sets: 0, Reps: 0, Notes: "not yet"},
			2:  {Sets: 0, Reps: 0, Notes: "not yet"},
			3:  {Sets: 0, Reps: 0, Notes: "not yet"},
			4:  {Sets: 0, Reps: 0, Notes: "partial attempt"},
			5:  {Sets: 0, Reps: 0, Notes: "partial attempt"},
			6:  {Sets: 0, Reps: 0, Notes: "first full rep likely"},
			7:  {Sets: 4, Reps: 1, Notes: "1-3 reps"},
			8:  {Sets: 5, Reps: 2, Notes: "2-3 reps"},
			9:  {Sets: 6, Reps: 3},
			10: {Sets: 6, Reps: 5},
			11: {Sets: 6, Reps: 4},
			12: {Sets: 6, Reps: 5},
		},
	},
}
