// ABOUTME: Settings model holding nutrition goals and water preferences.
// ABOUTME: A single global instance lives in the application snapshot.
package models

// Settings holds the user's daily goals and app preferences.
type Settings struct {
	CalorieGoal float64 `json:"calorie_goal" yaml:"calorie_goal"`
	ProteinGoal float64 `json:"protein_goal" yaml:"protein_goal"`
	CarbsGoal   float64 `json:"carbs_goal" yaml:"carbs_goal"`
	FatGoal     float64 `json:"fat_goal" yaml:"fat_goal"`

	WaterTargetML  int `json:"water_target_ml" yaml:"water_target_ml"`
	WaterGlassML   int `json:"water_glass_ml" yaml:"water_glass_ml"`
	ReminderStart  int `json:"reminder_start_hour" yaml:"reminder_start_hour"`
	ReminderEnd    int `json:"reminder_end_hour" yaml:"reminder_end_hour"`
	ReminderEvery  int `json:"reminder_interval_min" yaml:"reminder_interval_min"`
	RemindersOn    bool `json:"reminders_enabled" yaml:"reminders_enabled"`
	ItemsPerPage   int `json:"items_per_page" yaml:"items_per_page"`
}

// DefaultSettings returns the settings used before the user configures goals.
func DefaultSettings() Settings {
	return Settings{
		CalorieGoal:   2000,
		ProteinGoal:   120,
		CarbsGoal:     250,
		FatGoal:       65,
		WaterTargetML: 2000,
		WaterGlassML:  250,
		ReminderStart: 8,
		ReminderEnd:   22,
		ReminderEvery: 60,
		RemindersOn:   false,
		ItemsPerPage:  10,
	}
}
