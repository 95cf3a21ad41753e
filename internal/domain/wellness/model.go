package wellness

import "time"

// The questionnaire and plan are JSON documents end to end: the shapes
// below are the questionnaire form payload, the model's JSON contract
// and the stored document, so they carry json tags directly.

type PersonalInfo struct {
	Age           string `json:"age"`
	Gender        string `json:"gender"`
	Height        string `json:"height"` // cm
	Weight        string `json:"weight"` // kg
	ActivityLevel string `json:"activityLevel"`
}

type Lifestyle struct {
	SleepHours         string `json:"sleepHours"`
	StressLevel        string `json:"stressLevel"`
	SmokingStatus      string `json:"smokingStatus"`
	AlcoholConsumption string `json:"alcoholConsumption"`
	ExerciseFrequency  string `json:"exerciseFrequency"`
}

type MedicalHistory struct {
	Conditions  []string `json:"conditions"`
	Medications string   `json:"medications"`
	Allergies   string   `json:"allergies"`
}

type Preferences struct {
	DietType            string   `json:"dietType"`
	ExercisePreferences []string `json:"exercisePreferences"`
	TimeAvailability    string   `json:"timeAvailability"`
}

type Questionnaire struct {
	PersonalInfo   PersonalInfo   `json:"personalInfo"`
	HealthGoals    []string       `json:"healthGoals"`
	Lifestyle      Lifestyle      `json:"lifestyle"`
	MedicalHistory MedicalHistory `json:"medicalHistory"`
	Preferences    Preferences    `json:"preferences"`
}

type Recommendation struct {
	Tip         string `json:"tip"`
	Explanation string `json:"explanation"`
}

type PlanSection struct {
	Title           string           `json:"title"`
	Summary         string           `json:"summary"`
	Recommendations []Recommendation `json:"recommendations"`
}

type DayPlan struct {
	Day         string `json:"day"`
	Fitness     string `json:"fitness"`
	Nutrition   string `json:"nutrition"`
	Mindfulness string `json:"mindfulness"`
}

type WeeklySchedule struct {
	Title    string    `json:"title"`
	Summary  string    `json:"summary"`
	Schedule []DayPlan `json:"schedule"`
}

type Plan struct {
	NutritionPlan   PlanSection    `json:"nutritionPlan"`
	FitnessPlan     PlanSection    `json:"fitnessPlan"`
	MindfulnessPlan PlanSection    `json:"mindfulnessPlan"`
	WeeklySchedule  WeeklySchedule `json:"weeklySchedule"`
}

// SavedPlan is a generated plan the user chose to keep.
type SavedPlan struct {
	ID     string
	UserID string

	Questionnaire Questionnaire
	Plan          Plan

	CreatedAt time.Time
}
