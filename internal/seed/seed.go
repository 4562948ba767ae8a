package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/campuswell/stress-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const seededDays = 14

var eventTitles = []struct {
	title    string
	category string
}{
	{"Calculus lecture", "class"},
	{"Physics lab", "class"},
	{"Study group", "study"},
	{"Gym session", "exercise"},
	{"Club meeting", "social"},
	{"Office hours", "class"},
}

var assignmentTitles = []struct {
	title  string
	course string
}{
	{"Problem set", "MATH 201"},
	{"Lab report", "PHYS 150"},
	{"Essay draft", "ENGL 102"},
	{"Reading response", "HIST 110"},
}

// Run seeds the database with sample users, events, assignments and heart
// rate samples. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Event{},
		&domain.Assignment{},
		&domain.HeartRateSample{},
		&domain.StressSampleRecord{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{
			ID:               uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Timezone:         "Europe/Amsterdam",
			ScreenTimeHours:  5.5,
			RestingHeartRate: 64,
			EnrolledClasses:  "MATH 201, PHYS 150, ENGL 102",
		},
		{
			ID:               uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Timezone:         "America/New_York",
			ScreenTimeHours:  7.2,
			RestingHeartRate: 72,
			EnrolledClasses:  "HIST 110, ENGL 102",
		},
		{
			ID:               uuid.MustParse("33333333-3333-3333-3333-333333333333"),
			Timezone:         "Asia/Tokyo",
			ScreenTimeHours:  4.0,
			RestingHeartRate: 58,
			EnrolledClasses:  "MATH 201, HIST 110",
		},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedSignalsForUser(db, user, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedSignalsForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i)
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

		for e := 0; e < 1+rng.Intn(3); e++ {
			pick := eventTitles[rng.Intn(len(eventTitles))]
			start := day.Add(time.Duration(8+rng.Intn(10)) * time.Hour)
			event := domain.Event{
				UserID:   user.ID,
				Title:    pick.title,
				Category: pick.category,
				StartAt:  start,
				EndAt:    start.Add(time.Duration(45+rng.Intn(75)) * time.Minute),
			}
			cond := domain.Event{UserID: user.ID, Title: pick.title, StartAt: start}
			if err := db.Where(&cond).FirstOrCreate(&event).Error; err != nil {
				return fmt.Errorf("failed to create event: %w", err)
			}
		}

		if rng.Float32() < 0.6 {
			pick := assignmentTitles[rng.Intn(len(assignmentTitles))]
			due := day.Add(time.Duration(15+rng.Intn(8)) * time.Hour)
			assignment := domain.Assignment{
				UserID: user.ID,
				Title:  pick.title,
				Course: pick.course,
				DueAt:  due,
			}
			cond := domain.Assignment{UserID: user.ID, Title: pick.title, DueAt: due}
			if err := db.Where(&cond).FirstOrCreate(&assignment).Error; err != nil {
				return fmt.Errorf("failed to create assignment: %w", err)
			}
		}

		// A few heart rate readings spread across waking hours.
		for s := 0; s < 4+rng.Intn(4); s++ {
			recordedAt := day.Add(time.Duration(7+rng.Intn(15)) * time.Hour).Add(time.Duration(rng.Intn(60)) * time.Minute)
			sample := domain.HeartRateSample{
				UserID:     user.ID,
				RecordedAt: recordedAt,
				BPM:        58 + rng.Intn(50),
			}
			cond := domain.HeartRateSample{UserID: user.ID, RecordedAt: recordedAt}
			if err := db.Where(&cond).FirstOrCreate(&sample).Error; err != nil {
				return fmt.Errorf("failed to create heart rate sample: %w", err)
			}
		}
	}
	return nil
}
