package seed

import (
	"strings"
	"time"

	"dev404/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedDemo generates fake signups and contact messages for development
// environments. Emails are deduplicated before insert so the unique index
// does not abort the batch.
func SeedDemo(db *gorm.DB, numSignups, numMessages int) (int, int, error) {
	gofakeit.Seed(time.Now().UnixNano())

	if numSignups <= 0 {
		numSignups = 25
	}
	if numMessages <= 0 {
		numMessages = 10
	}

	interests := []models.Interest{
		models.InterestComics,
		models.InterestMovies,
		models.InterestSeries,
		models.InterestGeneral,
	}

	seen := map[string]struct{}{}
	signups := make([]models.Signup, 0, numSignups)
	for len(signups) < numSignups {
		email := strings.ToLower(gofakeit.Email())
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		signups = append(signups, models.Signup{
			Email:            email,
			Interest:         interests[gofakeit.Number(0, len(interests)-1)],
			VerificationCode: uuid.NewString(),
			Verified:         gofakeit.Bool(),
		})
	}
	if err := db.Create(&signups).Error; err != nil {
		return 0, 0, err
	}

	msgs := make([]models.ContactMessage, 0, numMessages)
	for i := 0; i < numMessages; i++ {
		msgs = append(msgs, models.ContactMessage{
			Name:    gofakeit.Name(),
			Email:   strings.ToLower(gofakeit.Email()),
			Subject: gofakeit.Sentence(4),
			Message: gofakeit.Paragraph(1, 3, 8, "\n"),
		})
	}
	if err := db.Create(&msgs).Error; err != nil {
		return len(signups), 0, err
	}

	return len(signups), len(msgs), nil
}
