// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ripple/internal/models"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	SkipBcrypt  bool
}

// Seeder populates the database with demo data.
type Seeder struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // weak randomness is fine for seeding
	return &Seeder{db: db, opts: opts, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Run clears the database if requested and seeds users, the follow graph,
// posts with engagement, stories and a few conversations.
func (s *Seeder) Run() error {
	log.Printf("Starting database seeding with %d users and %d posts...", s.opts.NumUsers, s.opts.NumPosts)

	if s.opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	users, err := s.seedUsers(s.opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d users", len(users))

	if err := s.seedFollowGraph(users); err != nil {
		return fmt.Errorf("failed to create follow graph: %w", err)
	}

	posts, err := s.seedPosts(users, s.opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("created %d posts", len(posts))

	if err := s.seedEngagement(users, posts); err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}

	if err := s.seedStories(users); err != nil {
		return fmt.Errorf("failed to create stories: %w", err)
	}

	if err := s.seedConversations(users); err != nil {
		return fmt.Errorf("failed to create conversations: %w", err)
	}

	log.Println("Database seeding completed.")
	return nil
}

// ClearAll truncates every seeded table.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE reply_likes, replies, comment_likes, comments, post_likes, posts,
		stories, follows, blocks, conversations, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (s *Seeder) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username:       fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Email:          gofakeit.Email(),
		FullName:       gofakeit.Name(),
		Bio:            gofakeit.Sentence(10),
		ProfilePicture: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	// Allow skipping bcrypt in dev fast mode
	if s.opts.SkipBcrypt {
		user.Password = "password123!"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123!"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Seeder) seedUsers(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := s.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// seedFollowGraph gives every user a handful of random follows. The unique
// pair index makes repeats harmless.
func (s *Seeder) seedFollowGraph(users []*models.User) error {
	if len(users) < 2 {
		return nil
	}
	for _, user := range users {
		follows := 2 + s.rng.Intn(6)
		for i := 0; i < follows; i++ {
			target := users[s.rng.Intn(len(users))]
			if target.ID == user.ID {
				continue
			}
			err := s.db.Exec(
				`INSERT INTO follows (follower_id, followee_id, created_at) VALUES (?, ?, NOW())
				 ON CONFLICT (follower_id, followee_id) DO NOTHING`,
				user.ID, target.ID,
			).Error
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedPosts(users []*models.User, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rng.Intn(len(users))]
		post := &models.Post{
			UserID:  author.ID,
			Caption: gofakeit.Paragraph(1, 3, 8, "\n"),
		}
		if s.rng.Intn(2) == 0 {
			post.Images = []string{
				fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
			}
		}
		post.CreatedAt = s.pastTimestamp(90)

		if err := s.db.Create(post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *Seeder) seedEngagement(users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		likers := s.rng.Intn(len(users) + 1)
		for i := 0; i < likers; i++ {
			user := users[s.rng.Intn(len(users))]
			err := s.db.Exec(
				`INSERT INTO post_likes (user_id, post_id, created_at) VALUES (?, ?, NOW())
				 ON CONFLICT (user_id, post_id) DO NOTHING`,
				user.ID, post.ID,
			).Error
			if err != nil {
				return err
			}
		}

		comments := s.rng.Intn(4)
		for i := 0; i < comments; i++ {
			commenter := users[s.rng.Intn(len(users))]
			comment := &models.Comment{
				Content: gofakeit.Sentence(8 + s.rng.Intn(10)),
				UserID:  commenter.ID,
				PostID:  post.ID,
			}
			if err := s.db.Create(comment).Error; err != nil {
				return err
			}

			if s.rng.Intn(3) == 0 {
				replier := users[s.rng.Intn(len(users))]
				reply := &models.Reply{
					Content:   gofakeit.Sentence(5 + s.rng.Intn(8)),
					UserID:    replier.ID,
					CommentID: comment.ID,
				}
				if err := s.db.Create(reply).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *Seeder) seedStories(users []*models.User) error {
	for _, user := range users {
		if s.rng.Intn(3) != 0 {
			continue
		}
		story := &models.Story{
			UserID:   user.ID,
			Text:     gofakeit.Sentence(6),
			ImageURL: fmt.Sprintf("https://picsum.photos/seed/story-%s/400/700", gofakeit.UUID()),
		}
		if err := s.db.Create(story).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedConversations(users []*models.User) error {
	if len(users) < 2 {
		return nil
	}
	pairs := len(users) / 2
	for i := 0; i < pairs; i++ {
		first := users[s.rng.Intn(len(users))]
		second := users[s.rng.Intn(len(users))]
		if first.ID == second.ID {
			continue
		}
		// Normalize pair order so the unique index catches repeats
		if first.ID > second.ID {
			first, second = second, first
		}
		err := s.db.Exec(
			`INSERT INTO conversations (first_member_id, second_member_id, created_at)
			 VALUES (?, ?, NOW())
			 ON CONFLICT (first_member_id, second_member_id) DO NOTHING`,
			first.ID, second.ID,
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// pastTimestamp returns a random time up to maxDays in the past.
func (s *Seeder) pastTimestamp(maxDays int) time.Time {
	daysBack := s.rng.Intn(maxDays)
	hoursBack := s.rng.Intn(24)
	minsBack := s.rng.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}
