package seed

import (
	"log"

	"murmur/internal/models"

	"gorm.io/gorm"
)

// Options controls how much demo data Run creates.
type Options struct {
	Users           int
	PostsPerUser    int
	CommentsPerPost int
	LikeRatio       float64 // chance that any given user likes any given post
}

// DefaultOptions returns a small but lived-in forum.
func DefaultOptions() Options {
	return Options{
		Users:           12,
		PostsPerUser:    4,
		CommentsPerPost: 3,
		LikeRatio:       0.3,
	}
}

// Run populates the database with demo users, posts, comments and likes.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		u, err := f.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, u)
	}
	log.Printf("seeded %d users", len(users))

	var posts []*models.Post
	for _, u := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			p, err := f.CreatePost(u, 90)
			if err != nil {
				return err
			}
			posts = append(posts, p)
		}
	}
	log.Printf("seeded %d posts", len(posts))

	comments := 0
	for _, p := range posts {
		for i := 0; i < opts.CommentsPerPost; i++ {
			author := users[f.rng.Intn(len(users))]
			if _, err := f.CreateComment(author, p); err != nil {
				return err
			}
			comments++
		}
	}
	log.Printf("seeded %d comments", comments)

	likes := 0
	for _, p := range posts {
		for _, u := range users {
			if f.rng.Float64() > opts.LikeRatio {
				continue
			}
			if err := f.LikePost(u, p); err != nil {
				return err
			}
			likes++
		}
	}
	log.Printf("seeded %d likes", likes)

	return nil
}
