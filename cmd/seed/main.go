// Command seed populates the database with demo users, posts, comments and likes.
package main

import (
	"flag"
	"log"

	"murmur/internal/config"
	"murmur/internal/database"
	"murmur/internal/seed"
)

func main() {
	users := flag.Int("users", 12, "number of users to create")
	postsPerUser := flag.Int("posts", 4, "posts per user")
	commentsPerPost := flag.Int("comments", 3, "comments per post")
	likeRatio := flag.Float64("like-ratio", 0.3, "chance a user likes a post")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		Users:           *users,
		PostsPerUser:    *postsPerUser,
		CommentsPerPost: *commentsPerPost,
		LikeRatio:       *likeRatio,
	}
	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
