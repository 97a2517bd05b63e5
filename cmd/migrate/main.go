package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"community-board/config"
	"community-board/internal/repository"
	"community-board/internal/services"
	"community-board/pkg/database"
	"community-board/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
)

const usage = `
Community Board - Database CLI Tool

Usage:
  migrate [command] [flags]

Commands:
  up          Create the unique user indexes and the question sort index
  down        Drop the indexes created by up
  status      Show database connection status and collection sizes
  seed-dev    Seed with development/test data
  truncate    Delete every user and question (DANGEROUS)

Flags:
  -timeout duration   Timeout for the whole command (default 30s)
  -users int          Number of test users for seed-dev (default 3)

Examples:
  go run cmd/migrate/main.go up
  go run cmd/migrate/main.go seed-dev -users 5
  go run cmd/migrate/main.go truncate
`

func main() {
	// Define flags
	timeout := flag.Duration("timeout", 30*time.Second, "Timeout for the whole command")
	userCount := flag.Int("users", 3, "Number of test users for seed-dev")

	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)

	// Load config and connect to database
	cfg := config.LoadConfig()
	l := logger.New(cfg.LogMode)
	defer l.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := database.Connect(ctx, cfg, l)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer database.Disconnect(context.Background())

	switch command {
	case "up":
		runIndexesUp(ctx, db)
	case "down":
		runIndexesDown(ctx, db)
	case "status":
		showStatus(ctx, db)
	case "seed-dev":
		runSeedDevelopment(ctx, db, cfg, l, *userCount)
	case "truncate":
		runTruncate(ctx, db)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func runIndexesUp(ctx context.Context, db *mongo.Database) {
	log.Println("🚀 Creating indexes...")

	names, err := repository.EnsureIndexes(ctx, db)
	if err != nil {
		log.Fatalf("❌ Index creation failed: %v", err)
	}
	for _, name := range names {
		log.Printf("✅ Index %s", name)
	}

	log.Println("✅ Indexes created successfully!")
}

func runIndexesDown(ctx context.Context, db *mongo.Database) {
	log.Println("⬇️  Dropping indexes...")

	if err := repository.DropIndexes(ctx, db); err != nil {
		log.Fatalf("❌ Drop failed: %v", err)
	}

	log.Println("✅ Indexes dropped successfully!")
}

func showStatus(ctx context.Context, db *mongo.Database) {
	log.Println("🔍 Checking database status...")

	if err := database.HealthCheck(ctx); err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}
	log.Println("✅ Database connection: OK")

	counts, err := repository.CollectionCounts(ctx, db)
	if err != nil {
		log.Printf("⚠️  Error counting documents: %v", err)
	}
	for _, name := range []string{database.UsersCollection, database.QuestionsCollection} {
		log.Printf("✅ Collection %-12s %d documents", name, counts[name])
	}
}

func runSeedDevelopment(ctx context.Context, db *mongo.Database, cfg *config.Config, l *logger.Logger, userCount int) {
	log.Println("🌱 Seeding database (development mode)...")

	passwords, err := services.NewPasswordScheme(cfg.PasswordScheme)
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	auth := services.NewAuthService(repository.NewUserRepository(db), passwords)
	community := services.NewCommunityService(repository.NewQuestionRepository(db), nil, l)

	seeded := 0
	for i := 1; i <= userCount; i++ {
		username := fmt.Sprintf("testuser%d", i)
		u, err := auth.Register(ctx, services.RegisterInput{
			Name:     fmt.Sprintf("Test User %d", i),
			Email:    fmt.Sprintf("%s@example.com", username),
			Username: username,
			Password: "Password123!",
		})
		if err != nil {
			log.Printf("⚠️  Skipping %s: %v", username, err)
			continue
		}
		seeded++

		_, err = community.Create(ctx, map[string]any{
			"text": fmt.Sprintf("Sample question from %s", u.Username),
			"user": u.Username,
		})
		if err != nil {
			log.Fatalf("❌ Seeding failed: %v", err)
		}
	}

	log.Println("📊 Seed Summary:")
	log.Printf("   - Test users: %d", seeded)
	log.Printf("   - Questions: %d", seeded)
	log.Println("✅ Development seeding completed!")
}

func runTruncate(ctx context.Context, db *mongo.Database) {
	log.Println("⚠️  WARNING: This will DELETE all users and questions!")

	if err := repository.Truncate(ctx, db); err != nil {
		log.Fatalf("❌ Truncate failed: %v", err)
	}

	log.Println("✅ All collections truncated!")
}
