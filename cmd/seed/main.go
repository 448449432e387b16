package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"bookrest/internal/book"
	"bookrest/internal/config"
	"bookrest/internal/logger"
	"bookrest/internal/platform/database"
	"bookrest/internal/platform/migrations"
)

func main() {
	var (
		count  = flag.Int("count", 14, "Number of books to insert")
		random = flag.Bool("random", false, "Use random titles instead of the numbered fixtures")
	)
	flag.Parse()

	cfg, err := config.Load()
	log := logger.New(logger.Config{Level: "info", Environment: cfg.Env})
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.DBDriver, cfg.DBDSN, 5*time.Second)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if db.Driver() == config.DriverSQLite {
		migrations.SetLogger(log)
		if err := db.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate")
		}
	}

	repo := db.Books(cfg.DBTimeout)
	books := generate(*count, *random, rand.New(rand.NewSource(time.Now().UnixNano())))

	log.Info().Int("count", len(books)).Msg("inserting books")
	for i, b := range books {
		if _, err := repo.Save(ctx, b); err != nil {
			log.Fatal().Err(err).Int("index", i).Msg("failed to insert book")
		}
		if (i+1)%1000 == 0 {
			log.Info().Msgf("inserted %d/%d books", i+1, len(books))
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to count books")
	}
	log.Info().Int("total", len(all)).Msg("seed complete")
}

// generate returns n unsaved books. Fixtures follow book.SampleBook.
func generate(n int, random bool, rng *rand.Rand) []book.Book {
	books := make([]book.Book, 0, n)
	for i := 0; i < n; i++ {
		b := book.SampleBook(i)
		b.ID = 0
		if random {
			b.Title = fmt.Sprintf("Book Title %d - %s", i+1, randomWord(rng))
			b.Author = fmt.Sprintf("%s %s", randomWord(rng), randomWord(rng))
			b.Price = float64(500+rng.Intn(9500)) / 100
			b.LaunchDate = time.Date(1950+rng.Intn(75), time.Month(1+rng.Intn(12)), 1, 0, 0, 0, 0, time.UTC)
		}
		books = append(books, b)
	}
	return books
}

func randomWord(rng *rand.Rand) string {
	words := []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
	return words[rng.Intn(len(words))]
}
