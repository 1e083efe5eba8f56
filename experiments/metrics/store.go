package metrics

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GameRow is the persisted form of a GameRecord.
type GameRow struct {
	ID                 uint   `gorm:"primarykey"`
	Experiment         string `gorm:"index"`
	Seed               int64
	Winner             string
	Turns              int
	SelfLifePoints     int
	OpponentLifePoints int
	StartTime          time.Time
	EndTime            time.Time
	DurationMs         int64
	TurnRows           []TurnRow `gorm:"foreignKey:GameRowID"`
}

type TurnRow struct {
	ID         uint `gorm:"primarykey"`
	GameRowID  uint `gorm:"index"`
	Turn       int
	Side       string
	DurationUs int64
	Actions    int
	Rejected   int
}

// Store keeps self-play results in a SQLite database.
type Store struct {
	db *gorm.DB
}

// OpenStore opens (or creates) the database at path. An empty path uses a
// private in-memory database.
func OpenStore(path string) (*Store, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		CreateBatchSize:        500,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if path == "" {
		// every pooled connection would otherwise see its own empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access database: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	err = db.AutoMigrate(&GameRow{}, &TurnRow{})
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveGame stores one game and its turns atomically.
func (s *Store) SaveGame(experiment string, game GameRecord, turns []TurnRecord) error {
	row := GameRow{
		Experiment:         experiment,
		Seed:               game.Seed,
		Winner:             game.Winner,
		Turns:              game.Turns,
		SelfLifePoints:     game.SelfLifePoints,
		OpponentLifePoints: game.OpponentLifePoints,
		StartTime:          game.StartTime,
		EndTime:            game.EndTime,
		DurationMs:         game.Duration.Milliseconds(),
	}
	for _, t := range turns {
		row.TurnRows = append(row.TurnRows, TurnRow{
			Turn:       t.Turn,
			Side:       t.Side,
			DurationUs: t.Duration.Microseconds(),
			Actions:    t.Actions,
			Rejected:   t.Rejected,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save game with seed %d: %w", game.Seed, err)
	}
	return nil
}

// Games returns the stored games of an experiment with their turns, in
// insertion order.
func (s *Store) Games(experiment string) ([]GameRow, error) {
	var rows []GameRow
	err := s.db.Preload("TurnRows", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	}).Where("experiment = ?", experiment).Order("id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load games: %w", err)
	}
	return rows, nil
}

// Wins counts stored games per winner for an experiment.
func (s *Store) Wins(experiment string) (map[string]int, error) {
	var results []struct {
		Winner string
		Count  int
	}
	err := s.db.Model(&GameRow{}).
		Select("winner, count(*) as count").
		Where("experiment = ?", experiment).
		Group("winner").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count wins: %w", err)
	}

	wins := make(map[string]int, len(results))
	for _, r := range results {
		wins[r.Winner] = r.Count
	}
	return wins, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
