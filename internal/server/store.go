package server

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Tejass17x/fake-news-detector/internal/model"
)

// AnalysisRecord is one persisted analysis. The summary columns are
// queryable; the full result rides along as JSON.
type AnalysisRecord struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CreatedAt    time.Time `json:"created_at"`
	URL          string    `json:"url,omitempty" gorm:"index"`
	Title        string    `json:"title,omitempty"`
	Domain       string    `json:"domain,omitempty" gorm:"index"`
	Score        float64   `json:"overall_credibility_score"`
	Level        string    `json:"credibility_level"`
	Confidence   float64   `json:"confidence"`
	WarningCount int       `json:"warning_count"`
	ResultJSON   string    `json:"-"`
}

// Result unpacks the stored full analysis.
func (r *AnalysisRecord) Result() (*model.AnalysisResult, error) {
	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(r.ResultJSON), &result); err != nil {
		return nil, fmt.Errorf("decode stored result: %w", err)
	}
	return &result, nil
}

// Store persists analyses in SQLite.
type Store struct {
	db *gorm.DB
}

// NewStore opens (and migrates) the database at path.
func NewStore(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&AnalysisRecord{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

// Save persists a finished analysis and returns the stored record.
func (s *Store) Save(result *model.AnalysisResult) (*AnalysisRecord, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}

	record := &AnalysisRecord{
		CreatedAt:    time.Now().UTC(),
		URL:          result.Meta.URL,
		Title:        result.Meta.Title,
		Domain:       result.Meta.Domain,
		Score:        result.OverallScore,
		Level:        result.Level.String(),
		Confidence:   result.Confidence,
		WarningCount: result.WarningCount(),
		ResultJSON:   string(payload),
	}

	if err := s.db.Create(record).Error; err != nil {
		return nil, fmt.Errorf("save record: %w", err)
	}
	return record, nil
}

// Recent returns the latest analyses, newest first.
func (s *Store) Recent(limit int) ([]AnalysisRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var records []AnalysisRecord
	err := s.db.Order("created_at desc").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	return records, nil
}

// Stats summarizes everything analyzed so far.
type Stats struct {
	TotalAnalyses int64            `json:"total_analyses"`
	AvgScore      float64          `json:"avg_credibility_score"`
	Levels        map[string]int64 `json:"credibility_distribution"`
}

// Stats aggregates over all stored records.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{Levels: map[string]int64{}}

	if err := s.db.Model(&AnalysisRecord{}).Count(&stats.TotalAnalyses).Error; err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}
	if stats.TotalAnalyses == 0 {
		return stats, nil
	}

	row := s.db.Model(&AnalysisRecord{}).Select("avg(score)").Row()
	if err := row.Scan(&stats.AvgScore); err != nil {
		return nil, fmt.Errorf("average score: %w", err)
	}

	type levelCount struct {
		Level string
		N     int64
	}
	var counts []levelCount
	err := s.db.Model(&AnalysisRecord{}).
		Select("level, count(*) as n").
		Group("level").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("level distribution: %w", err)
	}
	for _, c := range counts {
		stats.Levels[c.Level] = c.N
	}

	return stats, nil
}
