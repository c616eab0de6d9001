package repository

import (
	"context"
	"fmt"

	"company-ai/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const customQATable = "custom_qa"

// Querier is the part of pgxpool.Pool used by RuleRepository.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var _ Querier = (*pgxpool.Pool)(nil)

// RuleRepository reads custom Q&A pairs kept in Postgres. Rows are returned
// in position order so they can be appended to the knowledge base as-is.
type RuleRepository struct {
	db     Querier
	logger *zap.Logger
}

func NewRuleRepository(db Querier, logger *zap.Logger) *RuleRepository {
	return &RuleRepository{
		db:     db,
		logger: logger,
	}
}

// ListCustomQuery builds the select used by ListCustomRules.
func ListCustomQuery() (string, []interface{}, error) {
	return squirrel.Select("position", "question", "answer").
		From(customQATable).
		Where(squirrel.Eq{"enabled": true}).
		OrderBy("position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *RuleRepository) ListCustomRules(ctx context.Context) ([]models.CustomQA, error) {
	sql, args, err := ListCustomQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build custom_qa query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom_qa: %w", err)
	}
	defer rows.Close()

	var pairs []models.CustomQA
	for rows.Next() {
		var (
			position int
			qa       models.CustomQA
		)
		if err := rows.Scan(&position, &qa.Question, &qa.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan custom_qa row: %w", err)
		}
		pairs = append(pairs, qa)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read custom_qa rows: %w", err)
	}

	r.logger.Info("Custom Q&A loaded from database", zap.Int("count", len(pairs)))
	return pairs, nil
}
