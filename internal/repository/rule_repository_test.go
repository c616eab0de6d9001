package repository_test

import (
	"context"
	"errors"
	"testing"

	"company-ai/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/m-mizutani/gt"
	"go.uber.org/zap"
)

type fakeRows struct {
	data   [][]any
	idx    int
	closed bool
	err    error
}

func (f *fakeRows) Close()                                       { f.closed = true }
func (f *fakeRows) Err() error                                   { return f.err }
func (f *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (f *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (f *fakeRows) RawValues() [][]byte                          { return nil }
func (f *fakeRows) Conn() *pgx.Conn                              { return nil }

func (f *fakeRows) Next() bool {
	if f.idx >= len(f.data) {
		return false
	}
	f.idx++
	return true
}

func (f *fakeRows) Values() ([]any, error) {
	return f.data[f.idx-1], nil
}

func (f *fakeRows) Scan(dest ...any) error {
	row := f.data[f.idx-1]
	*dest[0].(*int) = row[0].(int)
	*dest[1].(*string) = row[1].(string)
	*dest[2].(*string) = row[2].(string)
	return nil
}

type fakeQuerier struct {
	rows    *fakeRows
	err     error
	gotSQL  string
	gotArgs []any
}

func (q *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.gotSQL = sql
	q.gotArgs = args
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func TestListCustomQuery(t *testing.T) {
	sql, args, err := repository.ListCustomQuery()
	gt.NoError(t, err).Required()
	gt.Value(t, sql).Equal("SELECT position, question, answer FROM custom_qa WHERE enabled = $1 ORDER BY position ASC")
	gt.A(t, args).Length(1)
}

func TestListCustomRules(t *testing.T) {
	rows := &fakeRows{data: [][]any{
		{1, "do you ship abroad", "Yes."},
		{2, "are you hiring", "Always."},
	}}
	q := &fakeQuerier{rows: rows}
	repo := repository.NewRuleRepository(q, zap.NewNop())

	pairs, err := repo.ListCustomRules(context.Background())
	gt.NoError(t, err).Required()
	gt.A(t, pairs).Length(2)
	gt.Value(t, pairs[0].Question).Equal("do you ship abroad")
	gt.Value(t, pairs[1].Answer).Equal("Always.")
	gt.Bool(t, rows.closed).True()
	gt.String(t, q.gotSQL).Contains("FROM custom_qa")
}

func TestListCustomRulesErrors(t *testing.T) {
	queryErr := errors.New("connection refused")
	repo := repository.NewRuleRepository(&fakeQuerier{err: queryErr}, zap.NewNop())
	_, err := repo.ListCustomRules(context.Background())
	gt.Error(t, err).Is(queryErr)

	rowsErr := errors.New("stream reset")
	repo = repository.NewRuleRepository(&fakeQuerier{rows: &fakeRows{err: rowsErr}}, zap.NewNop())
	_, err = repo.ListCustomRules(context.Background())
	gt.Error(t, err).Is(rowsErr)
}
