package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/trend-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/trend-dashboard-api/internal/config"
	"github.com/vfg2006/trend-dashboard-api/internal/domain"
	"github.com/vfg2006/trend-dashboard-api/pkg/utils"
)

const (
	trendDailyTable  = "trend_daily"
	trendWeeklyTable = "trend_weekly"
)

type SeriesRepository interface {
	LoadSnapshot(ctx context.Context) (*domain.SeriesSnapshot, error)
	SaveDaily(ctx context.Context, series domain.Series) error
	SaveWeekly(ctx context.Context, series domain.Series) error
}

type seriesRepository struct {
	conn postgres.Conn
	now  func() time.Time
}

func NewSeriesRepository(conn postgres.Conn) SeriesRepository {
	return &seriesRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (r *seriesRepository) LoadSnapshot(ctx context.Context) (*domain.SeriesSnapshot, error) {
	daily, err := r.loadDaily(ctx)
	if err != nil {
		return nil, err
	}

	weekly, err := r.loadWeekly(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.SeriesSnapshot{
		Daily:    daily,
		Weekly:   weekly,
		Source:   config.DataSourcePostgres,
		LoadedAt: r.now(),
	}, nil
}

func (r *seriesRepository) loadDaily(ctx context.Context) (domain.Series, error) {
	query, args, err := dailySelect().ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query da série diária")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar a série diária")
	}
	defer rows.Close()

	series := make(domain.Series, 0)
	for rows.Next() {
		var (
			date  time.Time
			point domain.TimeSeriesPoint
		)
		if err := rows.Scan(&date, &point.Revenue, &point.Spend, &point.ROAS); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear ponto diário")
		}
		point.Date = date.Format(time.DateOnly)
		series = append(series, point)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração da série diária")
	}

	return series, nil
}

func (r *seriesRepository) loadWeekly(ctx context.Context) (domain.Series, error) {
	query, args, err := weeklySelect().ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query da série semanal")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar a série semanal")
	}
	defer rows.Close()

	series := make(domain.Series, 0)
	for rows.Next() {
		var point domain.TimeSeriesPoint
		if err := rows.Scan(&point.Week, &point.Revenue, &point.Spend, &point.ROAS); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear ponto semanal")
		}
		series = append(series, point)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração da série semanal")
	}

	return series, nil
}

func (r *seriesRepository) SaveDaily(ctx context.Context, series domain.Series) error {
	if len(series) == 0 {
		return nil
	}

	builder, err := dailyUpsert(series)
	if err != nil {
		return err
	}

	return r.exec(ctx, builder)
}

// SaveWeekly substitui a série semanal inteira: semanas ausentes da nova série são
// removidas na mesma transação, senão suas posições se misturariam com as novas.
// Série vazia não altera a tabela.
func (r *seriesRepository) SaveWeekly(ctx context.Context, series domain.Series) error {
	if len(series) == 0 {
		return nil
	}

	return r.exec(ctx, weeklyStatements(series)...)
}

func (r *seriesRepository) exec(ctx context.Context, statements ...squirrel.Sqlizer) error {
	type statement struct {
		query string
		args  []interface{}
	}

	built := make([]statement, 0, len(statements))
	for _, stmt := range statements {
		query, args, err := stmt.ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir a query de gravação")
		}
		built = append(built, statement{query: query, args: args})
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range built {
			if _, err := tx.ExecContext(ctx, stmt.query, stmt.args...); err != nil {
				return errors.Wrap(err, "erro ao gravar série")
			}
		}
		return nil
	})
}

func dailySelect() squirrel.SelectBuilder {
	return squirrel.
		Select("date", "revenue", "spend", "roas").
		From(trendDailyTable).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func weeklySelect() squirrel.SelectBuilder {
	return squirrel.
		Select("week", "revenue", "spend", "roas").
		From(trendWeeklyTable).
		OrderBy("position ASC").
		PlaceholderFormat(squirrel.Dollar)
}

// dailyUpsert rejeita datas inválidas; a coluna date não aceita outros formatos
func dailyUpsert(series domain.Series) (squirrel.InsertBuilder, error) {
	builder := squirrel.
		Insert(trendDailyTable).
		Columns("date", "revenue", "spend", "roas").
		PlaceholderFormat(squirrel.Dollar)

	for _, point := range series {
		date, err := utils.ParseDateLike(point.Date)
		if err != nil {
			return builder, errors.Wrapf(err, "data inválida na série diária: %q", point.Date)
		}
		builder = builder.Values(date.Format(time.DateOnly), point.Revenue, point.Spend, point.ROAS)
	}

	return builder.Suffix(`ON CONFLICT (date) DO UPDATE SET
		revenue = EXCLUDED.revenue,
		spend = EXCLUDED.spend,
		roas = EXCLUDED.roas,
		updated_at = NOW()`), nil
}

// weeklyStatements remove as semanas que saíram da série antes de gravar as atuais
func weeklyStatements(series domain.Series) []squirrel.Sqlizer {
	return []squirrel.Sqlizer{weeklyPrune(series), weeklyUpsert(series)}
}

func weeklyPrune(series domain.Series) squirrel.DeleteBuilder {
	weeks := make([]string, 0, len(series))
	for _, point := range series {
		weeks = append(weeks, point.Week)
	}

	return squirrel.
		Delete(trendWeeklyTable).
		Where(squirrel.NotEq{"week": weeks}).
		PlaceholderFormat(squirrel.Dollar)
}

// weeklyUpsert grava a posição de cada semana para preservar a ordem de inserção
func weeklyUpsert(series domain.Series) squirrel.InsertBuilder {
	builder := squirrel.
		Insert(trendWeeklyTable).
		Columns("position", "week", "revenue", "spend", "roas").
		PlaceholderFormat(squirrel.Dollar)

	for i, point := range series {
		builder = builder.Values(i, point.Week, point.Revenue, point.Spend, point.ROAS)
	}

	return builder.Suffix(`ON CONFLICT (week) DO UPDATE SET
		position = EXCLUDED.position,
		revenue = EXCLUDED.revenue,
		spend = EXCLUDED.spend,
		roas = EXCLUDED.roas,
		updated_at = NOW()`)
}
