package repository

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/MayankSaini-Byte/Study-Edge/internal/db"
	"github.com/MayankSaini-Byte/Study-Edge/internal/model"
)

const messMenuColumns = `id, day, breakfast, lunch, tea_time, dinner`

func scanMessMenu(row pgx.Row) (model.MessMenu, error) {
	var m model.MessMenu
	err := row.Scan(&m.ID, &m.Day, &m.Breakfast, &m.Lunch, &m.TeaTime, &m.Dinner)
	return m, err
}

func (s *Store) GetMessMenu(ctx context.Context, day string) (model.MessMenu, error) {
	row := s.db.Pool.QueryRow(ctx, `SELECT `+messMenuColumns+` FROM mess_menu WHERE day = $1`, day)
	m, err := scanMessMenu(row)
	return m, notFound(err)
}

func (s *Store) ListMessMenus(ctx context.Context) ([]model.MessMenu, error) {
	rows, err := s.db.Pool.Query(ctx, `SELECT `+messMenuColumns+` FROM mess_menu`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := []model.MessMenu{}
	for rows.Next() {
		m, err := scanMessMenu(rows)
		if err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sort.SliceStable(menus, func(i, j int) bool {
		return model.WeekdayIndex(menus[i].Day) < model.WeekdayIndex(menus[j].Day)
	})
	return menus, nil
}

func (s *Store) UpdateMessMenu(ctx context.Context, day string, patch model.MessMenuPatch) (model.MessMenu, error) {
	row := s.db.Pool.QueryRow(ctx, `
		UPDATE mess_menu
		SET breakfast = COALESCE($2, breakfast),
		    lunch = COALESCE($3, lunch),
		    tea_time = COALESCE($4, tea_time),
		    dinner = COALESCE($5, dinner)
		WHERE day = $1
		RETURNING `+messMenuColumns, day, patch.Breakfast, patch.Lunch, patch.TeaTime, patch.Dinner)
	m, err := scanMessMenu(row)
	return m, notFound(err)
}

// SeedMessMenu inserts menus only when the table is empty and reports how many
// rows were written.
func (s *Store) SeedMessMenu(ctx context.Context, menus []model.MessMenu) (int, error) {
	inserted := 0
	err := s.db.WithTx(ctx, func(q db.Querier) error {
		var existing bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM mess_menu)`).Scan(&existing); err != nil {
			return err
		}
		if existing {
			return nil
		}
		for _, m := range menus {
			tag, err := q.Exec(ctx, `
				INSERT INTO mess_menu (day, breakfast, lunch, tea_time, dinner)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (day) DO NOTHING
			`, m.Day, m.Breakfast, m.Lunch, m.TeaTime, m.Dinner)
			if err != nil {
				return err
			}
			inserted += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
