package zenfast

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/ivucicev/zenfast/internal/app"
	"github.com/ivucicev/zenfast/internal/db"
	"github.com/ivucicev/zenfast/internal/fasting"
	"github.com/ivucicev/zenfast/internal/state"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func withManager(run func(*state.Manager) error) error {
	return withDB(func(sqldb *sql.DB) error {
		return run(state.New(db.NewSnapshotStore(sqldb), nil))
	})
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

var dayNames = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

func parseWeekday(value string) (int, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for i, name := range dayNames {
		if v == name {
			return i, nil
		}
	}
	day, err := strconv.Atoi(v)
	if err != nil || day < 0 || day > 6 {
		return 0, fmt.Errorf("invalid day %q (expected sun..sat or 0..6)", value)
	}
	return day, nil
}

func weekdayName(day int) string {
	if day < 0 || day >= len(dayNames) {
		return "?"
	}
	name := dayNames[day]
	return strings.ToUpper(name[:1]) + name[1:]
}

// formatClock renders a millisecond duration as HH:MM:SS.
func formatClock(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	h := ms / fasting.MillisPerHour
	m := (ms % fasting.MillisPerHour) / 60000
	s := (ms % 60000) / 1000
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
