package main

import (
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/sonik2001www/Credit-API/internal/config"
	"github.com/sonik2001www/Credit-API/internal/domain"
	"github.com/sonik2001www/Credit-API/internal/logger"
	"github.com/sonik2001www/Credit-API/internal/repository/postgres"
)

// seedDateLayout is the dotted format the seed files use.
const seedDateLayout = "02.01.2006"

// Seeds the database from the tab-delimited CSV exports: dictionary,
// users, credits, payments and plans. Existing data is wiped first, so
// this is strictly a development tool.
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	dataDir := flag.String("data", "data", "Directory holding the CSV files")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := seed(db, *dataDir); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	logger.Info("Seeding completed")
}

func seed(db *sql.DB, dataDir string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`TRUNCATE payments, plans, credits, users, dictionary RESTART IDENTITY CASCADE`)
	if err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	steps := []struct {
		file string
		load func(*sql.Tx, []map[string]string) error
	}{
		{"dictionary.csv", seedDictionary},
		{"users.csv", seedUsers},
		{"credits.csv", seedCredits},
		{"payments.csv", seedPayments},
		{"plans.csv", seedPlans},
	}
	for _, step := range steps {
		rows, err := loadCSV(filepath.Join(dataDir, step.file))
		if err != nil {
			return fmt.Errorf("%s: %w", step.file, err)
		}
		if err := step.load(tx, rows); err != nil {
			return fmt.Errorf("%s: %w", step.file, err)
		}
		logger.Info("Seeded table", "file", step.file, "rows", len(rows))
	}

	// Inserts carry explicit ids, so the serial sequences must be bumped.
	for _, table := range []string{"dictionary", "users", "credits", "payments", "plans"} {
		_, err := tx.Exec(fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %s))`, table, table))
		if err != nil {
			return fmt.Errorf("reset %s sequence: %w", table, err)
		}
	}

	return tx.Commit()
}

// loadCSV reads a tab-delimited file into one map per row, keyed by header.
func loadCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func seedDictionary(tx *sql.Tx, rows []map[string]string) error {
	for _, row := range rows {
		id, err := parseID(row["id"])
		if err != nil {
			return err
		}
		c := domain.Category{ID: id, Name: row["name"]}
		if _, err := tx.Exec(`INSERT INTO dictionary (id, name) VALUES ($1, $2)`, c.ID, c.Name); err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(tx *sql.Tx, rows []map[string]string) error {
	for _, row := range rows {
		id, err := parseID(row["id"])
		if err != nil {
			return err
		}
		registered, err := time.Parse(seedDateLayout, row["registration_date"])
		if err != nil {
			return err
		}
		u := domain.User{ID: id, Login: row["login"], RegistrationDate: registered}
		if _, err := tx.Exec(`INSERT INTO users (id, login, registration_date) VALUES ($1, $2, $3)`,
			u.ID, u.Login, u.RegistrationDate); err != nil {
			return err
		}
	}
	return nil
}

func seedCredits(tx *sql.Tx, rows []map[string]string) error {
	for _, row := range rows {
		id, err := parseID(row["id"])
		if err != nil {
			return err
		}
		userID, err := parseID(row["user_id"])
		if err != nil {
			return err
		}
		issued, err := time.Parse(seedDateLayout, row["issuance_date"])
		if err != nil {
			return err
		}
		due, err := time.Parse(seedDateLayout, row["return_date"])
		if err != nil {
			return err
		}
		var actual *time.Time
		if row["actual_return_date"] != "" {
			t, err := time.Parse(seedDateLayout, row["actual_return_date"])
			if err != nil {
				return err
			}
			actual = &t
		}
		body, err := decimal.NewFromString(row["body"])
		if err != nil {
			return err
		}
		percent, err := decimal.NewFromString(row["percent"])
		if err != nil {
			return err
		}
		c := domain.Credit{
			ID:               id,
			UserID:           userID,
			IssuanceDate:     issued,
			ReturnDate:       due,
			ActualReturnDate: actual,
			Body:             body,
			Percent:          percent,
		}
		_, err = tx.Exec(`INSERT INTO credits (id, user_id, issuance_date, return_date, actual_return_date, body, percent)
		                  VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			c.ID, c.UserID, c.IssuanceDate, c.ReturnDate, c.ActualReturnDate, c.Body, c.Percent)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedPayments(tx *sql.Tx, rows []map[string]string) error {
	for _, row := range rows {
		id, err := parseID(row["id"])
		if err != nil {
			return err
		}
		creditID, err := parseID(row["credit_id"])
		if err != nil {
			return err
		}
		typeID, err := parseID(row["type_id"])
		if err != nil {
			return err
		}
		paid, err := time.Parse(seedDateLayout, row["payment_date"])
		if err != nil {
			return err
		}
		sum, err := decimal.NewFromString(row["sum"])
		if err != nil {
			return err
		}
		p := domain.Payment{ID: id, Sum: sum, PaymentDate: paid, CreditID: creditID, TypeID: typeID}
		_, err = tx.Exec(`INSERT INTO payments (id, sum, payment_date, credit_id, type_id) VALUES ($1, $2, $3, $4, $5)`,
			p.ID, p.Sum, p.PaymentDate, p.CreditID, p.TypeID)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedPlans(tx *sql.Tx, rows []map[string]string) error {
	for _, row := range rows {
		id, err := parseID(row["id"])
		if err != nil {
			return err
		}
		categoryID, err := parseID(row["category_id"])
		if err != nil {
			return err
		}
		period, err := time.Parse(seedDateLayout, row["period"])
		if err != nil {
			return err
		}
		sum, err := decimal.NewFromString(row["sum"])
		if err != nil {
			return err
		}
		pl := domain.Plan{ID: id, Period: period, Sum: sum, CategoryID: categoryID}
		_, err = tx.Exec(`INSERT INTO plans (id, period, sum, category_id) VALUES ($1, $2, $3, $4)`,
			pl.ID, pl.Period, pl.Sum, pl.CategoryID)
		if err != nil {
			return err
		}
	}
	return nil
}

func parseID(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad id %q: %w", s, err)
	}
	return int32(v), nil
}
