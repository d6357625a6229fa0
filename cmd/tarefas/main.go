// Command tarefas reads and writes the legacy tarefas table in base.db.
// It is not part of the web application; it exists for the older
// hand-maintained task list that predates the board. The connection is
// opened per run and closed on every exit path.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	var (
		dbPath      = flag.String("db", "base.db", "path to the legacy sqlite file")
		name        = flag.String("add", "", "task name to insert; when empty the table is listed")
		responsible = flag.String("responsible", "", "responsible party for -add")
		status      = flag.String("status", "pending", "status for -add")
	)
	flag.Parse()

	db, err := sql.Open("sqlite3", *dbPath)
	if err != nil {
		log.Fatalf("failed to open %s: %v", *dbPath, err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Println("failed to close database:", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := ensureTable(ctx, db); err != nil {
		log.Fatal(err)
	}

	if *name != "" {
		if err := insert(ctx, db, *name, *responsible, *status); err != nil {
			log.Fatal(err)
		}
		log.Println("inserted", *name)
		return
	}

	if err := list(ctx, db); err != nil {
		log.Fatal(err)
	}
}

// ensureTable creates the legacy table when missing.
func ensureTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS tarefas (name VARCHAR(255), responsible VARCHAR(255), status VARCHAR(50))`)
	return err
}

// insert adds one row to the legacy table.
func insert(ctx context.Context, db *sql.DB, name, responsible, status string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO tarefas (name, responsible, status) VALUES (?, ?, ?)`,
		name, responsible, status)
	return err
}

// list prints every row in the legacy table.
func list(ctx context.Context, db *sql.DB) error {
	rows, err := db.QueryContext(ctx, `SELECT name, responsible, status FROM tarefas`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var name, responsible, status string
		if err := rows.Scan(&name, &responsible, &status); err != nil {
			return err
		}
		fmt.Printf("Name: %s, Responsible: %s, Status: %s\n", name, responsible, status)
	}
	return rows.Err()
}
