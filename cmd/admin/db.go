package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

func dbCmd(args []string) {
	fs := flag.NewFlagSet("db", flag.ExitOnError)
	dataDir := fs.String("data", "./data", "runtime data directory")
	worldID := fs.String("world", "", "world id (required unless -db)")
	dbPath := fs.String("db", "", "sqlite db path (optional)")
	sinceTick := fs.Uint64("since_tick", 0, "lower tick bound (inclusive)")
	limit := fs.Int("limit", 20, "result limit")
	actor := fs.String("actor", "", "actor filter (audits)")
	clientID := fs.String("client", "", "client_id filter (intents)")
	_ = fs.Parse(args)

	q := "ticks"
	if fs.NArg() > 0 {
		q = strings.TrimSpace(fs.Arg(0))
	}
	if *limit <= 0 {
		*limit = 20
	}

	path := strings.TrimSpace(*dbPath)
	if path == "" {
		if strings.TrimSpace(*worldID) == "" {
			fmt.Fprintln(os.Stderr, "missing -world or -db")
			os.Exit(2)
		}
		path = filepath.Join(*dataDir, "worlds", *worldID, "index.db")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open:", err)
		os.Exit(1)
	}
	defer db.Close()

	switch q {
	case "ticks":
		rows, err := db.Query(`SELECT tick,digest,joins,leaves,intents FROM ticks WHERE tick>=? ORDER BY tick DESC LIMIT ?`, *sinceTick, *limit)
		if err != nil {
			fmt.Fprintln(os.Stderr, "query:", err)
			os.Exit(1)
		}
		defer rows.Close()
		for rows.Next() {
			var r struct {
				Tick    int64  `json:"tick"`
				Digest  string `json:"digest"`
				Joins   int    `json:"joins"`
				Leaves  int    `json:"leaves"`
				Intents int    `json:"intents"`
			}
			if err := rows.Scan(&r.Tick, &r.Digest, &r.Joins, &r.Leaves, &r.Intents); err != nil {
				fmt.Fprintln(os.Stderr, "scan:", err)
				os.Exit(1)
			}
			printJSON(r)
		}
		if err := rows.Err(); err != nil {
			fmt.Fprintln(os.Stderr, "rows:", err)
			os.Exit(1)
		}

	case "intents":
		sqlq := `SELECT tick,seq,client_id,act_json FROM intents WHERE tick>=? ORDER BY tick DESC,seq ASC LIMIT ?`
		qArgs := []any{*sinceTick, *limit}
		if strings.TrimSpace(*clientID) != "" {
			sqlq = `SELECT tick,seq,client_id,act_json FROM intents WHERE tick>=? AND client_id=? ORDER BY tick DESC,seq ASC LIMIT ?`
			qArgs = []any{*sinceTick, strings.TrimSpace(*clientID), *limit}
		}
		rows, err := db.Query(sqlq, qArgs...)
		if err != nil {
			fmt.Fprintln(os.Stderr, "query:", err)
			os.Exit(1)
		}
		defer rows.Close()
		for rows.Next() {
			var r struct {
				Tick     int64  `json:"tick"`
				Seq      int    `json:"seq"`
				ClientID string `json:"client_id"`
				ActJSON  string `json:"act_json"`
			}
			if err := rows.Scan(&r.Tick, &r.Seq, &r.ClientID, &r.ActJSON); err != nil {
				fmt.Fprintln(os.Stderr, "scan:", err)
				os.Exit(1)
			}
			printJSON(r)
		}
		if err := rows.Err(); err != nil {
			fmt.Fprintln(os.Stderr, "rows:", err)
			os.Exit(1)
		}

	case "audits":
		sqlq := `SELECT tick,seq,actor,action,x,y,z,raw_json FROM audits WHERE tick>=? ORDER BY tick DESC,seq ASC LIMIT ?`
		qArgs := []any{*sinceTick, *limit}
		if strings.TrimSpace(*actor) != "" {
			sqlq = `SELECT tick,seq,actor,action,x,y,z,raw_json FROM audits WHERE tick>=? AND actor=? ORDER BY tick DESC,seq ASC LIMIT ?`
			qArgs = []any{*sinceTick, strings.TrimSpace(*actor), *limit}
		}
		rows, err := db.Query(sqlq, qArgs...)
		if err != nil {
			fmt.Fprintln(os.Stderr, "query:", err)
			os.Exit(1)
		}
		defer rows.Close()
		for rows.Next() {
			var r struct {
				Tick    int64  `json:"tick"`
				Seq     int    `json:"seq"`
				Actor   string `json:"actor"`
				Action  string `json:"action"`
				X       int    `json:"x"`
				Y       int    `json:"y"`
				Z       int    `json:"z"`
				RawJSON string `json:"raw_json"`
			}
			if err := rows.Scan(&r.Tick, &r.Seq, &r.Actor, &r.Action, &r.X, &r.Y, &r.Z, &r.RawJSON); err != nil {
				fmt.Fprintln(os.Stderr, "scan:", err)
				os.Exit(1)
			}
			printJSON(r)
		}
		if err := rows.Err(); err != nil {
			fmt.Fprintln(os.Stderr, "rows:", err)
			os.Exit(1)
		}

	case "catalogs":
		rows, err := db.Query(`SELECT name,digest,updated_at FROM catalogs ORDER BY name`)
		if err != nil {
			fmt.Fprintln(os.Stderr, "query:", err)
			os.Exit(1)
		}
		defer rows.Close()
		for rows.Next() {
			var r struct {
				Name      string `json:"name"`
				Digest    string `json:"digest"`
				UpdatedAt string `json:"updated_at"`
			}
			if err := rows.Scan(&r.Name, &r.Digest, &r.UpdatedAt); err != nil {
				fmt.Fprintln(os.Stderr, "scan:", err)
				os.Exit(1)
			}
			printJSON(r)
		}
		if err := rows.Err(); err != nil {
			fmt.Fprintln(os.Stderr, "rows:", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintln(os.Stderr, "unknown query:", q)
		fmt.Fprintln(os.Stderr, "usage: admin db [-data ./data] [-world WORLD|-db PATH] [-since_tick T] [-limit N] ticks|intents|audits|catalogs")
		os.Exit(2)
	}
}
