package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/kunaalsai007/Wishlist-App/utils"
	"github.com/urfave/cli/v3"
)

// logEntry is one line of the JSON log written by utils.InitLogger
type logEntry struct {
	Level  string `json:"level"`
	Msg    string `json:"msg"`
	Method string `json:"method"`
	Path   string `json:"path"`
	Status int    `json:"status"`
}

type LogStats struct {
	Lines         int
	Malformed     int
	Levels        map[string]int
	Requests      int
	StatusClasses map[string]int
	Forbidden     int
	Signups       int
	LoginSuccess  int
	LoginFailures int
	Invites       int
	RouteHits     map[string]int
	ErrorPatterns map[string]int
}

func newLogStats() *LogStats {
	return &LogStats{
		Levels:        make(map[string]int),
		StatusClasses: make(map[string]int),
		RouteHits:     make(map[string]int),
		ErrorPatterns: make(map[string]int),
	}
}

func main() {
	app := &cli.Command{
		Name:  "analyze_logs",
		Usage: "Summarise a day of the wishlist API's JSON log",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Log directory",
				Value:   "./logs",
				Sources: cli.EnvVars("LOG_DIR"),
			},
			&cli.StringFlag{
				Name:  "day",
				Usage: "Day to analyze (YYYY-MM-DD)",
				Value: time.Now().Format("2006-01-02"),
			},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	date, err := time.Parse("2006-01-02", cmd.String("day"))
	if err != nil {
		return fmt.Errorf("invalid day %q: %w", cmd.String("day"), err)
	}

	logFile := filepath.Join(cmd.String("dir"), utils.LogFileName(date))
	file, err := os.Open(logFile)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", logFile, err)
	}
	defer file.Close()

	stats := newLogStats()
	if err := analyzeLogs(file, stats); err != nil {
		return fmt.Errorf("reading log file %s: %w", logFile, err)
	}
	printReport(os.Stdout, stats)
	return nil
}

func analyzeLogs(r io.Reader, stats *LogStats) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		stats.Lines++

		var entry logEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			stats.Malformed++
			continue
		}
		stats.Levels[entry.Level]++

		if entry.Method != "" && entry.Status != 0 {
			stats.Requests++
			stats.StatusClasses[fmt.Sprintf("%dxx", entry.Status/100)]++
			stats.RouteHits[entry.Method+" "+entry.Path]++
			if entry.Status == 403 {
				stats.Forbidden++
			}
			continue
		}

		switch {
		case strings.HasPrefix(entry.Msg, "Login failed"):
			stats.LoginFailures++
		case strings.HasSuffix(entry.Msg, " logged in"), strings.HasSuffix(entry.Msg, "signed in with Google"):
			stats.LoginSuccess++
		case strings.HasSuffix(entry.Msg, " registered"):
			stats.Signups++
		case strings.Contains(entry.Msg, " invited user "):
			stats.Invites++
		}

		if entry.Level == "error" {
			stats.ErrorPatterns[errorPattern(entry.Msg)]++
		}
	}
	return scanner.Err()
}

// errorPattern keeps the message up to the first colon so that wrapped
// causes group together
func errorPattern(msg string) string {
	if i := strings.Index(msg, ":"); i > 0 {
		return strings.TrimSpace(msg[:i])
	}
	return msg
}

func printReport(w io.Writer, stats *LogStats) {
	fmt.Fprintln(w, "\n=== Log Analysis Report ===")
	fmt.Fprintln(w, "Generated:", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Lines: %d (malformed: %d)\n", stats.Lines, stats.Malformed)

	fmt.Fprintln(w, "\n1. Authentication Statistics:")
	fmt.Fprintf(w, "   Signups: %d\n", stats.Signups)
	fmt.Fprintf(w, "   Successful Logins: %d\n", stats.LoginSuccess)
	fmt.Fprintf(w, "   Failed Logins: %d\n", stats.LoginFailures)

	fmt.Fprintln(w, "\n2. Requests:")
	fmt.Fprintf(w, "   Total: %d\n", stats.Requests)
	for _, class := range []string{"2xx", "3xx", "4xx", "5xx"} {
		fmt.Fprintf(w, "   %s: %d\n", class, stats.StatusClasses[class])
	}
	fmt.Fprintf(w, "   Forbidden: %d\n", stats.Forbidden)
	fmt.Fprintf(w, "   Invites: %d\n", stats.Invites)

	fmt.Fprintln(w, "\n3. Busiest Routes:")
	printTop(w, stats.RouteHits, 5, "requests")

	fmt.Fprintln(w, "\n4. Most Common Errors:")
	printTop(w, stats.ErrorPatterns, 5, "occurrences")
}

func printTop(w io.Writer, counts map[string]int, limit int, unit string) {
	type entry struct {
		key   string
		count int
	}

	var list []entry
	for key, count := range counts {
		list = append(list, entry{key, count})
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].count != list[j].count {
			return list[i].count > list[j].count
		}
		return list[i].key < list[j].key
	})

	for i, e := range list {
		if i >= limit {
			break
		}
		fmt.Fprintf(w, "   %s: %d %s\n", e.key, e.count, unit)
	}
}
