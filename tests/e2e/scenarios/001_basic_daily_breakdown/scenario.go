package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalEntries   = 64000 // Total number of well-formed access-log lines to generate
	malformedEvery = 100   // One malformed line is written after every N well-formed lines
)

var (
	days       = []string{"24/Jun/2025", "25/Jun/2025", "26/Jun/2025", "27/Jun/2025"}
	statuses   = []string{"200", "304", "404", "503"}
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
		"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
		"curl/7.88.1",
	}
)

// ### End - fixed configs

type dailyResult struct {
	Date      string  `json:"date"`
	Requests  int64   `json:"requests"`
	Count2xx  int64   `json:"count2xx"`
	Count3xx  int64   `json:"count3xx"`
	Count4xx  int64   `json:"count4xx"`
	Count5xx  int64   `json:"count5xx"`
	ErrorRate float64 `json:"errorRate"`
}

type analysisResult struct {
	Report struct {
		Daily          []dailyResult `json:"daily"`
		TotalRequests  int64         `json:"totalRequests"`
		TotalErrorRate float64       `json:"totalErrorRate"`
	} `json:"report"`
	Pass struct {
		LinesRead    int64 `json:"linesRead"`
		LinesParsed  int64 `json:"linesParsed"`
		LinesNoMatch int64 `json:"linesNoMatch"`
	} `json:"pass"`
}

// main runs the e2e scenario: 001_basic_daily_breakdown
//
// This scenario builds the analyzer binary, generates a deterministic access log
// of 64,000 well-formed lines interleaved with malformed ones, and runs the
// analyzer on it with the JSON report format.
//
// What it tests:
//   - Strict line matching: malformed lines are skipped without affecting counts
//   - Per-day grouping in first-seen order
//   - Status classification into 2xx/3xx/4xx/5xx
//   - Error rate as (4xx + 5xx) / requests, per day and overall
//   - Transparent gzip decompression (when wantGzip is true)
//
// Expected results:
//   - Four days in the order 24/Jun/2025, 25/Jun/2025, 26/Jun/2025, 27/Jun/2025
//   - Each day has 16,000 requests, 4,000 in every status class, error rate 0.5
//   - 64,000 total requests, total error rate 0.5
//   - 640 malformed lines reported as no_match
func main() {
	// these configs can be changed to run the scenario
	workDir := ".tmp/e2e-001" // Working directory relative to project root
	wantGzip := false         // If true, the generated log is gzip-compressed

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	workPath := filepath.Join(projectRoot, workDir)
	fmt.Printf("Cleaning work directory: %s\n", workPath)
	if err := os.RemoveAll(workPath); err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: Failed to clean work directory: %v\n", err)
	}
	if err := os.MkdirAll(filepath.Join(workPath, "configs"), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to create work directory: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()

	fmt.Println("Starting e2e scenario: 001_basic_daily_breakdown")
	fmt.Printf("WORK_DIR: %s\n", workPath)
	fmt.Printf("WANT_GZIP: %v\n", wantGzip)
	fmt.Printf("TOTAL_ENTRIES: %d\n", totalEntries)
	fmt.Printf("MALFORMED_EVERY: %d\n", malformedEvery)
	fmt.Println()

	binary := filepath.Join(workPath, "analyzer")
	fmt.Println("Building analyzer...")
	build := exec.Command("go", "build", "-o", binary, "./cmd/analyzer")
	build.Dir = projectRoot
	build.Stdout, build.Stderr = os.Stdout, os.Stderr
	if err := build.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to build analyzer: %v\n", err)
		os.Exit(1)
	}

	config := "log:\n  level: error\nreport:\n  format: json\n"
	if err := os.WriteFile(filepath.Join(workPath, "configs", "configs.yml"), []byte(config), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to write config: %v\n", err)
		os.Exit(1)
	}

	logPath := filepath.Join(workPath, "access.log")
	fmt.Printf("Generating %s...\n", logPath)
	malformed, err := writeLog(logPath, wantGzip)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to generate log: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d well-formed and %d malformed lines\n", totalEntries, malformed)
	fmt.Println()

	var stdout bytes.Buffer
	run := exec.Command(binary, logPath)
	run.Dir = workPath
	run.Stdout, run.Stderr = &stdout, os.Stderr
	if err := run.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Analyzer failed: %v\n", err)
		os.Exit(1)
	}

	var result analysisResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to decode analyzer output: %v\n", err)
		os.Exit(1)
	}

	problems := verify(result, int64(malformed))
	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "MISMATCH: %s\n", p)
		}
		fmt.Fprintf(os.Stderr, "ERROR: %d mismatches\n", len(problems))
		os.Exit(1)
	}

	fmt.Println("=== Statistics ===")
	fmt.Printf("Lines read: %d\n", result.Pass.LinesRead)
	fmt.Printf("Lines parsed: %d\n", result.Pass.LinesParsed)
	fmt.Printf("Lines skipped: %d\n", result.Pass.LinesNoMatch)
	fmt.Printf("Days: %d\n", len(result.Report.Daily))
	fmt.Printf("Total error rate: %.4f\n", result.Report.TotalErrorRate)
	fmt.Println("Scenario completed successfully")
}

// findProjectRoot walks up from the working directory until it finds go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("could not find go.mod file, run from the project root")
}

// writeLog writes the generated log to path and returns the number of malformed lines.
func writeLog(path string, wantGzip bool) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var out io.Writer = f
	var zw *gzip.Writer
	if wantGzip {
		zw = gzip.NewWriter(f)
		out = zw
	}
	w := bufio.NewWriter(out)

	malformed := 0
	for i := 0; i < totalEntries; i++ {
		if _, err := fmt.Fprintln(w, generateLine(i)); err != nil {
			return 0, err
		}
		if (i+1)%malformedEvery == 0 {
			if _, err := fmt.Fprintf(w, "malformed entry %d without the access-log shape\n", i); err != nil {
				return 0, err
			}
			malformed++
		}
	}

	if err := w.Flush(); err != nil {
		return 0, err
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			return 0, err
		}
	}
	return malformed, f.Close()
}

// generateLine maps entry i onto a (day, status, user agent) bucket. Every run
// of 64 consecutive entries covers each combination exactly once, days first.
func generateLine(i int) string {
	bucket := i % 64
	round := i / 64

	day := days[bucket/16]
	combo := bucket % 16
	status := statuses[combo/4]
	ua := userAgents[combo%4]

	seconds := round % 60
	minutes := (round / 60) % 60

	return fmt.Sprintf(`10.0.%d.%d - - [%s:18:%02d:%02d +0000] "GET /page/%d HTTP/1.1" %s %d "-" "%s" 0.%03d`,
		bucket, round%256, day, minutes, seconds, round%10, status, 512+bucket, ua, (bucket*17+round)%1000)
}

func verify(result analysisResult, malformed int64) []string {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	perDay := int64(totalEntries / len(days))
	perClass := perDay / int64(len(statuses))

	check(result.Report.TotalRequests == totalEntries, "total requests = %d, want %d", result.Report.TotalRequests, totalEntries)
	check(math.Abs(result.Report.TotalErrorRate-0.5) < 1e-9, "total error rate = %f, want 0.5", result.Report.TotalErrorRate)
	check(result.Pass.LinesNoMatch == malformed, "no_match lines = %d, want %d", result.Pass.LinesNoMatch, malformed)
	check(result.Pass.LinesRead == totalEntries+malformed, "lines read = %d, want %d", result.Pass.LinesRead, totalEntries+malformed)
	check(len(result.Report.Daily) == len(days), "days = %d, want %d", len(result.Report.Daily), len(days))

	for i, d := range result.Report.Daily {
		if i >= len(days) {
			break
		}
		check(d.Date == days[i], "day %d = %q, want %q", i+1, d.Date, days[i])
		check(d.Requests == perDay, "%s requests = %d, want %d", d.Date, d.Requests, perDay)
		for class, got := range map[string]int64{"2xx": d.Count2xx, "3xx": d.Count3xx, "4xx": d.Count4xx, "5xx": d.Count5xx} {
			check(got == perClass, "%s %s = %d, want %d", d.Date, class, got, perClass)
		}
		check(math.Abs(d.ErrorRate-0.5) < 1e-9, "%s error rate = %f, want 0.5", d.Date, d.ErrorRate)
	}

	return problems
}
