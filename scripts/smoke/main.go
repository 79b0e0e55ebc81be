// Command smoke probes a running school-portal-api instance end to end:
// it logs in as the seeded admin, walks the core read endpoints, and
// reports status and latency per route. Exit code 1 when any critical
// probe fails, so it can gate a deploy.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

type probe struct {
	Method   string
	Path     string
	Critical bool
}

// Paths are relative to the API prefix; a leading "!" marks a root-level
// route that skips the prefix.
var probes = []probe{
	{http.MethodGet, "/classes", true},
	{http.MethodGet, "/classes/C1/students", true},
	{http.MethodGet, "/subjects", false},
	{http.MethodGet, "/exams", false},
	{http.MethodGet, "/teachers", true},
	{http.MethodGet, "/schedule?classId=C1", true},
	{http.MethodGet, "/schedule/coverage", true},
	{http.MethodGet, "/teacher-attendance", false},
	{http.MethodGet, "/leaves", false},
	{http.MethodGet, "/announcements", false},
	{http.MethodGet, "/reports/attendance.csv?classId=C1&year=2025&month=7", false},
	{http.MethodGet, "!/metrics", false},
}

type result struct {
	Probe    probe
	Status   int
	Duration time.Duration
	Err      error
}

func main() {
	var (
		base     string
		prefix   string
		email    string
		password string
		timeout  time.Duration
	)
	flag.StringVar(&base, "base", "http://localhost:8080", "API base URL")
	flag.StringVar(&prefix, "prefix", "/api/v1", "API route prefix")
	flag.StringVar(&email, "email", "admin@school.com", "admin login email")
	flag.StringVar(&password, "password", "password", "admin login password")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	client := &http.Client{Timeout: timeout}
	base = strings.TrimRight(base, "/")
	prefix = strings.TrimRight(prefix, "/")

	token, err := login(client, base+prefix, email, password)
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}

	var failures int
	results := make([]result, 0, len(probes))
	for _, p := range probes {
		res := run(client, base, prefix, token, p)
		if res.Err != nil || res.Status >= 400 {
			if p.Critical {
				failures++
			}
		}
		results = append(results, res)
	}

	report(results)
	if failures > 0 {
		fmt.Printf("critical failures: %d\n", failures)
		os.Exit(1)
	}
}

func login(client *http.Client, apiBase, email, password string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"loginId": email, "password": password, "role": "admin",
	})
	if err != nil {
		return "", err
	}

	resp, err := client.Post(apiBase+"/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", fmt.Errorf("login returned %d: %s", resp.StatusCode, snippet)
	}

	var envelope struct {
		Data struct {
			AccessToken string `json:"accessToken"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", err
	}
	if envelope.Data.AccessToken == "" {
		return "", fmt.Errorf("login response carried no access token")
	}
	return envelope.Data.AccessToken, nil
}

func run(client *http.Client, base, prefix, token string, p probe) result {
	res := result{Probe: p}

	url := base + prefix + p.Path
	if strings.HasPrefix(p.Path, "!") {
		url = base + strings.TrimPrefix(p.Path, "!")
	}

	req, err := http.NewRequest(p.Method, url, nil)
	if err != nil {
		res.Err = err
		return res
	}
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := client.Do(req)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = err
		return res
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	res.Status = resp.StatusCode
	return res
}

func report(results []result) {
	fmt.Println("Smoke Report")
	fmt.Println("============")
	for _, res := range results {
		status := "OK"
		if res.Err != nil {
			status = "ERROR"
		} else if res.Status >= 400 {
			status = "FAIL"
		}
		fmt.Printf("[%s] %s %s\n", status, res.Probe.Method, res.Probe.Path)
		if res.Err != nil {
			fmt.Printf("  error: %v\n", res.Err)
			continue
		}
		fmt.Printf("  status: %d (%s) critical: %t\n", res.Status, res.Duration, res.Probe.Critical)
	}
}
