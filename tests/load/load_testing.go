package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	targetHost = "http://localhost:8081" // e2e окружение
	rps        = 5
	duration   = 3 * time.Minute
)

type CreateTeamRequest struct {
	TeamName string `json:"team_name"`
}

type CreateMemberRequest struct {
	DisplayName string `json:"display_name"`
}

type PreviewPlanRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

var (
	teams []string
	httpc = &http.Client{Timeout: 10 * time.Second}
)

func postJSON(url string, body any, out any) (int, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if out != nil {
		data, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(data, out)
	}
	return resp.StatusCode, nil
}

// Seed
func seedData() error {
	log.Println("Seeding: creating teams and members...")

	for t := 1; t <= 20; t++ {
		var team struct {
			TeamID string `json:"team_id"`
		}
		status, err := postJSON(targetHost+"/teams", CreateTeamRequest{
			TeamName: fmt.Sprintf("load-team-%02d-%d", t, time.Now().UnixNano()),
		}, &team)
		if err != nil {
			return err
		}
		if status >= 400 {
			log.Printf("WARN POST /teams returned %d\n", status)
			continue
		}

		for m := 1; m <= 6; m++ {
			status, err = postJSON(
				fmt.Sprintf("%s/teams/%s/members", targetHost, team.TeamID),
				CreateMemberRequest{DisplayName: fmt.Sprintf("Member_%d_%d", t, m)},
				nil,
			)
			if err != nil {
				return err
			}
			if status >= 400 {
				log.Printf("WARN POST /members returned %d\n", status)
			}
			time.Sleep(10 * time.Millisecond)
		}

		teams = append(teams, team.TeamID)
		time.Sleep(20 * time.Millisecond)
	}

	log.Printf("Seed completed: teams=%d\n", len(teams))
	return nil
}

// Случайный месячный диапазон в 2030 году, чтобы не пересечься с e2e-данными
func randomRange() (string, string) {
	month := rand.Intn(12) + 1
	return fmt.Sprintf("2030-%02d-01", month), fmt.Sprintf("2030-%02d-28", month)
}

// Targeter
func makeTargeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		r := rand.Float64()
		team := teams[rand.Intn(len(teams))]

		// 50% POST plans/preview: жадный аллокатор под нагрузкой
		if r < 0.50 {
			start, end := randomRange()
			body, _ := json.Marshal(PreviewPlanRequest{StartDate: start, EndDate: end})
			t.Method = http.MethodPost
			t.URL = fmt.Sprintf("%s/teams/%s/plans/preview", targetHost, team)
			t.Body = body
			t.Header = map[string][]string{"Content-Type": {"application/json"}}
			return nil
		}

		// 25% GET members
		if r < 0.75 {
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/teams/%s/members", targetHost, team)
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 15% GET plans
		if r < 0.90 {
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/teams/%s/plans?limit=20", targetHost, team)
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 10% GET stats
		t.Method = http.MethodGet
		t.URL = fmt.Sprintf("%s/teams/%s/stats", targetHost, team)
		t.Body = nil
		t.Header = map[string][]string{"Accept": {"application/json"}}
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", targetHost, duration)
	for res := range attacker.Attack(targeter, rate, duration, "load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
}

func main() {
	rand.Seed(time.Now().UnixNano())

	if err := seedData(); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	runAttack()
}
