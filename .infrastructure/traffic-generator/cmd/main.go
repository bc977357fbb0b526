package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Генератор нагрузки для локального стенда: создает заявки, запускает батч и читает статусы.
var (
	callsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_calls_total",
		Help: "Вызовы API оркестратора по операции и коду ответа",
	}, []string{"operation", "code"})

	callDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_generator_call_duration_seconds",
		Help:    "Длительность вызова API оркестратора",
		Buckets: []float64{0.05, 0.1, 0.3, 0.5, 1, 2, 5},
	}, []string{"operation"})
)

var cities = []struct{ city, country, postal string }{
	{"Berlin", "DE", "10115"},
	{"Hamburg", "DE", "20095"},
	{"Munich", "DE", "80331"},
	{"Vienna", "AT", "1010"},
}

type generator struct {
	baseURL string
	client  *http.Client
	rnd     *rand.Rand
}

func (g *generator) call(operation, method, path string, body any) (int, error) {
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			return 0, err
		}
	}

	req, err := http.NewRequest(method, g.baseURL+path, &payload)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	callDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		callsTotal.WithLabelValues(operation, "error").Inc()
		return 0, err
	}
	defer resp.Body.Close()

	callsTotal.WithLabelValues(operation, strconv.Itoa(resp.StatusCode)).Inc()
	return resp.StatusCode, nil
}

func (g *generator) party(prefix string) map[string]any {
	c := cities[g.rnd.Intn(len(cities))]
	return map[string]any{
		"name":        fmt.Sprintf("%s %d", prefix, g.rnd.Intn(1000)),
		"email":       fmt.Sprintf("%s%d@example.test", prefix, g.rnd.Intn(50)),
		"address":     "Hauptstr. 1",
		"city":        c.city,
		"country":     c.country,
		"postal_code": c.postal,
	}
}

func (g *generator) round() {
	reference := fmt.Sprintf("LOAD-%d-%d", time.Now().Unix(), g.rnd.Intn(100000))

	_, err := g.call("create_request", http.MethodPost, "/shipment-requests", map[string]any{
		"reference_number": reference,
		"shipment_type_id": 1,
		"weight":           fmt.Sprintf("%.2f", 0.5+g.rnd.Float64()*20),
		"weight_unit":      "kg",
		"pickup_date":      time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		"shipper":          g.party("shipper"),
		"consignee":        g.party("consignee"),
	})
	if err != nil {
		log.Printf("create request: %v", err)
		return
	}

	if _, err := g.call("process_batch", http.MethodPost, "/shipment-requests/process?batch_size=10", nil); err != nil {
		log.Printf("process batch: %v", err)
	}

	if _, err := g.call("status", http.MethodGet, "/shipments/"+reference+"/status", nil); err != nil {
		log.Printf("status: %v", err)
	}
}

func main() {
	baseURL := os.Getenv("ORCHESTRATOR_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	g := &generator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(":2112", nil); err != nil {
			log.Fatalf("metrics server: %v", err)
		}
	}()

	for {
		g.round()
		time.Sleep(time.Duration(500+g.rnd.Intn(4500)) * time.Millisecond)
	}
}
