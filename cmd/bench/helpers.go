package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/fulldump/dyngrid/bootstrap"
	"github.com/fulldump/dyngrid/configuration"
)

type JSON = map[string]any

func Parallel(workers int, f func()) {
	wg := &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	wg.Wait()
}

func NewClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxConnsPerHost:     1024,
			MaxIdleConnsPerHost: 1024,
			MaxIdleConns:        1024,
		},
	}
}

func Post(client *http.Client, url string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return client.Post(url, "application/json", bytes.NewReader(body))
}

// CreateTable creates an int table with cols columns keyed 0..cols-1.
func CreateTable(client *http.Client, base string, cols int) string {

	name := "bench-" + strconv.FormatInt(time.Now().UnixNano(), 10)

	resp, err := Post(client, base+"/v1/tables", JSON{"name": name, "kind": "int"})
	if err != nil {
		panic(err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	for i := 0; i < cols; i++ {
		resp, err := Post(client, base+"/v1/tables/"+name+":addCol", JSON{"index": i, "key": i})
		if err != nil {
			panic(err)
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}

	return name
}

func CreateServer(c *Config) (start func() error, stop func()) {

	conf := configuration.Default()
	conf.EnableCompression = false
	c.Base = "http://" + conf.HttpAddr

	start, stop, err := bootstrap.Bootstrap(&conf)
	if err != nil {
		fmt.Println("ERROR: bootstrap:", err.Error())
		os.Exit(2)
	}

	return start, stop
}

// WaitReady polls the server until it answers requests.
func WaitReady(client *http.Client, base string) {
	for i := 0; i < 100; i++ {
		resp, err := client.Get(base + "/v1/tables")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	fmt.Println("ERROR: server not ready")
	os.Exit(2)
}

// Latencies collects request durations in milliseconds from many workers.
type Latencies struct {
	mutex sync.Mutex
	data  stats.Float64Data
}

func (l *Latencies) Add(d time.Duration) {
	l.mutex.Lock()
	l.data = append(l.data, float64(d.Microseconds())/1000)
	l.mutex.Unlock()
}

func (l *Latencies) Print() {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if len(l.data) == 0 {
		fmt.Println("latency: no samples")
		return
	}

	mean, _ := stats.Mean(l.data)
	p50, _ := stats.Percentile(l.data, 50)
	p99, _ := stats.Percentile(l.data, 99)
	max, _ := stats.Max(l.data)
	fmt.Printf("latency ms: mean %.3f p50 %.3f p99 %.3f max %.3f\n", mean, p50, p99, max)
}
